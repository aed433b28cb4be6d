package models

import "time"

// AgentStatus is the lifecycle state of an agent
type AgentStatus string

const (
	AgentStatusSetup    AgentStatus = "setup"
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
)

// AgentTone controls how the agent talks to customers
type AgentTone string

const (
	ToneFormal   AgentTone = "formal"
	ToneFriendly AgentTone = "friendly"
	ToneCasual   AgentTone = "casual"
)

// WhatsAppProvider identifies the connection backend
type WhatsAppProvider string

const (
	ProviderMeta WhatsAppProvider = "meta"
	ProviderWati WhatsAppProvider = "wati"
)

// AlgorithmType selects the base behaviour template for an agent
type AlgorithmType string

const (
	AlgorithmEcommerce     AlgorithmType = "ecommerce"
	AlgorithmAppointments  AlgorithmType = "appointments"
	AlgorithmWhatsAppStore AlgorithmType = "whatsapp-store"
	AlgorithmHotel         AlgorithmType = "hotel"
	AlgorithmRestaurant    AlgorithmType = "restaurant"
	AlgorithmRealEstate    AlgorithmType = "inmobiliaria"
)

// SocialLinks holds the business web presence shown to the agent
type SocialLinks struct {
	Website     string `json:"website,omitempty"`
	Facebook    string `json:"facebook,omitempty"`
	Instagram   string `json:"instagram,omitempty"`
	TikTok      string `json:"tiktok,omitempty"`
	TripAdvisor string `json:"tripadvisor,omitempty"`
	GoogleMaps  string `json:"google_maps,omitempty"`
}

// CommunicationStyle tunes the regional voice and register of an agent
type CommunicationStyle struct {
	Region   string `json:"region"`
	Register string `json:"register"`
}

// Agent represents one configured messaging persona
type Agent struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Name        string      `json:"name"`
	HotelName   string      `json:"hotel_name"`
	Status      AgentStatus `json:"status"`
	Personality string      `json:"personality"`
	Tone        AgentTone   `json:"tone"`
	Language    string      `json:"language"`

	WhatsAppConnected   bool             `json:"whatsapp_connected"`
	WhatsAppPhoneNumber string           `json:"whatsapp_phone_number,omitempty"`
	WhatsAppProvider    WhatsAppProvider `json:"whatsapp_provider,omitempty"`

	SocialLinks        *SocialLinks        `json:"social_links,omitempty"`
	AlgorithmType      AlgorithmType       `json:"algorithm_type,omitempty"`
	CommunicationStyle *CommunicationStyle `json:"communication_style,omitempty"`

	// Derived counters, kept in sync by the store layer
	MessageCount int `json:"message_count"`
	FaqCount     int `json:"faq_count"`
	ProductCount int `json:"product_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAgentRequest represents agent creation input. Identity, counters and
// timestamps are assigned by the store.
type CreateAgentRequest struct {
	Name                string              `json:"name" validate:"required,min=1,max=120"`
	HotelName           string              `json:"hotel_name" validate:"required,min=1,max=200"`
	Status              AgentStatus         `json:"status,omitempty" validate:"omitempty,oneof=setup active inactive"`
	Personality         string              `json:"personality,omitempty" validate:"max=2000"`
	Tone                AgentTone           `json:"tone" validate:"required,oneof=formal friendly casual"`
	Language            string              `json:"language" validate:"required,min=2,max=8"`
	WhatsAppConnected   bool                `json:"whatsapp_connected"`
	WhatsAppPhoneNumber string              `json:"whatsapp_phone_number,omitempty" validate:"max=32"`
	WhatsAppProvider    WhatsAppProvider    `json:"whatsapp_provider,omitempty" validate:"omitempty,oneof=meta wati"`
	SocialLinks         *SocialLinks        `json:"social_links,omitempty"`
	AlgorithmType       AlgorithmType       `json:"algorithm_type,omitempty"`
	CommunicationStyle  *CommunicationStyle `json:"communication_style,omitempty"`
}

// UpdateAgentRequest represents a partial agent update. Nil fields are left
// untouched by the merge.
type UpdateAgentRequest struct {
	Name                *string             `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	HotelName           *string             `json:"hotel_name,omitempty" validate:"omitempty,min=1,max=200"`
	Status              *AgentStatus        `json:"status,omitempty" validate:"omitempty,oneof=setup active inactive"`
	Personality         *string             `json:"personality,omitempty" validate:"omitempty,max=2000"`
	Tone                *AgentTone          `json:"tone,omitempty" validate:"omitempty,oneof=formal friendly casual"`
	Language            *string             `json:"language,omitempty" validate:"omitempty,min=2,max=8"`
	WhatsAppConnected   *bool               `json:"whatsapp_connected,omitempty"`
	WhatsAppPhoneNumber *string             `json:"whatsapp_phone_number,omitempty" validate:"omitempty,max=32"`
	WhatsAppProvider    *WhatsAppProvider   `json:"whatsapp_provider,omitempty" validate:"omitempty,oneof=meta wati"`
	SocialLinks         *SocialLinks        `json:"social_links,omitempty"`
	AlgorithmType       *AlgorithmType      `json:"algorithm_type,omitempty"`
	CommunicationStyle  *CommunicationStyle `json:"communication_style,omitempty"`
}

// IsActive reports whether the agent is live and answering customers
func (a *Agent) IsActive() bool {
	return a.Status == AgentStatusActive
}

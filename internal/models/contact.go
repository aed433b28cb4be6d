package models

// HotelContact is a named phone contact the agent can hand off to
type HotelContact struct {
	ID          string `json:"id"`
	AgentID     string `json:"agent_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// CreateContactRequest represents contact creation input
type CreateContactRequest struct {
	AgentID     string `json:"agent_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Phone       string `json:"phone" validate:"required,min=5,max=32"`
	Category    string `json:"category,omitempty" validate:"max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// UpdateContactRequest represents a partial contact update
type UpdateContactRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=5,max=32"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CRMClient is a customer record aggregated from an agent's conversations
type CRMClient struct {
	ID                 string   `json:"id"`
	AgentID            string   `json:"agent_id"`
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email,omitempty"`
	FirstContactAt     string   `json:"first_contact_at"`
	LastContactAt      string   `json:"last_contact_at"`
	TotalConversations int      `json:"total_conversations"`
	TotalMessages      int      `json:"total_messages"`
	Tags               []string `json:"tags"`
	Notes              string   `json:"notes,omitempty"`
	Status             string   `json:"status"`
}

// UpdateCRMClientRequest represents a partial CRM client update
type UpdateCRMClientRequest struct {
	Name   *string   `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Email  *string   `json:"email,omitempty" validate:"omitempty,email"`
	Tags   *[]string `json:"tags,omitempty"`
	Notes  *string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Status *string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive vip"`
}

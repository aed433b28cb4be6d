package models

import "time"

// ConversationStatus tells who is currently driving a conversation
type ConversationStatus string

const (
	StatusBotHandling   ConversationStatus = "bot_handling"
	StatusHumanHandling ConversationStatus = "human_handling"
	StatusResolved      ConversationStatus = "resolved"
)

// Conversation is one WhatsApp thread between an agent and a customer
type Conversation struct {
	ID            string             `json:"id"`
	AgentID       string             `json:"agent_id"`
	ContactPhone  string             `json:"contact_phone"`
	ContactName   string             `json:"contact_name"`
	MessageCount  int                `json:"message_count"`
	LastMessageAt time.Time          `json:"last_message_at"`
	LastMessage   string             `json:"last_message,omitempty"`
	Status        ConversationStatus `json:"status"`
	Tags          []string           `json:"tags"`
}

// Message is a single message inside a conversation. Role is "user" for the
// customer, "assistant" for the bot and "human" for a dashboard operator.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	AgentID        string    `json:"agent_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	MatchedFaqID   string    `json:"matched_faq_id,omitempty"`
	Confidence     float64   `json:"confidence,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationTag is a named label agents use to classify conversations
type ConversationTag struct {
	ID      string `json:"id"`
	AgentID string `json:"agent_id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

// TrainingToolType marks which training tool produced a message
type TrainingToolType string

const (
	TrainingToolFile     TrainingToolType = "file"
	TrainingToolPrices   TrainingToolType = "prices"
	TrainingToolSchedule TrainingToolType = "schedule"
	TrainingToolMenu     TrainingToolType = "menu"
	TrainingToolFAQ      TrainingToolType = "faq"
	TrainingToolSheets   TrainingToolType = "sheets"
)

// TrainingMessage is one turn in the agent training chat
type TrainingMessage struct {
	ID             string           `json:"id"`
	AgentID        string           `json:"agent_id"`
	Role           string           `json:"role"`
	Content        string           `json:"content"`
	ToolType       TrainingToolType `json:"tool_type,omitempty"`
	KnowledgeSaved bool             `json:"knowledge_saved,omitempty"`
	AttachmentName string           `json:"attachment_name,omitempty"`
}

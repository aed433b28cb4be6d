package models

// FAQ is one question/answer pair in an agent's knowledge base
type FAQ struct {
	ID        string `json:"id"`
	AgentID   string `json:"agent_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// CreateFAQRequest represents FAQ creation input. SortOrder is assigned by
// the store as max existing order for the agent plus one.
type CreateFAQRequest struct {
	AgentID  string `json:"agent_id" validate:"required"`
	Question string `json:"question" validate:"required,min=1,max=500"`
	Answer   string `json:"answer" validate:"required,min=1,max=4000"`
	Category string `json:"category,omitempty" validate:"max=100"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UpdateFAQRequest represents a partial FAQ update
type UpdateFAQRequest struct {
	Question  *string `json:"question,omitempty" validate:"omitempty,min=1,max=500"`
	Answer    *string `json:"answer,omitempty" validate:"omitempty,min=1,max=4000"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=100"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// FAQTemplate is a predefined question/answer pair offered when an agent has
// no FAQs yet
type FAQTemplate struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

package models

import "time"

// ChatMessage is one turn in an assistant chat session
type ChatMessage struct {
	ID      string `json:"id"`
	Role    string `json:"role"` // "user" or "agent"
	Content string `json:"content"`
}

// ChatSession is one titled conversation thread with the assistant
type ChatSession struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SessionGroup buckets sessions by calendar recency for display
type SessionGroup struct {
	Today     []ChatSession `json:"today"`
	Yesterday []ChatSession `json:"yesterday"`
	ThisWeek  []ChatSession `json:"this_week"`
	Older     []ChatSession `json:"older"`
}

// AddChatMessageRequest appends a message to an existing session
type AddChatMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user agent"`
	Content string `json:"content" validate:"required,min=1"`
}

// CreateSessionRequest opens a new session from its first message
type CreateSessionRequest struct {
	FirstMessage string `json:"first_message" validate:"required,min=1"`
}

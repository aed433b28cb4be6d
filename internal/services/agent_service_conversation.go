package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/lisahub/agent-hub-be/internal/core/webhook"
	"github.com/lisahub/agent-hub-be/internal/models"
)

// Conversations returns the agent's WhatsApp threads
func (s *AgentService) Conversations(agentID string) []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Conversation, 0)
	for _, c := range s.conversations {
		if c.AgentID == agentID {
			out = append(out, c)
		}
	}
	return out
}

// ConversationMessages returns the message history of one thread
func (s *AgentService) ConversationMessages(conversationID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out
}

// SetConversationStatus flips who is driving a thread. Resolving or taking
// over a conversation is modelled as a status change, not a separate op.
func (s *AgentService) SetConversationStatus(id string, status models.ConversationStatus) (models.Conversation, bool) {
	s.mu.Lock()
	var updated models.Conversation
	found := false
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			s.conversations[i].Status = status
			updated = s.conversations[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Conversation{}, false
	}
	s.notify(webhook.EventSettingsUpdated, map[string]interface{}{
		"action":       "conversation.status_changed",
		"conversation": updated,
	})
	return updated, true
}

// AddConversationMessage appends an operator or bot message to a thread and
// keeps the thread's preview fields and counters in sync.
func (s *AgentService) AddConversationMessage(conversationID, role, content string) (models.Message, bool) {
	now := time.Now().UTC()
	s.mu.Lock()
	var msg models.Message
	found := false
	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			msg = models.Message{
				ID:             uuid.NewString(),
				ConversationID: conversationID,
				AgentID:        s.conversations[i].AgentID,
				Role:           role,
				Content:        content,
				CreatedAt:      now,
			}
			s.messages = append(s.messages, msg)
			s.conversations[i].MessageCount++
			s.conversations[i].LastMessage = content
			s.conversations[i].LastMessageAt = now
			for j := range s.agents {
				if s.agents[j].ID == msg.AgentID {
					s.agents[j].MessageCount++
					break
				}
			}
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Message{}, false
	}
	return msg, true
}

// ToggleConversationMode flips a thread between bot and human handling based
// on its current status. Resolved threads reopen under human control.
func (s *AgentService) ToggleConversationMode(id string) (models.Conversation, bool) {
	s.mu.RLock()
	current := models.ConversationStatus("")
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			current = s.conversations[i].Status
			break
		}
	}
	s.mu.RUnlock()

	if current == "" {
		return models.Conversation{}, false
	}
	next := models.StatusHumanHandling
	if current == models.StatusHumanHandling {
		next = models.StatusBotHandling
	}
	return s.SetConversationStatus(id, next)
}

// ResolveConversation closes a thread
func (s *AgentService) ResolveConversation(id string) (models.Conversation, bool) {
	return s.SetConversationStatus(id, models.StatusResolved)
}

// TagConversation replaces a thread's tag list
func (s *AgentService) TagConversation(id string, tags []string) (models.Conversation, bool) {
	s.mu.Lock()
	var updated models.Conversation
	found := false
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			s.conversations[i].Tags = tags
			updated = s.conversations[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Conversation{}, false
	}
	return updated, true
}

// ConversationTags returns the agent's tag palette
func (s *AgentService) ConversationTags(agentID string) []models.ConversationTag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ConversationTag, 0)
	for _, t := range s.tags {
		if t.AgentID == agentID {
			out = append(out, t)
		}
	}
	return out
}

// AddConversationTag creates a tag in the agent's palette
func (s *AgentService) AddConversationTag(agentID, name, color string) models.ConversationTag {
	tag := models.ConversationTag{
		ID:      uuid.NewString(),
		AgentID: agentID,
		Name:    name,
		Color:   color,
	}
	s.mu.Lock()
	s.tags = append(s.tags, tag)
	s.mu.Unlock()
	return tag
}

// DeleteConversationTag removes a tag from the palette. Threads keep the tag
// name in their lists; the palette only controls what can be newly applied.
func (s *AgentService) DeleteConversationTag(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tags {
		if s.tags[i].ID == id {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return true
		}
	}
	return false
}

// CRMClients returns the agent's customer records
func (s *AgentService) CRMClients(agentID string) []models.CRMClient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CRMClient, 0)
	for _, c := range s.clients {
		if c.AgentID == agentID {
			out = append(out, c)
		}
	}
	return out
}

// UpdateCRMClient merges the partial update into the matching customer record
func (s *AgentService) UpdateCRMClient(id string, req *models.UpdateCRMClientRequest) (models.CRMClient, bool) {
	s.mu.Lock()
	var updated models.CRMClient
	found := false
	for i := range s.clients {
		if s.clients[i].ID == id {
			if req.Name != nil {
				s.clients[i].Name = *req.Name
			}
			if req.Email != nil {
				s.clients[i].Email = *req.Email
			}
			if req.Tags != nil {
				s.clients[i].Tags = *req.Tags
			}
			if req.Notes != nil {
				s.clients[i].Notes = *req.Notes
			}
			if req.Status != nil {
				s.clients[i].Status = *req.Status
			}
			updated = s.clients[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.CRMClient{}, false
	}
	return updated, true
}

package services

import (
	"github.com/google/uuid"

	"github.com/lisahub/agent-hub-be/internal/core/webhook"
	"github.com/lisahub/agent-hub-be/internal/models"
)

// Contacts returns the agent's handoff contact directory
func (s *AgentService) Contacts(agentID string) []models.HotelContact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HotelContact, 0)
	for _, c := range s.contacts {
		if c.AgentID == agentID {
			out = append(out, c)
		}
	}
	return out
}

// AddContact appends a handoff contact. Contacts do not participate in any
// agent counter; the event is a settings change, not a dedicated tag.
func (s *AgentService) AddContact(req *models.CreateContactRequest) models.HotelContact {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	contact := models.HotelContact{
		ID:          uuid.NewString(),
		AgentID:     req.AgentID,
		Name:        req.Name,
		Phone:       req.Phone,
		Category:    req.Category,
		Description: req.Description,
		IsActive:    active,
	}

	s.mu.Lock()
	s.contacts = append(s.contacts, contact)
	s.mu.Unlock()

	s.notify(webhook.EventSettingsUpdated, map[string]interface{}{
		"action":  "contact.created",
		"contact": contact,
	})
	return contact
}

// UpdateContact merges the partial update into the matching contact
func (s *AgentService) UpdateContact(id string, req *models.UpdateContactRequest) (models.HotelContact, bool) {
	s.mu.Lock()
	var updated models.HotelContact
	found := false
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			if req.Name != nil {
				s.contacts[i].Name = *req.Name
			}
			if req.Phone != nil {
				s.contacts[i].Phone = *req.Phone
			}
			if req.Category != nil {
				s.contacts[i].Category = *req.Category
			}
			if req.Description != nil {
				s.contacts[i].Description = *req.Description
			}
			if req.IsActive != nil {
				s.contacts[i].IsActive = *req.IsActive
			}
			updated = s.contacts[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.HotelContact{}, false
	}
	s.notify(webhook.EventSettingsUpdated, map[string]interface{}{
		"action":  "contact.updated",
		"contact": updated,
	})
	return updated, true
}

// DeleteContact removes the contact
func (s *AgentService) DeleteContact(id string) bool {
	s.mu.Lock()
	var deleted models.HotelContact
	found := false
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			deleted = s.contacts[i]
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	s.notify(webhook.EventSettingsUpdated, map[string]interface{}{
		"action":  "contact.deleted",
		"contact": deleted,
	})
	return true
}

package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/lisahub/agent-hub-be/internal/core/webhook"
	"github.com/lisahub/agent-hub-be/internal/models"
)

// FAQs returns the agent's FAQ list ordered as stored
func (s *AgentService) FAQs(agentID string) []models.FAQ {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FAQ, 0)
	for _, f := range s.faqs {
		if f.AgentID == agentID {
			out = append(out, f)
		}
	}
	return out
}

// AddFAQ appends a FAQ at the end of the agent's ordering and increments the
// owning agent's FaqCount.
func (s *AgentService) AddFAQ(req *models.CreateFAQRequest) models.FAQ {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	s.mu.Lock()
	faq := models.FAQ{
		ID:        uuid.NewString(),
		AgentID:   req.AgentID,
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		SortOrder: s.nextFAQOrderLocked(req.AgentID),
		IsActive:  active,
	}
	s.faqs = append(s.faqs, faq)
	s.adjustFaqCountLocked(req.AgentID, 1)
	s.mu.Unlock()

	s.notify(webhook.EventFAQCreated, map[string]interface{}{"faq": faq})
	return faq
}

// UpdateFAQ merges the partial update into the matching FAQ
func (s *AgentService) UpdateFAQ(id string, req *models.UpdateFAQRequest) (models.FAQ, bool) {
	s.mu.Lock()
	var updated models.FAQ
	found := false
	for i := range s.faqs {
		if s.faqs[i].ID == id {
			if req.Question != nil {
				s.faqs[i].Question = *req.Question
			}
			if req.Answer != nil {
				s.faqs[i].Answer = *req.Answer
			}
			if req.Category != nil {
				s.faqs[i].Category = *req.Category
			}
			if req.SortOrder != nil {
				s.faqs[i].SortOrder = *req.SortOrder
			}
			if req.IsActive != nil {
				s.faqs[i].IsActive = *req.IsActive
			}
			updated = s.faqs[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.FAQ{}, false
	}
	s.notify(webhook.EventFAQUpdated, map[string]interface{}{"faq": updated})
	return updated, true
}

// DeleteFAQ removes the FAQ and decrements the owning agent's FaqCount
func (s *AgentService) DeleteFAQ(id string) bool {
	s.mu.Lock()
	var deleted models.FAQ
	found := false
	for i := range s.faqs {
		if s.faqs[i].ID == id {
			deleted = s.faqs[i]
			s.faqs = append(s.faqs[:i], s.faqs[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.adjustFaqCountLocked(deleted.AgentID, -1)
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	s.notify(webhook.EventFAQDeleted, map[string]interface{}{"faq": deleted})
	return true
}

// LoadFAQTemplates bulk-inserts the template pack for an agent. Each template
// lands after the agent's current highest order, in pack order, and the
// agent's FaqCount grows by the pack size.
func (s *AgentService) LoadFAQTemplates(agentID string, templates []models.FAQTemplate) []models.FAQ {
	s.mu.Lock()
	created := make([]models.FAQ, 0, len(templates))
	for _, t := range templates {
		faq := models.FAQ{
			ID:        uuid.NewString(),
			AgentID:   agentID,
			Question:  t.Question,
			Answer:    t.Answer,
			Category:  t.Category,
			SortOrder: s.nextFAQOrderLocked(agentID),
			IsActive:  true,
		}
		s.faqs = append(s.faqs, faq)
		created = append(created, faq)
	}
	s.adjustFaqCountLocked(agentID, len(created))
	s.mu.Unlock()

	s.notify(webhook.EventFAQTemplatesLoaded, map[string]interface{}{
		"agent_id": agentID,
		"count":    len(created),
	})
	return created
}

// nextFAQOrderLocked scans the agent's FAQs for the highest sort order.
// Caller must hold the write lock.
func (s *AgentService) nextFAQOrderLocked(agentID string) int {
	max := 0
	for _, f := range s.faqs {
		if f.AgentID == agentID && f.SortOrder > max {
			max = f.SortOrder
		}
	}
	return max + 1
}

// adjustFaqCountLocked shifts the agent's FaqCount, flooring at zero.
// Caller must hold the write lock.
func (s *AgentService) adjustFaqCountLocked(agentID string, delta int) {
	for i := range s.agents {
		if s.agents[i].ID == agentID {
			s.agents[i].FaqCount += delta
			if s.agents[i].FaqCount < 0 {
				s.agents[i].FaqCount = 0
			}
			s.agents[i].UpdatedAt = time.Now().UTC()
			return
		}
	}
}

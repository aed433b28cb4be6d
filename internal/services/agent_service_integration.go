package services

import (
	"errors"

	"github.com/lisahub/agent-hub-be/internal/core/webhook"
	"github.com/lisahub/agent-hub-be/internal/models"
)

// ErrIntegrationLimit is returned when the active plan does not allow
// enabling another integration.
var ErrIntegrationLimit = errors.New("integration limit reached for current plan")

// Integrations returns the agent's connector catalog
func (s *AgentService) Integrations(agentID string) []models.Integration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Integration, 0)
	for _, in := range s.integrations {
		if in.AgentID == agentID {
			out = append(out, in)
		}
	}
	return out
}

// ToggleIntegration flips a connector on or off. Enabling consults the plan
// gate against the agent's count of already-enabled connectors; disabling is
// always allowed.
func (s *AgentService) ToggleIntegration(id string) (models.Integration, error) {
	s.mu.Lock()
	var updated models.Integration
	found := false
	for i := range s.integrations {
		if s.integrations[i].ID != id {
			continue
		}
		if !s.integrations[i].Enabled {
			enabled := 0
			for _, in := range s.integrations {
				if in.AgentID == s.integrations[i].AgentID && in.Enabled {
					enabled++
				}
			}
			if !s.canAddIntegration(enabled) {
				s.mu.Unlock()
				return models.Integration{}, ErrIntegrationLimit
			}
		}
		s.integrations[i].Enabled = !s.integrations[i].Enabled
		updated = s.integrations[i]
		found = true
		break
	}
	s.mu.Unlock()

	if !found {
		return models.Integration{}, errors.New("integration not found")
	}
	s.notify(webhook.EventSettingsUpdated, map[string]interface{}{
		"action":      "integration.toggled",
		"integration": updated,
	})
	return updated, nil
}

// ConfigureIntegration stores connector credentials and marks it configured
func (s *AgentService) ConfigureIntegration(id string, req *models.UpdateIntegrationConfigRequest) (models.Integration, bool) {
	s.mu.Lock()
	var updated models.Integration
	found := false
	for i := range s.integrations {
		if s.integrations[i].ID == id {
			if req.Environment != "" {
				s.integrations[i].Environment = req.Environment
			}
			s.integrations[i].Credentials = req.Credentials
			s.integrations[i].Configured = true
			updated = s.integrations[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Integration{}, false
	}
	s.notify(webhook.EventSettingsUpdated, map[string]interface{}{
		"action":      "integration.configured",
		"integration": updated.ID,
	})
	return updated, true
}

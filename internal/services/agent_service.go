package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lisahub/agent-hub-be/internal/core/webhook"
	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/seed"
)

// AgentService owns the agents, FAQs, contacts, products, conversations and
// related collections for the lifetime of the process. State is seeded from
// the mock snapshot and mutated in place; every mutation commits in memory
// first and then emits a best-effort webhook event.
//
// No operation returns an error to its caller: unknown ids are silent no-ops
// and input validation belongs to the HTTP layer.
type AgentService struct {
	mu sync.RWMutex

	agents         []models.Agent
	currentAgentID string

	faqs     []models.FAQ
	contacts []models.HotelContact
	products []models.Product

	conversations []models.Conversation
	messages      []models.Message
	tags          []models.ConversationTag
	clients       []models.CRMClient
	integrations  []models.Integration

	trainingMessages  []models.TrainingMessage
	trainingResponses map[string][]string

	stats  models.DashboardStats
	weekly []models.WeeklyMessageData

	notifier          webhook.Notifier
	canAddIntegration func(currentCount int) bool
}

// NewAgentService builds a store seeded with the initial snapshot.
// canAddIntegration is the plan gate consulted when enabling integrations.
func NewAgentService(notifier webhook.Notifier, canAddIntegration func(int) bool) *AgentService {
	if canAddIntegration == nil {
		canAddIntegration = func(int) bool { return true }
	}
	return &AgentService{
		agents:            seed.Agents(),
		faqs:              seed.FAQs(),
		contacts:          seed.Contacts(),
		products:          seed.Products(),
		conversations:     seed.Conversations(),
		messages:          seed.Messages(),
		tags:              seed.ConversationTags(),
		clients:           seed.CRMClients(),
		integrations:      seed.Integrations(),
		trainingResponses: seed.TrainingResponses(),
		stats:             seed.Stats(),
		weekly:            seed.WeeklyMessages(),
		notifier:          notifier,
		canAddIntegration: canAddIntegration,
	}
}

// Agents returns a snapshot of the full agent list
func (s *AgentService) Agents() []models.Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

// GetAgent returns a copy of the agent with the given id
func (s *AgentService) GetAgent(id string) (models.Agent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.agents {
		if a.ID == id {
			return a, true
		}
	}
	return models.Agent{}, false
}

// SetCurrentAgent selects the agent the dashboard is working on. An empty id
// clears the selection; an unknown id is ignored.
func (s *AgentService) SetCurrentAgent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		s.currentAgentID = ""
		return
	}
	for _, a := range s.agents {
		if a.ID == id {
			s.currentAgentID = id
			return
		}
	}
}

// CurrentAgent returns the selected agent, if any
func (s *AgentService) CurrentAgent() (models.Agent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentAgentID == "" {
		return models.Agent{}, false
	}
	for _, a := range s.agents {
		if a.ID == s.currentAgentID {
			return a, true
		}
	}
	return models.Agent{}, false
}

// AddAgent appends a new agent with fresh identity, zeroed counters and both
// timestamps stamped to now. The store performs no validation; degenerate
// input produces a degenerate record.
func (s *AgentService) AddAgent(req *models.CreateAgentRequest) models.Agent {
	now := time.Now().UTC()
	status := req.Status
	if status == "" {
		status = models.AgentStatusSetup
	}
	agent := models.Agent{
		ID:                  uuid.NewString(),
		UserID:              "user-001",
		Name:                req.Name,
		HotelName:           req.HotelName,
		Status:              status,
		Personality:         req.Personality,
		Tone:                req.Tone,
		Language:            req.Language,
		WhatsAppConnected:   req.WhatsAppConnected,
		WhatsAppPhoneNumber: req.WhatsAppPhoneNumber,
		WhatsAppProvider:    req.WhatsAppProvider,
		SocialLinks:         req.SocialLinks,
		AlgorithmType:       req.AlgorithmType,
		CommunicationStyle:  req.CommunicationStyle,
		MessageCount:        0,
		FaqCount:            0,
		ProductCount:        0,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	s.mu.Lock()
	s.agents = append(s.agents, agent)
	s.mu.Unlock()

	s.notify(webhook.EventAgentCreated, map[string]interface{}{"agent": agent})
	return agent
}

// UpdateAgent merges the partial update into the matching agent and bumps
// UpdatedAt. Unknown ids leave the list untouched and emit nothing.
func (s *AgentService) UpdateAgent(id string, req *models.UpdateAgentRequest) (models.Agent, bool) {
	s.mu.Lock()
	var updated models.Agent
	found := false
	for i := range s.agents {
		if s.agents[i].ID == id {
			applyAgentUpdate(&s.agents[i], req)
			s.agents[i].UpdatedAt = time.Now().UTC()
			updated = s.agents[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Agent{}, false
	}
	s.notify(webhook.EventAgentUpdated, map[string]interface{}{"agent": updated, "updates": req})
	return updated, true
}

// DeleteAgent removes the agent and cascades to every FAQ, contact and
// product referencing it. The webhook carries the pre-deletion snapshot.
func (s *AgentService) DeleteAgent(id string) bool {
	s.mu.Lock()
	var deleted models.Agent
	found := false
	for i := range s.agents {
		if s.agents[i].ID == id {
			deleted = s.agents[i]
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			found = true
			break
		}
	}
	if found {
		if s.currentAgentID == id {
			s.currentAgentID = ""
		}
		s.faqs = filterFAQs(s.faqs, id)
		s.contacts = filterContacts(s.contacts, id)
		s.products = filterProducts(s.products, id)
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	s.notify(webhook.EventAgentDeleted, map[string]interface{}{"agent": deleted})
	return true
}

// UpdateSocialLinks replaces the agent's social links wholesale
func (s *AgentService) UpdateSocialLinks(id string, links *models.SocialLinks) (models.Agent, bool) {
	s.mu.Lock()
	var updated models.Agent
	found := false
	for i := range s.agents {
		if s.agents[i].ID == id {
			s.agents[i].SocialLinks = links
			s.agents[i].UpdatedAt = time.Now().UTC()
			updated = s.agents[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Agent{}, false
	}
	s.notify(webhook.EventSettingsUpdated, map[string]interface{}{
		"action":       "social_links.updated",
		"agent_id":     id,
		"social_links": links,
	})
	return updated, true
}

// LoadStats recomputes the live agent counters. The remaining statistic
// fields come from the seeded snapshot; this store does not compute
// time-series analytics.
func (s *AgentService) LoadStats() models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.TotalAgents = len(s.agents)
	active := 0
	for _, a := range s.agents {
		if a.IsActive() {
			active++
		}
	}
	s.stats.ActiveAgents = active
	return s.stats
}

// WeeklyMessages returns the seeded weekly message series
func (s *AgentService) WeeklyMessages() []models.WeeklyMessageData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WeeklyMessageData, len(s.weekly))
	copy(out, s.weekly)
	return out
}

func (s *AgentService) notify(event webhook.Event, data map[string]interface{}) {
	if s.notifier != nil {
		s.notifier.Notify(event, data)
	}
}

func applyAgentUpdate(a *models.Agent, req *models.UpdateAgentRequest) {
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.HotelName != nil {
		a.HotelName = *req.HotelName
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Personality != nil {
		a.Personality = *req.Personality
	}
	if req.Tone != nil {
		a.Tone = *req.Tone
	}
	if req.Language != nil {
		a.Language = *req.Language
	}
	if req.WhatsAppConnected != nil {
		a.WhatsAppConnected = *req.WhatsAppConnected
	}
	if req.WhatsAppPhoneNumber != nil {
		a.WhatsAppPhoneNumber = *req.WhatsAppPhoneNumber
	}
	if req.WhatsAppProvider != nil {
		a.WhatsAppProvider = *req.WhatsAppProvider
	}
	if req.SocialLinks != nil {
		a.SocialLinks = req.SocialLinks
	}
	if req.AlgorithmType != nil {
		a.AlgorithmType = *req.AlgorithmType
	}
	if req.CommunicationStyle != nil {
		a.CommunicationStyle = req.CommunicationStyle
	}
}

func filterFAQs(faqs []models.FAQ, agentID string) []models.FAQ {
	out := faqs[:0]
	for _, f := range faqs {
		if f.AgentID != agentID {
			out = append(out, f)
		}
	}
	return out
}

func filterContacts(contacts []models.HotelContact, agentID string) []models.HotelContact {
	out := contacts[:0]
	for _, c := range contacts {
		if c.AgentID != agentID {
			out = append(out, c)
		}
	}
	return out
}

func filterProducts(products []models.Product, agentID string) []models.Product {
	out := products[:0]
	for _, p := range products {
		if p.AgentID != agentID {
			out = append(out, p)
		}
	}
	return out
}

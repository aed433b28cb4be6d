package services

import (
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisahub/agent-hub-be/internal/core/webhook"
	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/seed"
)

type fakeNotifier struct {
	mu     sync.Mutex
	events []webhook.Event
}

func (f *fakeNotifier) Notify(event webhook.Event, data map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeNotifier) last() webhook.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return ""
	}
	return f.events[len(f.events)-1]
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func newTestService() (*AgentService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewAgentService(notifier, nil), notifier
}

func newAgentRequest() *models.CreateAgentRequest {
	return &models.CreateAgentRequest{
		Name:      gofakeit.FirstName(),
		HotelName: gofakeit.Company(),
		Tone:      models.ToneFriendly,
		Language:  "es",
	}
}

func TestAddAgentStartsClean(t *testing.T) {
	svc, notifier := newTestService()
	before := len(svc.Agents())

	agent := svc.AddAgent(newAgentRequest())

	assert.NotEmpty(t, agent.ID)
	assert.Equal(t, 0, agent.MessageCount)
	assert.Equal(t, 0, agent.FaqCount)
	assert.Equal(t, 0, agent.ProductCount)
	assert.Equal(t, agent.CreatedAt, agent.UpdatedAt)
	assert.Equal(t, models.AgentStatusSetup, agent.Status)
	assert.Len(t, svc.Agents(), before+1)
	assert.Equal(t, webhook.EventAgentCreated, notifier.last())
}

func TestUpdateAgentMergesPartialFields(t *testing.T) {
	svc, notifier := newTestService()
	name := "Lisa Reloaded"

	updated, ok := svc.UpdateAgent("agent-001", &models.UpdateAgentRequest{Name: &name})

	require.True(t, ok)
	assert.Equal(t, "Lisa Reloaded", updated.Name)
	// Untouched fields survive the merge
	assert.Equal(t, "Hotel Playa Azul", updated.HotelName)
	assert.Equal(t, 8, updated.FaqCount)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	assert.Equal(t, webhook.EventAgentUpdated, notifier.last())
}

func TestUpdateAgentUnknownIDIsNoOp(t *testing.T) {
	svc, notifier := newTestService()
	before := svc.Agents()
	eventsBefore := notifier.count()

	name := "ghost"
	_, ok := svc.UpdateAgent("agent-999", &models.UpdateAgentRequest{Name: &name})

	assert.False(t, ok)
	assert.Equal(t, before, svc.Agents())
	assert.Equal(t, eventsBefore, notifier.count())
}

func TestDeleteAgentCascades(t *testing.T) {
	svc, notifier := newTestService()
	require.NotEmpty(t, svc.FAQs("agent-001"))
	require.NotEmpty(t, svc.Contacts("agent-001"))

	require.True(t, svc.DeleteAgent("agent-001"))

	_, found := svc.GetAgent("agent-001")
	assert.False(t, found)
	assert.Empty(t, svc.FAQs("agent-001"))
	assert.Empty(t, svc.Contacts("agent-001"))
	assert.Empty(t, svc.Products("agent-001"))
	assert.Equal(t, webhook.EventAgentDeleted, notifier.last())

	// Other agents keep their data
	assert.NotEmpty(t, svc.Products("agent-003"))
}

func TestDeleteAgentClearsSelection(t *testing.T) {
	svc, _ := newTestService()
	svc.SetCurrentAgent("agent-002")
	_, ok := svc.CurrentAgent()
	require.True(t, ok)

	svc.DeleteAgent("agent-002")

	_, ok = svc.CurrentAgent()
	assert.False(t, ok)
}

func TestSetCurrentAgentIgnoresUnknownID(t *testing.T) {
	svc, _ := newTestService()
	svc.SetCurrentAgent("agent-001")

	svc.SetCurrentAgent("agent-999")

	current, ok := svc.CurrentAgent()
	require.True(t, ok)
	assert.Equal(t, "agent-001", current.ID)
}

func TestFAQCounterStaysInSync(t *testing.T) {
	svc, _ := newTestService()

	faq := svc.AddFAQ(&models.CreateFAQRequest{
		AgentID:  "agent-001",
		Question: "¿Tienen gimnasio?",
		Answer:   "Sí, abierto 24 horas.",
	})
	agent, _ := svc.GetAgent("agent-001")
	assert.Equal(t, 9, agent.FaqCount)

	require.True(t, svc.DeleteFAQ(faq.ID))
	agent, _ = svc.GetAgent("agent-001")
	assert.Equal(t, 8, agent.FaqCount)
}

func TestFAQCounterNeverGoesNegative(t *testing.T) {
	svc, _ := newTestService()

	faq := svc.AddFAQ(&models.CreateFAQRequest{AgentID: "agent-003", Question: "q", Answer: "a"})
	svc.DeleteFAQ(faq.ID)
	agent, _ := svc.GetAgent("agent-003")
	assert.Equal(t, 0, agent.FaqCount)
}

func TestFAQSortOrderScopedPerAgent(t *testing.T) {
	svc, _ := newTestService()

	// agent-001 already has orders 1..8
	first := svc.AddFAQ(&models.CreateFAQRequest{AgentID: "agent-001", Question: "q", Answer: "a"})
	assert.Equal(t, 9, first.SortOrder)

	// agent-003 has no FAQs, its ordering starts fresh
	other := svc.AddFAQ(&models.CreateFAQRequest{AgentID: "agent-003", Question: "q", Answer: "a"})
	assert.Equal(t, 1, other.SortOrder)
}

func TestLoadFAQTemplates(t *testing.T) {
	svc, notifier := newTestService()
	templates := seed.FAQTemplates()

	created := svc.LoadFAQTemplates("agent-003", templates)

	require.Len(t, created, len(templates))
	for i, faq := range created {
		assert.Equal(t, i+1, faq.SortOrder)
		assert.Equal(t, templates[i].Question, faq.Question)
		assert.True(t, faq.IsActive)
	}
	agent, _ := svc.GetAgent("agent-003")
	assert.Equal(t, len(templates), agent.FaqCount)
	assert.Equal(t, webhook.EventFAQTemplatesLoaded, notifier.last())
}

func TestProductCounterStaysInSync(t *testing.T) {
	svc, _ := newTestService()

	product := svc.AddProduct(&models.CreateProductRequest{
		AgentID: "agent-003",
		Name:    "Quesadillas",
		Price:   95,
	})
	agent, _ := svc.GetAgent("agent-003")
	assert.Equal(t, 4, agent.ProductCount)
	assert.Equal(t, 4, product.SortOrder)

	require.True(t, svc.DeleteProduct(product.ID))
	agent, _ = svc.GetAgent("agent-003")
	assert.Equal(t, 3, agent.ProductCount)
}

func TestImportProducts(t *testing.T) {
	svc, notifier := newTestService()

	imported := svc.ImportProducts(&models.ImportProductsRequest{
		AgentID: "agent-003",
		Source:  "sheets",
		Items: []models.ImportProduct{
			{Name: "Pozole", Price: 120, IsActive: true},
			{Name: "Tamales", Price: 60, IsActive: true},
		},
	})

	require.Len(t, imported, 2)
	assert.Equal(t, 4, imported[0].SortOrder)
	assert.Equal(t, 5, imported[1].SortOrder)
	agent, _ := svc.GetAgent("agent-003")
	assert.Equal(t, 5, agent.ProductCount)
	assert.Equal(t, webhook.EventProductImported, notifier.last())
}

func TestToggleIntegrationRespectsPlanLimit(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewAgentService(notifier, func(enabled int) bool { return enabled < 1 })

	// agent-001 already has one connector enabled (int-001)
	_, err := svc.ToggleIntegration("int-002")
	assert.ErrorIs(t, err, ErrIntegrationLimit)

	// Disabling is always allowed
	disabled, err := svc.ToggleIntegration("int-001")
	require.NoError(t, err)
	assert.False(t, disabled.Enabled)

	// With the slot freed, enabling succeeds
	enabled, err := svc.ToggleIntegration("int-002")
	require.NoError(t, err)
	assert.True(t, enabled.Enabled)
}

func TestConfigureIntegration(t *testing.T) {
	svc, _ := newTestService()

	integration, ok := svc.ConfigureIntegration("int-002", &models.UpdateIntegrationConfigRequest{
		Environment: models.EnvProduction,
		Credentials: map[string]string{"apiKey": "bold_live_key"},
	})

	require.True(t, ok)
	assert.True(t, integration.Configured)
	assert.Equal(t, models.EnvProduction, integration.Environment)
	assert.Equal(t, "bold_live_key", integration.Credentials["apiKey"])
}

func TestLoadStatsRecomputesAgentCounters(t *testing.T) {
	svc, _ := newTestService()

	stats := svc.LoadStats()
	assert.Equal(t, 3, stats.TotalAgents)
	assert.Equal(t, 2, stats.ActiveAgents)

	svc.DeleteAgent("agent-001")
	stats = svc.LoadStats()
	assert.Equal(t, 2, stats.TotalAgents)
	assert.Equal(t, 1, stats.ActiveAgents)
	// Seeded analytics fields are left alone
	assert.Equal(t, 2081, stats.TotalMessages)
}

func TestAddConversationMessage(t *testing.T) {
	svc, _ := newTestService()
	conv := svc.Conversations("agent-001")[0]
	agentBefore, _ := svc.GetAgent("agent-001")

	msg, ok := svc.AddConversationMessage(conv.ID, "human", "Ya está lista su habitación.")

	require.True(t, ok)
	assert.Equal(t, conv.AgentID, msg.AgentID)

	after := svc.Conversations("agent-001")[0]
	assert.Equal(t, conv.MessageCount+1, after.MessageCount)
	assert.Equal(t, "Ya está lista su habitación.", after.LastMessage)

	agentAfter, _ := svc.GetAgent("agent-001")
	assert.Equal(t, agentBefore.MessageCount+1, agentAfter.MessageCount)
}

func TestToggleConversationMode(t *testing.T) {
	svc, _ := newTestService()

	// conv-002 starts under bot handling
	conv, ok := svc.ToggleConversationMode("conv-002")
	require.True(t, ok)
	assert.Equal(t, models.StatusHumanHandling, conv.Status)

	conv, ok = svc.ToggleConversationMode("conv-002")
	require.True(t, ok)
	assert.Equal(t, models.StatusBotHandling, conv.Status)

	// Resolved threads reopen under human control
	conv, ok = svc.ToggleConversationMode("conv-003")
	require.True(t, ok)
	assert.Equal(t, models.StatusHumanHandling, conv.Status)

	_, ok = svc.ToggleConversationMode("conv-999")
	assert.False(t, ok)
}

func TestResolveConversation(t *testing.T) {
	svc, _ := newTestService()

	conv, ok := svc.ResolveConversation("conv-001")
	require.True(t, ok)
	assert.Equal(t, models.StatusResolved, conv.Status)
}

func TestTrainingChatRepliesImmediately(t *testing.T) {
	svc, _ := newTestService()

	turns := svc.AddTrainingMessage("agent-001", "Los precios suben 10% en temporada alta", models.TrainingToolPrices, "")

	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "agent", turns[1].Role)
	assert.True(t, turns[1].KnowledgeSaved)
	assert.Len(t, svc.TrainingMessages("agent-001"), 2)

	svc.ClearTrainingMessages("agent-001")
	assert.Empty(t, svc.TrainingMessages("agent-001"))
}

func TestUpdateCRMClient(t *testing.T) {
	svc, _ := newTestService()
	notes := "Confirmó su reserva para marzo."
	status := "vip"

	client, ok := svc.UpdateCRMClient("client-002", &models.UpdateCRMClientRequest{
		Notes:  &notes,
		Status: &status,
	})

	require.True(t, ok)
	assert.Equal(t, notes, client.Notes)
	assert.Equal(t, "vip", client.Status)
	// Untouched fields survive
	assert.Equal(t, "Sarah Johnson", client.Name)
}

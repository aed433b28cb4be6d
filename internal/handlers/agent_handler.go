package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/core/plan"
	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/services"
)

type AgentHandler struct {
	agents   *services.AgentService
	plans    *plan.Store
	validate *validator.Validate
}

func NewAgentHandler(agents *services.AgentService, plans *plan.Store, validate *validator.Validate) *AgentHandler {
	return &AgentHandler{
		agents:   agents,
		plans:    plans,
		validate: validate,
	}
}

// ListAgents godoc
// @Summary List all agents
// @Tags Agents
// @Produce json
// @Success 200 {array} models.Agent
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *fiber.Ctx) error {
	return c.JSON(h.agents.Agents())
}

// GetAgent godoc
// @Summary Get agent by ID
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} models.Agent
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *fiber.Ctx) error {
	agent, ok := h.agents.GetAgent(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}
	return c.JSON(agent)
}

// CreateAgent godoc
// @Summary Create a new agent
// @Description Create an agent. Rejected when the active plan's agent limit is reached.
// @Tags Agents
// @Accept json
// @Produce json
// @Param agent body models.CreateAgentRequest true "Agent data"
// @Success 201 {object} models.Agent
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *fiber.Ctx) error {
	var req models.CreateAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !h.plans.CanAddAgent(len(h.agents.Agents())) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Agent limit reached for current plan",
			"limit": h.plans.AgentLimit(),
		})
	}

	agent := h.agents.AddAgent(&req)
	return c.Status(fiber.StatusCreated).JSON(agent)
}

// UpdateAgent godoc
// @Summary Update an agent
// @Description Partial update; omitted fields are left untouched
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param agent body models.UpdateAgentRequest true "Fields to update"
// @Success 200 {object} models.Agent
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *fiber.Ctx) error {
	var req models.UpdateAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	agent, ok := h.agents.UpdateAgent(c.Params("id"), &req)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}
	return c.JSON(agent)
}

// DeleteAgent godoc
// @Summary Delete an agent
// @Description Removes the agent and all of its FAQs, contacts and products
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *fiber.Ctx) error {
	if !h.agents.DeleteAgent(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Agent deleted successfully"})
}

// GetCurrentAgent godoc
// @Summary Get the selected agent
// @Tags Agents
// @Produce json
// @Success 200 {object} models.Agent
// @Failure 404 {object} map[string]interface{}
// @Router /agents/current [get]
func (h *AgentHandler) GetCurrentAgent(c *fiber.Ctx) error {
	agent, ok := h.agents.CurrentAgent()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No agent selected",
		})
	}
	return c.JSON(agent)
}

// SetCurrentAgent godoc
// @Summary Select the working agent
// @Description Selects the agent the dashboard operates on. An empty id clears the selection.
// @Tags Agents
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /agents/current [put]
func (h *AgentHandler) SetCurrentAgent(c *fiber.Ctx) error {
	var req struct {
		AgentID string `json:"agent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	h.agents.SetCurrentAgent(req.AgentID)
	return c.JSON(fiber.Map{"agent_id": req.AgentID})
}

// UpdateSocialLinks godoc
// @Summary Replace an agent's social links
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param links body models.SocialLinks true "Social links"
// @Success 200 {object} models.Agent
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/social-links [put]
func (h *AgentHandler) UpdateSocialLinks(c *fiber.Ctx) error {
	var links models.SocialLinks
	if err := c.BodyParser(&links); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	agent, ok := h.agents.UpdateSocialLinks(c.Params("id"), &links)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}
	return c.JSON(agent)
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Live agent counters plus the seeded analytics snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /stats [get]
func (h *AgentHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.agents.LoadStats())
}

// GetWeeklyMessages godoc
// @Summary Weekly message chart data
// @Tags Dashboard
// @Produce json
// @Success 200 {array} models.WeeklyMessageData
// @Router /stats/weekly [get]
func (h *AgentHandler) GetWeeklyMessages(c *fiber.Ctx) error {
	return c.JSON(h.agents.WeeklyMessages())
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/services"
)

type HealthHandler struct {
	agents *services.AgentService
}

func NewHealthHandler(agents *services.AgentService) *HealthHandler {
	return &HealthHandler{agents: agents}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "agent-hub-api",
		"agents":  len(h.agents.Agents()),
	})
}

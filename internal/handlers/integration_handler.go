package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/services"
)

type IntegrationHandler struct {
	agents   *services.AgentService
	validate *validator.Validate
}

func NewIntegrationHandler(agents *services.AgentService, validate *validator.Validate) *IntegrationHandler {
	return &IntegrationHandler{agents: agents, validate: validate}
}

// ListIntegrations godoc
// @Summary List an agent's connectors
// @Tags Integrations
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {array} models.Integration
// @Router /agents/{id}/integrations [get]
func (h *IntegrationHandler) ListIntegrations(c *fiber.Ctx) error {
	return c.JSON(h.agents.Integrations(c.Params("id")))
}

// ToggleIntegration godoc
// @Summary Enable or disable a connector
// @Description Enabling is rejected when the plan's integration limit is reached
// @Tags Integrations
// @Produce json
// @Param id path string true "Integration ID"
// @Success 200 {object} models.Integration
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /integrations/{id}/toggle [post]
func (h *IntegrationHandler) ToggleIntegration(c *fiber.Ctx) error {
	integration, err := h.agents.ToggleIntegration(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrIntegrationLimit) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(integration)
}

// ConfigureIntegration godoc
// @Summary Store connector credentials
// @Tags Integrations
// @Accept json
// @Produce json
// @Param id path string true "Integration ID"
// @Param config body models.UpdateIntegrationConfigRequest true "Credentials"
// @Success 200 {object} models.Integration
// @Failure 404 {object} map[string]interface{}
// @Router /integrations/{id}/config [put]
func (h *IntegrationHandler) ConfigureIntegration(c *fiber.Ctx) error {
	var req models.UpdateIntegrationConfigRequest
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
	integration, ok := h.agents.ConfigureIntegration(c.Params("id"), &req)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Integration not found",
		})
	}
	return c.JSON(integration)
}

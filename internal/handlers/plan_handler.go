package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/core/plan"
)

type PlanHandler struct {
	plans *plan.Store
}

func NewPlanHandler(plans *plan.Store) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// GetPlan godoc
// @Summary Active subscription plan
// @Description The active tier with its limits and feature list. Unlimited limits serialize as -1.
// @Tags Plan
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /plan [get]
func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"tier":              h.plans.Current(),
		"agent_limit":       wireLimit(h.plans.AgentLimit()),
		"integration_limit": wireLimit(h.plans.IntegrationLimit()),
		"message_limit":     wireLimit(h.plans.MessageLimit()),
		"whatsapp_limit":    wireLimit(h.plans.WhatsAppLimit()),
		"features":          h.plans.Features(),
	})
}

// SelectPlan godoc
// @Summary Switch the subscription tier
// @Description Swaps the active tier wholesale; unknown tiers are rejected
// @Tags Plan
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /plan [put]
func (h *PlanHandler) SelectPlan(c *fiber.Ctx) error {
	var req struct {
		Tier plan.Tier `json:"tier"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if !plan.ValidTier(req.Tier) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown plan tier",
			"tiers": plan.Tiers(),
		})
	}
	h.plans.Select(req.Tier)
	return c.JSON(fiber.Map{"tier": h.plans.Current()})
}

// ListFeatures godoc
// @Summary Feature flags for the active tier
// @Tags Plan
// @Produce json
// @Success 200 {array} string
// @Router /plan/features [get]
func (h *PlanHandler) ListFeatures(c *fiber.Ctx) error {
	return c.JSON(h.plans.Features())
}

// wireLimit maps the internal unlimited sentinel to -1 for JSON consumers
func wireLimit(limit int) int {
	if limit == math.MaxInt {
		return -1
	}
	return limit
}

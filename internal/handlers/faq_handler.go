package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/seed"
	"github.com/lisahub/agent-hub-be/internal/services"
)

type FAQHandler struct {
	agents   *services.AgentService
	validate *validator.Validate
}

func NewFAQHandler(agents *services.AgentService, validate *validator.Validate) *FAQHandler {
	return &FAQHandler{agents: agents, validate: validate}
}

// ListFAQs godoc
// @Summary List an agent's FAQs
// @Tags FAQs
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {array} models.FAQ
// @Router /agents/{id}/faqs [get]
func (h *FAQHandler) ListFAQs(c *fiber.Ctx) error {
	return c.JSON(h.agents.FAQs(c.Params("id")))
}

// CreateFAQ godoc
// @Summary Create a FAQ
// @Description Appends the FAQ at the end of the agent's ordering
// @Tags FAQs
// @Accept json
// @Produce json
// @Param faq body models.CreateFAQRequest true "FAQ data"
// @Success 201 {object} models.FAQ
// @Failure 400 {object} map[string]interface{}
// @Router /faqs [post]
func (h *FAQHandler) CreateFAQ(c *fiber.Ctx) error {
	var req models.CreateFAQRequest
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
	return c.Status(fiber.StatusCreated).JSON(h.agents.AddFAQ(&req))
}

// UpdateFAQ godoc
// @Summary Update a FAQ
// @Tags FAQs
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param faq body models.UpdateFAQRequest true "Fields to update"
// @Success 200 {object} models.FAQ
// @Failure 404 {object} map[string]interface{}
// @Router /faqs/{id} [put]
func (h *FAQHandler) UpdateFAQ(c *fiber.Ctx) error {
	var req models.UpdateFAQRequest
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
	faq, ok := h.agents.UpdateFAQ(c.Params("id"), &req)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "FAQ not found",
		})
	}
	return c.JSON(faq)
}

// DeleteFAQ godoc
// @Summary Delete a FAQ
// @Tags FAQs
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /faqs/{id} [delete]
func (h *FAQHandler) DeleteFAQ(c *fiber.Ctx) error {
	if !h.agents.DeleteFAQ(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "FAQ not found",
		})
	}
	return c.JSON(fiber.Map{"message": "FAQ deleted successfully"})
}

// ListFAQTemplates godoc
// @Summary List the FAQ template pack
// @Tags FAQs
// @Produce json
// @Success 200 {array} models.FAQTemplate
// @Router /faq-templates [get]
func (h *FAQHandler) ListFAQTemplates(c *fiber.Ctx) error {
	return c.JSON(seed.FAQTemplates())
}

// LoadFAQTemplates godoc
// @Summary Load the template pack into an agent
// @Description Bulk-inserts every template as a FAQ for the agent
// @Tags FAQs
// @Produce json
// @Param id path string true "Agent ID"
// @Success 201 {array} models.FAQ
// @Router /agents/{id}/faqs/templates [post]
func (h *FAQHandler) LoadFAQTemplates(c *fiber.Ctx) error {
	created := h.agents.LoadFAQTemplates(c.Params("id"), seed.FAQTemplates())
	return c.Status(fiber.StatusCreated).JSON(created)
}

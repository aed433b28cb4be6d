package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/services"
)

type ContactHandler struct {
	agents   *services.AgentService
	validate *validator.Validate
}

func NewContactHandler(agents *services.AgentService, validate *validator.Validate) *ContactHandler {
	return &ContactHandler{agents: agents, validate: validate}
}

// ListContacts godoc
// @Summary List an agent's handoff contacts
// @Tags Contacts
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {array} models.HotelContact
// @Router /agents/{id}/contacts [get]
func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	return c.JSON(h.agents.Contacts(c.Params("id")))
}

// CreateContact godoc
// @Summary Create a handoff contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body models.CreateContactRequest true "Contact data"
// @Success 201 {object} models.HotelContact
// @Failure 400 {object} map[string]interface{}
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var req models.CreateContactRequest
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
	return c.Status(fiber.StatusCreated).JSON(h.agents.AddContact(&req))
}

// UpdateContact godoc
// @Summary Update a handoff contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body models.UpdateContactRequest true "Fields to update"
// @Success 200 {object} models.HotelContact
// @Failure 404 {object} map[string]interface{}
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	var req models.UpdateContactRequest
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
	contact, ok := h.agents.UpdateContact(c.Params("id"), &req)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact not found",
		})
	}
	return c.JSON(contact)
}

// DeleteContact godoc
// @Summary Delete a handoff contact
// @Tags Contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	if !h.agents.DeleteContact(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Contact deleted successfully"})
}

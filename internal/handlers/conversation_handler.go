package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/services"
)

type ConversationHandler struct {
	agents   *services.AgentService
	validate *validator.Validate
}

func NewConversationHandler(agents *services.AgentService, validate *validator.Validate) *ConversationHandler {
	return &ConversationHandler{agents: agents, validate: validate}
}

// ListConversations godoc
// @Summary List an agent's WhatsApp threads
// @Tags Conversations
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {array} models.Conversation
// @Router /agents/{id}/conversations [get]
func (h *ConversationHandler) ListConversations(c *fiber.Ctx) error {
	return c.JSON(h.agents.Conversations(c.Params("id")))
}

// ListMessages godoc
// @Summary List a thread's message history
// @Tags Conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {array} models.Message
// @Router /conversations/{id}/messages [get]
func (h *ConversationHandler) ListMessages(c *fiber.Ctx) error {
	return c.JSON(h.agents.ConversationMessages(c.Params("id")))
}

// SetStatus godoc
// @Summary Change who is driving a thread
// @Description Switches between bot handling, human handling and resolved
// @Tags Conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} models.Conversation
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id}/status [put]
func (h *ConversationHandler) SetStatus(c *fiber.Ctx) error {
	var req struct {
		Status models.ConversationStatus `json:"status" validate:"required,oneof=bot_handling human_handling resolved"`
	}
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
	conv, ok := h.agents.SetConversationStatus(c.Params("id"), req.Status)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	return c.JSON(conv)
}

// ToggleMode godoc
// @Summary Toggle a thread between bot and human handling
// @Description Flips based on the current status; resolved threads reopen under human control
// @Tags Conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} models.Conversation
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id}/toggle-mode [post]
func (h *ConversationHandler) ToggleMode(c *fiber.Ctx) error {
	conv, ok := h.agents.ToggleConversationMode(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	return c.JSON(conv)
}

// Resolve godoc
// @Summary Mark a thread resolved
// @Tags Conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} models.Conversation
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id}/resolve [post]
func (h *ConversationHandler) Resolve(c *fiber.Ctx) error {
	conv, ok := h.agents.ResolveConversation(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	return c.JSON(conv)
}

// AddMessage godoc
// @Summary Append a message to a thread
// @Tags Conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 201 {object} models.Message
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) AddMessage(c *fiber.Ctx) error {
	var req struct {
		Role    string `json:"role" validate:"required,oneof=user assistant human"`
		Content string `json:"content" validate:"required,min=1"`
	}
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
	msg, ok := h.agents.AddConversationMessage(c.Params("id"), req.Role, req.Content)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// TagConversation godoc
// @Summary Replace a thread's tag list
// @Tags Conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} models.Conversation
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id}/tags [put]
func (h *ConversationHandler) TagConversation(c *fiber.Ctx) error {
	var req struct {
		Tags []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	conv, ok := h.agents.TagConversation(c.Params("id"), req.Tags)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	return c.JSON(conv)
}

// ListTags godoc
// @Summary List an agent's tag palette
// @Tags Conversations
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {array} models.ConversationTag
// @Router /agents/{id}/tags [get]
func (h *ConversationHandler) ListTags(c *fiber.Ctx) error {
	return c.JSON(h.agents.ConversationTags(c.Params("id")))
}

// CreateTag godoc
// @Summary Create a tag in the palette
// @Tags Conversations
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Success 201 {object} models.ConversationTag
// @Router /agents/{id}/tags [post]
func (h *ConversationHandler) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name" validate:"required,min=1,max=60"`
		Color string `json:"color" validate:"required,min=1,max=30"`
	}
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
	tag := h.agents.AddConversationTag(c.Params("id"), req.Name, req.Color)
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// DeleteTag godoc
// @Summary Delete a tag from the palette
// @Tags Conversations
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /tags/{id} [delete]
func (h *ConversationHandler) DeleteTag(c *fiber.Ctx) error {
	if !h.agents.DeleteConversationTag(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tag not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Tag deleted successfully"})
}

// ListClients godoc
// @Summary List an agent's CRM clients
// @Tags CRM
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {array} models.CRMClient
// @Router /agents/{id}/clients [get]
func (h *ConversationHandler) ListClients(c *fiber.Ctx) error {
	return c.JSON(h.agents.CRMClients(c.Params("id")))
}

// UpdateClient godoc
// @Summary Update a CRM client record
// @Tags CRM
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body models.UpdateCRMClientRequest true "Fields to update"
// @Success 200 {object} models.CRMClient
// @Failure 404 {object} map[string]interface{}
// @Router /clients/{id} [put]
func (h *ConversationHandler) UpdateClient(c *fiber.Ctx) error {
	var req models.UpdateCRMClientRequest
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
	client, ok := h.agents.UpdateCRMClient(c.Params("id"), &req)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	return c.JSON(client)
}

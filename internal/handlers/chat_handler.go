package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/services"
)

type ChatHandler struct {
	history  *services.ChatHistoryService
	validate *validator.Validate
}

func NewChatHandler(history *services.ChatHistoryService, validate *validator.Validate) *ChatHandler {
	return &ChatHandler{history: history, validate: validate}
}

// ListSessions godoc
// @Summary List chat sessions, most recent first
// @Tags Chat
// @Produce json
// @Param grouped query boolean false "Bucket sessions by recency"
// @Success 200 {array} models.ChatSession
// @Router /chat/sessions [get]
func (h *ChatHandler) ListSessions(c *fiber.Ctx) error {
	if c.QueryBool("grouped") {
		return c.JSON(h.history.GroupedSessions(time.Now()))
	}
	return c.JSON(h.history.Sessions())
}

// GetSession godoc
// @Summary Get one chat session
// @Tags Chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ChatSession
// @Failure 404 {object} map[string]interface{}
// @Router /chat/sessions/{id} [get]
func (h *ChatHandler) GetSession(c *fiber.Ctx) error {
	session, ok := h.history.Session(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	return c.JSON(session)
}

// CreateSession godoc
// @Summary Open a chat session
// @Description Creates a session titled from its first message
// @Tags Chat
// @Accept json
// @Produce json
// @Param session body models.CreateSessionRequest true "First message"
// @Success 201 {object} models.ChatSession
// @Failure 400 {object} map[string]interface{}
// @Router /chat/sessions [post]
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	var req models.CreateSessionRequest
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
	return c.Status(fiber.StatusCreated).JSON(h.history.CreateSession(req.FirstMessage))
}

// AddMessage godoc
// @Summary Append a message to a session
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param message body models.AddChatMessageRequest true "Message"
// @Success 200 {object} models.ChatSession
// @Failure 404 {object} map[string]interface{}
// @Router /chat/sessions/{id}/messages [post]
func (h *ChatHandler) AddMessage(c *fiber.Ctx) error {
	var req models.AddChatMessageRequest
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
	session, ok := h.history.AddMessage(c.Params("id"), &req)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	return c.JSON(session)
}

// DeleteSession godoc
// @Summary Delete a chat session
// @Tags Chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/sessions/{id} [delete]
func (h *ChatHandler) DeleteSession(c *fiber.Ctx) error {
	if !h.history.DeleteSession(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Session deleted successfully"})
}

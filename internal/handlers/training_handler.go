package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/core/prompt"
	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/services"
)

type TrainingHandler struct {
	agents   *services.AgentService
	validate *validator.Validate
}

func NewTrainingHandler(agents *services.AgentService, validate *validator.Validate) *TrainingHandler {
	return &TrainingHandler{agents: agents, validate: validate}
}

// ListTrainingMessages godoc
// @Summary Training chat transcript
// @Tags Training
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {array} models.TrainingMessage
// @Router /agents/{id}/training [get]
func (h *TrainingHandler) ListTrainingMessages(c *fiber.Ctx) error {
	return c.JSON(h.agents.TrainingMessages(c.Params("id")))
}

// SendTrainingMessage godoc
// @Summary Send a training chat turn
// @Description Records the trainer's message and returns it together with the agent's reply
// @Tags Training
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Success 201 {array} models.TrainingMessage
// @Router /agents/{id}/training [post]
func (h *TrainingHandler) SendTrainingMessage(c *fiber.Ctx) error {
	var req struct {
		Content    string                  `json:"content" validate:"required,min=1"`
		ToolType   models.TrainingToolType `json:"tool_type,omitempty" validate:"omitempty,oneof=file prices schedule menu faq sheets"`
		Attachment string                  `json:"attachment_name,omitempty"`
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
	turns := h.agents.AddTrainingMessage(c.Params("id"), req.Content, req.ToolType, req.Attachment)
	return c.Status(fiber.StatusCreated).JSON(turns)
}

// ClearTrainingMessages godoc
// @Summary Wipe the training transcript
// @Tags Training
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Router /agents/{id}/training [delete]
func (h *TrainingHandler) ClearTrainingMessages(c *fiber.Ctx) error {
	h.agents.ClearTrainingMessages(c.Params("id"))
	return c.JSON(fiber.Map{"message": "Training messages cleared"})
}

// GetSystemPrompt godoc
// @Summary Build the agent's system prompt
// @Description Assembles the behaviour template, regional voice and knowledge summary into the prompt the agent runs with
// @Tags Training
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/prompt [get]
func (h *TrainingHandler) GetSystemPrompt(c *fiber.Ctx) error {
	agent, ok := h.agents.GetAgent(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}

	region := prompt.Region("neutral")
	register := prompt.Register("professional")
	if agent.CommunicationStyle != nil {
		if agent.CommunicationStyle.Region != "" {
			region = prompt.Region(agent.CommunicationStyle.Region)
		}
		if agent.CommunicationStyle.Register != "" {
			register = prompt.Register(agent.CommunicationStyle.Register)
		}
	}

	built := prompt.BuildSystemPrompt(
		&agent,
		agent.FaqCount,
		agent.ProductCount,
		agent.SocialLinks != nil,
		agent.AlgorithmType,
		region,
		register,
	)
	return c.JSON(fiber.Map{
		"agent_id": agent.ID,
		"prompt":   built,
	})
}

// PreviewPrompt godoc
// @Summary Preview the prompt for a configuration
// @Description Builds a short preview without needing a saved agent
// @Tags Training
// @Produce json
// @Param hotel_name query string true "Business name"
// @Param algorithm query string false "Behaviour template"
// @Param region query string false "Regional voice"
// @Success 200 {object} map[string]interface{}
// @Router /prompt/preview [get]
func (h *TrainingHandler) PreviewPrompt(c *fiber.Ctx) error {
	hotelName := c.Query("hotel_name")
	if hotelName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "hotel_name is required",
		})
	}
	algorithm := models.AlgorithmType(c.Query("algorithm", string(models.AlgorithmHotel)))
	region := prompt.Region(c.Query("region", "neutral"))
	return c.JSON(fiber.Map{
		"preview": prompt.Preview(hotelName, algorithm, region),
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/core/i18n"
)

type LocaleHandler struct {
	locales *i18n.Store
}

func NewLocaleHandler(locales *i18n.Store) *LocaleHandler {
	return &LocaleHandler{locales: locales}
}

// GetLocale godoc
// @Summary Active locale and its dictionary
// @Tags Locale
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /locale [get]
func (h *LocaleHandler) GetLocale(c *fiber.Ctx) error {
	locale, dict := h.locales.Current()
	return c.JSON(fiber.Map{
		"locale":       locale,
		"translations": dict,
	})
}

// SetLocale godoc
// @Summary Switch the dashboard locale
// @Description Unknown locale codes are rejected; the dictionary swaps with the code
// @Tags Locale
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /locale [put]
func (h *LocaleHandler) SetLocale(c *fiber.Ctx) error {
	var req struct {
		Locale i18n.Locale `json:"locale"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if !i18n.ValidLocale(req.Locale) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown locale",
		})
	}
	h.locales.SetLocale(req.Locale)
	locale, dict := h.locales.Current()
	return c.JSON(fiber.Map{
		"locale":       locale,
		"translations": dict,
	})
}

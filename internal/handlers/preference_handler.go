package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lisahub/agent-hub-be/internal/services"
)

type PreferenceHandler struct {
	prefs *services.PreferenceService
}

func NewPreferenceHandler(prefs *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

// GetPreferences godoc
// @Summary Dashboard UI preference flags
// @Tags Preferences
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /preferences [get]
func (h *PreferenceHandler) GetPreferences(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"sidebar_collapsed": h.prefs.Collapsed(),
		"mobile_open":       h.prefs.MobileOpen(),
		"modal_open":        h.prefs.ModalOpen(),
	})
}

// ToggleSidebar godoc
// @Summary Toggle the sidebar collapsed flag
// @Description Flips and persists the collapsed flag, returning the new value
// @Tags Preferences
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /preferences/sidebar/toggle [post]
func (h *PreferenceHandler) ToggleSidebar(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"sidebar_collapsed": h.prefs.ToggleCollapsed()})
}

// SetPreferences godoc
// @Summary Set UI preference flags
// @Description Only the sidebar collapsed flag is persisted; the rest are session state
// @Tags Preferences
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /preferences [put]
func (h *PreferenceHandler) SetPreferences(c *fiber.Ctx) error {
	var req struct {
		SidebarCollapsed *bool `json:"sidebar_collapsed,omitempty"`
		MobileOpen       *bool `json:"mobile_open,omitempty"`
		ModalOpen        *bool `json:"modal_open,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.SidebarCollapsed != nil {
		h.prefs.SetCollapsed(*req.SidebarCollapsed)
	}
	if req.MobileOpen != nil {
		h.prefs.SetMobileOpen(*req.MobileOpen)
	}
	if req.ModalOpen != nil {
		h.prefs.SetModalOpen(*req.ModalOpen)
	}
	return c.JSON(fiber.Map{
		"sidebar_collapsed": h.prefs.Collapsed(),
		"mobile_open":       h.prefs.MobileOpen(),
		"modal_open":        h.prefs.ModalOpen(),
	})
}

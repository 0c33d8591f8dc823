package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings returns the default business configuration.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	business, err := h.settingsService.GetSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(business)
}

// UpdateSettings applies a partial update to the business configuration.
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req services.SettingsUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	business, err := h.settingsService.UpdateSettings(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(business)
}

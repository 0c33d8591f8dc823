package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reviewpilot/review-pilot-be/internal/core/llm"
)

type HealthHandler struct {
	llmService *llm.Service
}

func NewHealthHandler(llmService *llm.Service) *HealthHandler {
	return &HealthHandler{llmService: llmService}
}

func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "review-pilot-api",
		"provider": h.llmService.GetProviderName(),
	})
}

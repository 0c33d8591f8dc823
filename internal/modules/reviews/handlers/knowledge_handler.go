package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/services"
)

type KnowledgeHandler struct {
	knowledgeService *services.KnowledgeService
	businessRepo     repositories.BusinessRepo
}

func NewKnowledgeHandler(knowledgeService *services.KnowledgeService, businessRepo repositories.BusinessRepo) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
		businessRepo:     businessRepo,
	}
}

// GetKnowledgeBase returns the stored knowledge base for the default business.
func (h *KnowledgeHandler) GetKnowledgeBase(c *fiber.Ctx) error {
	business, err := h.businessRepo.GetDefault()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	kb, err := h.knowledgeService.GetKnowledgeBase(business.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(kb)
}

// Ingest classifies a free-text snippet into a typed fact and stores it.
func (h *KnowledgeHandler) Ingest(c *fiber.Ctx) error {
	business, err := h.businessRepo.GetDefault()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Text is required",
		})
	}

	fact, err := h.knowledgeService.Ingest(c.Context(), business.ID, req.Text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fact)
}

package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/reviewpilot/review-pilot-be/internal/core/reply"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/services"
)

type ReviewHandler struct {
	reviewService   *services.ReviewService
	analysisService *services.AnalysisService
	businessRepo    repositories.BusinessRepo
}

func NewReviewHandler(reviewService *services.ReviewService, analysisService *services.AnalysisService, businessRepo repositories.BusinessRepo) *ReviewHandler {
	return &ReviewHandler{
		reviewService:   reviewService,
		analysisService: analysisService,
		businessRepo:    businessRepo,
	}
}

// ListReviews returns all reviews for the default business, newest first.
// An empty inbox is seeded with sample reviews on first call.
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	business, err := h.businessRepo.GetDefault()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	reviews, err := h.reviewService.GetReviews(business.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(reviews)
}

// GenerateReply drafts an AI reply for one review. A crisis match returns
// 422 with requiresHumanReview so the dashboard can route to a human.
func (h *ReviewHandler) GenerateReply(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review ID",
		})
	}

	var req struct {
		ToneOverride string `json:"toneOverride"`
	}
	// Body is optional; an empty body means no tone override.
	_ = c.BodyParser(&req)

	result, err := h.reviewService.GenerateReply(c.Context(), reviewID, req.ToneOverride)
	if err != nil {
		var blocked *reply.BlockedError
		if errors.As(err, &blocked) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(blocked)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// SaveReply persists an operator-edited reply as draft or replied.
func (h *ReviewHandler) SaveReply(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review ID",
		})
	}

	var req struct {
		Content string              `json:"content"`
		Status  models.ReviewStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Reply content is required",
		})
	}
	if req.Status == "" {
		req.Status = models.StatusReplied
	}

	if err := h.reviewService.SaveReply(reviewID, req.Content, req.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Reply saved successfully",
	})
}

// AnalyzeReviews enriches the newest unanalyzed reviews with sentiment,
// topics and entities.
func (h *ReviewHandler) AnalyzeReviews(c *fiber.Ctx) error {
	business, err := h.businessRepo.GetDefault()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	enriched, err := h.analysisService.EnrichReviews(c.Context(), business.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Reviews analyzed",
		"enriched": enriched,
	})
}

// SeedReviews generates mock reviews for load-testing the inbox.
func (h *ReviewHandler) SeedReviews(c *fiber.Ctx) error {
	business, err := h.businessRepo.GetDefault()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	count := 0
	if countStr := c.Query("count"); countStr != "" {
		count, err = strconv.Atoi(countStr)
		if err != nil || count < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid count",
			})
		}
	}

	created, err := h.reviewService.SeedMockReviews(business.ID, count)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Mock reviews created",
		"count":   created,
	})
}

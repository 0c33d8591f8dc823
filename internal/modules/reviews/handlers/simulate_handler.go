package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/services"
)

type SimulateHandler struct {
	simulationService *services.SimulationService
	businessRepo      repositories.BusinessRepo
}

func NewSimulateHandler(simulationService *services.SimulationService, businessRepo repositories.BusinessRepo) *SimulateHandler {
	return &SimulateHandler{
		simulationService: simulationService,
		businessRepo:      businessRepo,
	}
}

// Simulate answers a hypothetical customer question from the knowledge base
// and reports which facts surfaced in the answer.
func (h *SimulateHandler) Simulate(c *fiber.Ctx) error {
	business, err := h.businessRepo.GetDefault()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required",
		})
	}

	result, err := h.simulationService.Simulate(c.Context(), business.ID, req.Query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

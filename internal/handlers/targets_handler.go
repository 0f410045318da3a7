package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rezan-m/NutriPlanBack/internal/models"
	"github.com/rezan-m/NutriPlanBack/internal/services"
)

type targetsCalculator interface {
	Recalculate(ctx context.Context, userID int64) (*models.DailyTargets, bool, error)
	Get(ctx context.Context, userID int64) (*models.DailyTargets, error)
}

type TargetsHandler struct {
	service targetsCalculator
}

func NewTargetsHandler(service targetsCalculator) *TargetsHandler {
	return &TargetsHandler{service: service}
}

// Recalculate is the explicit recompute command: callers hit it after any
// profile or goal change instead of relying on reactive recomputation.
func (h *TargetsHandler) Recalculate(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	targets, changed, err := h.service.Recalculate(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Profile is missing age, weight, height, or activity level",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to recalculate targets"})
	}

	return c.JSON(fiber.Map{
		"targets": targets,
		"changed": changed,
	})
}

func (h *TargetsHandler) GetTargets(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	targets, err := h.service.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Targets not calculated yet"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load targets"})
	}

	return c.JSON(fiber.Map{"targets": targets})
}

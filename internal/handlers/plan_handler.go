package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rezan-m/NutriPlanBack/internal/models"
	"github.com/rezan-m/NutriPlanBack/internal/services"
)

type mealPlanner interface {
	GeneratePlan(ctx context.Context, userID int64, input services.GeneratePlanInput) (*models.MealPlan, error)
	RegenerateMeal(ctx context.Context, plan *models.MealPlan, mealID string, foodIDs []string) (*models.MealPlan, error)
}

type PlanHandler struct {
	planner mealPlanner
}

func NewPlanHandler(planner mealPlanner) *PlanHandler {
	return &PlanHandler{planner: planner}
}

type generatePlanRequest struct {
	FoodIDs         []string `json:"food_ids"`
	MealCount       int      `json:"meal_count"`
	IncludeFreeMeal bool     `json:"include_free_meal"`
}

// regeneratePlanRequest carries the whole plan back because plans are never
// persisted server-side; the caller owns the lifecycle.
type regeneratePlanRequest struct {
	Plan    *models.MealPlan `json:"plan"`
	FoodIDs []string         `json:"food_ids"`
}

func (h *PlanHandler) GeneratePlan(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req generatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan, err := h.planner.GeneratePlan(c.Context(), userID, services.GeneratePlanInput{
		FoodIDs:         req.FoodIDs,
		MealCount:       req.MealCount,
		IncludeFreeMeal: req.IncludeFreeMeal,
	})
	if err != nil {
		return mapPlanError(c, err)
	}

	return c.JSON(fiber.Map{"plan": plan})
}

func (h *PlanHandler) RegenerateMeal(c *fiber.Ctx) error {
	if _, err := parseUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	mealID := c.Params("id")
	var req regeneratePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan, err := h.planner.RegenerateMeal(c.Context(), req.Plan, mealID, req.FoodIDs)
	if err != nil {
		return mapPlanError(c, err)
	}

	return c.JSON(fiber.Map{"plan": plan})
}

func mapPlanError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan request"})
	case errors.Is(err, services.ErrEmptyFoodPool):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No foods found for the given ids"})
	case errors.Is(err, services.ErrProfileIncomplete):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Daily targets have no macros yet; set a goal and recalculate"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Targets not calculated yet"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build meal plan"})
	}
}

package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rezan-m/NutriPlanBack/internal/models"
	"github.com/rezan-m/NutriPlanBack/internal/repository"
)

type goalStore interface {
	Upsert(ctx context.Context, userID int64, input repository.UpsertGoalInput) (*models.Goal, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Goal, error)
	Delete(ctx context.Context, userID int64) error
}

type GoalHandler struct {
	goalRepo goalStore
}

func NewGoalHandler(goalRepo goalStore) *GoalHandler {
	return &GoalHandler{goalRepo: goalRepo}
}

type upsertGoalRequest struct {
	GoalType  string    `json:"goal_type"`
	GoalValue float64   `json:"goal_value"`
	GoalDate  time.Time `json:"goal_date"`
	GoalPace  string    `json:"goal_pace"`
}

func (h *GoalHandler) GetGoal(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	goal, err := h.goalRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load goal"})
	}

	return c.JSON(fiber.Map{"goal": goal})
}

func (h *GoalHandler) UpsertGoal(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req upsertGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateGoalRequest(req, time.Now()); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	pace := req.GoalPace
	if pace == "" {
		pace = models.PaceModerate
	}

	goal, err := h.goalRepo.Upsert(c.Context(), userID, repository.UpsertGoalInput{
		GoalType:  req.GoalType,
		GoalValue: req.GoalValue,
		GoalDate:  req.GoalDate,
		GoalPace:  pace,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update goal"})
	}

	return c.JSON(fiber.Map{"goal": goal})
}

func (h *GoalHandler) DeleteGoal(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if err := h.goalRepo.Delete(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete goal"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

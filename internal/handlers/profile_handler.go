package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rezan-m/NutriPlanBack/internal/models"
	"github.com/rezan-m/NutriPlanBack/internal/repository"
)

type profileStore interface {
	Upsert(ctx context.Context, userID int64, input repository.UpsertProfileInput) (*models.UserProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type ProfileHandler struct {
	profileRepo profileStore
}

func NewProfileHandler(profileRepo profileStore) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

type upsertProfileRequest struct {
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	Weight        *float64 `json:"weight"`
	HeightCM      *float64 `json:"height_cm"`
	HeightFeet    *int     `json:"height_feet"`
	HeightInches  *float64 `json:"height_inches"`
	BodyFatPct    *float64 `json:"body_fat_percentage"`
	ActivityLevel *string  `json:"activity_level"`
	UseMetric     *bool    `json:"use_metric"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) UpsertProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProfileRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	useMetric := true
	if req.UseMetric != nil {
		useMetric = *req.UseMetric
	}

	profile, err := h.profileRepo.Upsert(c.Context(), userID, repository.UpsertProfileInput{
		Age:           req.Age,
		Gender:        req.Gender,
		Weight:        req.Weight,
		HeightCM:      req.HeightCM,
		HeightFeet:    req.HeightFeet,
		HeightInches:  req.HeightInches,
		BodyFatPct:    req.BodyFatPct,
		ActivityLevel: req.ActivityLevel,
		UseMetric:     useMetric,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func parseUserID(c *fiber.Ctx) (int64, error) {
	userIDValue := c.Locals("user_id")
	userIDStr, ok := userIDValue.(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}

package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rezan-m/NutriPlanBack/internal/models"
)

const (
	defaultFoodPageLimit = 25
	maxFoodPageLimit     = 100
)

type foodCatalog interface {
	List(ctx context.Context, limit, offset int) ([]models.FoodItem, error)
	Search(ctx context.Context, term string, limit int) ([]models.FoodItem, error)
}

type FoodHandler struct {
	foodRepo foodCatalog
}

func NewFoodHandler(foodRepo foodCatalog) *FoodHandler {
	return &FoodHandler{foodRepo: foodRepo}
}

func (h *FoodHandler) ListFoods(c *fiber.Ctx) error {
	if _, err := parseUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	limit := parsePositiveInt(c.Query("limit"), defaultFoodPageLimit)
	if limit > maxFoodPageLimit {
		limit = maxFoodPageLimit
	}
	offset := 0
	if parsed, err := strconv.Atoi(c.Query("offset")); err == nil && parsed > 0 {
		offset = parsed
	}

	foods, err := h.foodRepo.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load foods"})
	}

	return c.JSON(fiber.Map{"foods": foods})
}

func (h *FoodHandler) SearchFoods(c *fiber.Ctx) error {
	if _, err := parseUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter q is required"})
	}

	limit := parsePositiveInt(c.Query("limit"), defaultFoodPageLimit)
	if limit > maxFoodPageLimit {
		limit = maxFoodPageLimit
	}

	foods, err := h.foodRepo.Search(c.Context(), term, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search foods"})
	}

	return c.JSON(fiber.Map{"foods": foods})
}

func parsePositiveInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rezan-m/NutriPlanBack/internal/config"
	"github.com/rezan-m/NutriPlanBack/internal/handlers"
	"github.com/rezan-m/NutriPlanBack/internal/middleware"
	"github.com/rezan-m/NutriPlanBack/internal/repository"
	"github.com/rezan-m/NutriPlanBack/internal/services"
	notifyws "github.com/rezan-m/NutriPlanBack/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	profileRepo := repository.NewProfileRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	targetsRepo := repository.NewTargetsRepository(db)
	foodRepo := repository.NewFoodRepository(db)

	notifyHub := notifyws.NewHub()
	go notifyHub.Run()

	targetsService := services.NewTargetsService(profileRepo, goalRepo, targetsRepo, notifyHub)
	plannerService := services.NewPlannerService(foodRepo, targetsRepo, nil)

	profileHandler := handlers.NewProfileHandler(profileRepo)
	goalHandler := handlers.NewGoalHandler(goalRepo)
	targetsHandler := handlers.NewTargetsHandler(targetsService)
	planHandler := handlers.NewPlanHandler(plannerService)
	foodHandler := handlers.NewFoodHandler(foodRepo)
	notificationsHandler := handlers.NewNotificationsHandler(notifyHub, cfg.JWTSecret)

	api := app.Group("/api")
	v1 := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	v1.Get("/profile", profileHandler.GetProfile)
	v1.Put("/profile", profileHandler.UpsertProfile)

	v1.Get("/goal", goalHandler.GetGoal)
	v1.Put("/goal", goalHandler.UpsertGoal)
	v1.Delete("/goal", goalHandler.DeleteGoal)

	v1.Get("/targets", targetsHandler.GetTargets)
	v1.Post("/targets/recalculate", targetsHandler.Recalculate)

	v1.Get("/foods", foodHandler.ListFoods)
	v1.Get("/foods/search", foodHandler.SearchFoods)

	v1.Post("/plans/generate", planHandler.GeneratePlan)
	v1.Post("/plans/meals/:id/regenerate", planHandler.RegenerateMeal)

	api.Use("/v1/ws", notificationsHandler.WebSocketAuth)
	api.Get("/v1/ws", websocket.New(notificationsHandler.HandleWebSocket))
}

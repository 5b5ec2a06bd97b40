package routes

import (
	"github.com/chayanon-dev/game_academy/handlers"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func ChallengeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	challenges := api.Group("/challenges")
	challenges.Get("", handlers.GetChallenges)
	challenges.Get("/active", handlers.GetActiveChallenges)
	challenges.Get("/:id", handlers.GetChallenge)
	challenges.Post("", middleware.Protected(), middleware.AdminRequired(), handlers.CreateChallenge)
	challenges.Put("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateChallenge)
	challenges.Delete("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteChallenge)

	userChallenges := api.Group("/user-challenges", middleware.Protected())
	userChallenges.Get("/my", handlers.GetMyChallenges)
	userChallenges.Get("/my/active", handlers.GetMyActiveChallenges)
	userChallenges.Get("/my/completed", handlers.GetMyCompletedChallenges)
	userChallenges.Post("/start/:id", handlers.StartChallenge)
	userChallenges.Put("/progress/:id", handlers.UpdateChallengeProgress)
	userChallenges.Delete("/:id", handlers.DeleteUserChallenge)
}

package routes

import (
	"github.com/chayanon-dev/game_academy/handlers"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	quiz := api.Group("/quiz", middleware.Protected())
	quiz.Get("/questions", handlers.GetQuizQuestions)
	quiz.Post("/submit", handlers.SubmitQuiz)
}

package routes

import (
	"github.com/chayanon-dev/game_academy/handlers"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func TournamentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	tournaments := api.Group("/tournaments")
	tournaments.Get("", handlers.GetTournaments)
	tournaments.Get("/:id", handlers.GetTournament)
	tournaments.Post("", middleware.Protected(), middleware.InstructorRequired(), handlers.CreateTournament)
	tournaments.Put("/:id", middleware.Protected(), middleware.InstructorRequired(), handlers.UpdateTournament)
	tournaments.Delete("/:id", middleware.Protected(), middleware.InstructorRequired(), handlers.DeleteTournament)

	results := api.Group("/tournament-results", middleware.Protected())
	results.Get("/my-results", handlers.GetMyTournamentResults)
	results.Get("/tournament/:id", handlers.GetTournamentResults)
	results.Post("", middleware.InstructorRequired(), handlers.CreateTournamentResult)
	results.Put("/:id", middleware.InstructorRequired(), handlers.UpdateTournamentResult)
	results.Delete("/:id", middleware.InstructorRequired(), handlers.DeleteTournamentResult)
}

package routes

import (
	"github.com/chayanon-dev/game_academy/handlers"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func ApplicationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	applications := api.Group("/instructor-applications", middleware.Protected())
	applications.Get("/my", handlers.GetMyApplications)
	applications.Get("", middleware.AdminRequired(), handlers.GetAllApplications)
	applications.Post("", handlers.CreateApplication)
	applications.Put("/:id/status", middleware.AdminRequired(), handlers.UpdateApplicationStatus)
	applications.Delete("/:id", handlers.DeleteApplication)
}

package routes

import (
	"github.com/chayanon-dev/game_academy/handlers"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/me", middleware.Protected(), handlers.GetMe)

	profile := api.Group("/profile", middleware.Protected())
	profile.Put("", handlers.UpdateProfile)
	profile.Put("/password", handlers.ChangePassword)
}

package routes

import (
	"github.com/chayanon-dev/game_academy/handlers"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected())
	payments.Get("/my", handlers.GetMyPayments)
	payments.Get("/course/:id", middleware.InstructorRequired(), handlers.GetCoursePayments)
	payments.Post("", handlers.CreatePayment)
	payments.Put("/:id/status", middleware.AdminRequired(), handlers.UpdatePaymentStatus)
	payments.Delete("/:id", middleware.AdminRequired(), handlers.DeletePayment)
}

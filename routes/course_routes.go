package routes

import (
	"github.com/chayanon-dev/game_academy/handlers"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	courses := api.Group("/courses")
	courses.Get("", handlers.GetCourses)
	courses.Get("/category/:category", handlers.GetCoursesByCategory)
	courses.Get("/instructor/:id", handlers.GetCoursesByInstructor)
	courses.Get("/:id", handlers.GetCourse)
	courses.Post("", middleware.Protected(), middleware.InstructorRequired(), handlers.CreateCourse)
	courses.Put("/:id", middleware.Protected(), middleware.InstructorRequired(), handlers.UpdateCourse)
	courses.Delete("/:id", middleware.Protected(), middleware.InstructorRequired(), handlers.DeleteCourse)

	courses.Get("/:courseId/lessons", handlers.GetCourseLessons)
	courses.Post("/:courseId/lessons", middleware.Protected(), middleware.InstructorRequired(), handlers.CreateLesson)

	lessons := api.Group("/lessons")
	lessons.Get("/:id", handlers.GetLesson)
	lessons.Put("/:id", middleware.Protected(), middleware.InstructorRequired(), handlers.UpdateLesson)
	lessons.Delete("/:id", middleware.Protected(), middleware.InstructorRequired(), handlers.DeleteLesson)

	enrollments := api.Group("/enrollments", middleware.Protected())
	enrollments.Get("/my", handlers.GetMyEnrollments)
	enrollments.Get("/course/:id", middleware.InstructorRequired(), handlers.GetCourseEnrollments)
	enrollments.Post("", handlers.EnrollInCourse)
	enrollments.Put("/progress", handlers.UpdateEnrollmentProgress)
	enrollments.Delete("/:id", handlers.DeleteEnrollment)

	reviews := api.Group("/reviews")
	reviews.Get("/course/:id", handlers.GetCourseReviews)
	reviews.Get("/my", middleware.Protected(), handlers.GetMyReviews)
	reviews.Post("", middleware.Protected(), handlers.CreateReview)
	reviews.Put("/:id", middleware.Protected(), handlers.UpdateReview)
	reviews.Delete("/:id", middleware.Protected(), handlers.DeleteReview)
}

package handlers

import (
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EnrollRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

type ProgressRequest struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" validate:"required"`
	Progress     int       `json:"progress" validate:"min=0,max=100"`
}

func GetMyEnrollments(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var enrollments []models.Enrollment
	if err := database.DB.Preload("Course").
		Where("user_id = ?", userID).Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}
	return c.JSON(enrollments)
}

func GetCourseEnrollments(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var enrollments []models.Enrollment
	if err := database.DB.Preload("User").
		Where("course_id = ?", courseID).Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}
	return c.JSON(enrollments)
}

func EnrollInCourse(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", req.CourseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var existing models.Enrollment
	if err := database.DB.Where("user_id = ? AND course_id = ?", userID, req.CourseID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already enrolled in this course"})
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   req.CourseID,
		EnrolledAt: time.Now(),
	}
	if err := database.DB.Create(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll in course"})
	}
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

func UpdateEnrollmentProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var enrollment models.Enrollment
	if err := database.DB.First(&enrollment, "id = ?", req.EnrollmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if enrollment.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only update your own enrollments"})
	}

	wasCompleted := enrollment.Completed
	enrollment.Progress = req.Progress
	enrollment.Completed = req.Progress >= 100

	if err := database.DB.Save(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}

	if enrollment.Completed && !wasCompleted {
		go services.CheckAndGenerateCertificate(enrollment)
	}
	return c.JSON(enrollment)
}

func DeleteEnrollment(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid enrollment ID"})
	}

	var enrollment models.Enrollment
	if err := database.DB.First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	if enrollment.UserID != userID && middleware.GetUserRole(c) != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only delete your own enrollments"})
	}

	if err := database.DB.Delete(&enrollment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete enrollment"})
	}
	return c.JSON(fiber.Map{"message": "Enrollment deleted successfully"})
}

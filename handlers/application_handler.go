package handlers

import (
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/notifications"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRequest struct {
	ApplicationText string `json:"application_text" validate:"required,min=20"`
	Experience      string `json:"experience" validate:"required"`
}

type ApplicationVerdictRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func GetMyApplications(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var applications []models.InstructorApplication
	if err := database.DB.Where("user_id = ?", userID).Order("applied_at desc").Find(&applications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch applications"})
	}
	return c.JSON(applications)
}

func GetAllApplications(c *fiber.Ctx) error {
	var applications []models.InstructorApplication
	if err := database.DB.Preload("User").Order("applied_at desc").Find(&applications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch applications"})
	}
	return c.JSON(applications)
}

func CreateApplication(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	role := middleware.GetUserRole(c)
	if role == models.RoleInstructor || role == models.RoleAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You are already an instructor"})
	}

	var req ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var pending int64
	database.DB.Model(&models.InstructorApplication{}).
		Where("user_id = ? AND status = ?", userID, models.ApplicationStatusPending).Count(&pending)
	if pending > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You already have a pending application"})
	}

	application := models.InstructorApplication{
		UserID:          userID,
		ApplicationText: req.ApplicationText,
		Experience:      req.Experience,
		Status:          models.ApplicationStatusPending,
		AppliedAt:       time.Now(),
	}
	if err := database.DB.Create(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit application"})
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

func UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application ID"})
	}

	var application models.InstructorApplication
	if err := database.DB.Preload("User").First(&application, "id = ?", applicationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	var req ApplicationVerdictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	approved := req.Status == models.ApplicationStatusApproved
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		application.Status = req.Status
		if err := tx.Save(&application).Error; err != nil {
			return err
		}
		if approved {
			return tx.Model(&models.User{}).
				Where("id = ?", application.UserID).Update("role", models.RoleInstructor).Error
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application"})
	}

	notifications.SendApplicationVerdictEmail(application.User.FirstName, application.User.Email, approved)

	return c.JSON(application)
}

func DeleteApplication(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application ID"})
	}

	var application models.InstructorApplication
	if err := database.DB.First(&application, "id = ?", applicationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	if middleware.GetUserRole(c) != models.RoleAdmin {
		if application.UserID != userID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only delete your own applications"})
		}
		if application.Status != models.ApplicationStatusPending {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending applications can be withdrawn"})
		}
	}

	if err := database.DB.Delete(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete application"})
	}
	return c.JSON(fiber.Map{"message": "Application deleted successfully"})
}

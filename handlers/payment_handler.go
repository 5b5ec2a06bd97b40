package handlers

import (
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreatePaymentRequest struct {
	CourseID      uuid.UUID `json:"course_id" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
}

type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed failed refunded"`
}

func GetMyPayments(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var payments []models.Payment
	if err := database.DB.Preload("Course").
		Where("user_id = ?", userID).Order("paid_at desc").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

func GetCoursePayments(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var payments []models.Payment
	if err := database.DB.Preload("User").
		Where("course_id = ?", courseID).Order("paid_at desc").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

// CreatePayment simulates the gateway round trip: the payment is created
// pending, marked completed, and the user is enrolled, all in one
// transaction.
func CreatePayment(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req CreatePaymentRequest
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

	var completed int64
	database.DB.Model(&models.Payment{}).
		Where("user_id = ? AND course_id = ? AND payment_status = ?", userID, req.CourseID, models.PaymentStatusCompleted).
		Count(&completed)
	if completed > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Course already paid for"})
	}

	var payment models.Payment
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateUniquePaymentReference(tx)
		if err != nil {
			return err
		}

		payment = models.Payment{
			UserID:        userID,
			CourseID:      req.CourseID,
			Amount:        course.Price,
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: models.PaymentStatusPending,
			Reference:     reference,
			PaidAt:        time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		payment.PaymentStatus = models.PaymentStatusCompleted
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		var existing models.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", userID, req.CourseID).First(&existing).Error; err == nil {
			return nil
		}
		return tx.Create(&models.Enrollment{
			UserID:     userID,
			CourseID:   req.CourseID,
			EnrolledAt: time.Now(),
		}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process payment"})
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func UpdatePaymentStatus(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	var req PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment.PaymentStatus = req.PaymentStatus
	if err := database.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment status"})
	}
	return c.JSON(payment)
}

func DeletePayment(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	result := database.DB.Delete(&models.Payment{}, "id = ?", paymentID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	return c.JSON(fiber.Map{"message": "Payment deleted successfully"})
}

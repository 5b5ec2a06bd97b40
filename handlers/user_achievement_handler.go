package handlers

import (
	"errors"
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnlockAchievementRequest struct {
	UserID        uuid.UUID `json:"user_id" validate:"required"`
	AchievementID uuid.UUID `json:"achievement_id" validate:"required"`
}

func listUserAchievements(c *fiber.Ctx, userID uuid.UUID) error {
	var unlocks []models.UserAchievement
	if err := database.DB.Preload("Achievement").
		Where("user_id = ?", userID).Order("unlocked_at desc").Find(&unlocks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}
	return c.JSON(unlocks)
}

func GetMyAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	return listUserAchievements(c, userID)
}

func GetUserAchievementsByID(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	return listUserAchievements(c, userID)
}

func UnlockAchievement(c *fiber.Ctx) error {
	var req UnlockAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var achievement models.Achievement
	if err := database.DB.First(&achievement, "id = ?", req.AchievementID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Achievement not found"})
	}

	var existing models.UserAchievement
	if err := database.DB.Where("user_id = ? AND achievement_id = ?", req.UserID, req.AchievementID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Achievement already unlocked for this user"})
	}

	unlock := models.UserAchievement{
		UserID:        req.UserID,
		AchievementID: req.AchievementID,
		UnlockedAt:    time.Now(),
	}
	if err := database.DB.Create(&unlock).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unlock achievement"})
	}

	if achievement.XP > 0 {
		if _, err := services.AwardXP(database.DB, req.UserID, achievement.XP); err != nil && !errors.Is(err, services.ErrNoLevelsDefined) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Achievement unlocked but XP grant failed"})
		}
	}

	unlock.Achievement = achievement
	return c.Status(fiber.StatusCreated).JSON(unlock)
}

func CheckCriteria(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	result, err := services.CheckAndUnlock(database.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check achievement criteria"})
	}
	return c.JSON(result)
}

func DeleteUserAchievement(c *fiber.Ctx) error {
	unlockID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user achievement ID"})
	}

	var unlock models.UserAchievement
	if err := database.DB.Preload("Achievement").First(&unlock, "id = ?", unlockID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User achievement not found"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.UserAchievement{}, "id = ?", unlockID).Error; err != nil {
			return err
		}
		if unlock.Achievement.XP > 0 {
			return services.RevokeXP(tx, unlock.UserID, unlock.Achievement.XP)
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user achievement"})
	}
	return c.JSON(fiber.Map{"message": "User achievement deleted successfully"})
}

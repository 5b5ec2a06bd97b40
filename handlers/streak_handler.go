package handlers

import (
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/gofiber/fiber/v2"
)

func GetMyStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var streak models.Streak
	if err := database.DB.Where("user_id = ?", userID).First(&streak).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Streak not found"})
	}
	return c.JSON(streak)
}

func GetAllStreaks(c *fiber.Ctx) error {
	var streaks []models.Streak
	if err := database.DB.Preload("User").Order("count desc").Find(&streaks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch streaks"})
	}
	return c.JSON(streaks)
}

func CreateStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var existing models.Streak
	if err := database.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Streak already exists"})
	}

	streak := models.Streak{
		UserID:        userID,
		Count:         1,
		StreakStartAt: time.Now(),
	}
	if err := database.DB.Create(&streak).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create streak"})
	}
	return c.Status(fiber.StatusCreated).JSON(streak)
}

func IncrementStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var streak models.Streak
	if err := database.DB.Where("user_id = ?", userID).First(&streak).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Streak not found"})
	}

	streak.Count++
	if err := database.DB.Save(&streak).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to increment streak"})
	}
	return c.JSON(streak)
}

func ResetStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var streak models.Streak
	if err := database.DB.Where("user_id = ?", userID).First(&streak).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Streak not found"})
	}

	now := time.Now()
	streak.Count = 0
	streak.StreakResetAt = &now
	if err := database.DB.Save(&streak).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset streak"})
	}
	return c.JSON(streak)
}

func DeleteStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	result := database.DB.Where("user_id = ?", userID).Delete(&models.Streak{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete streak"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Streak not found"})
	}
	return c.JSON(fiber.Map{"message": "Streak deleted successfully"})
}

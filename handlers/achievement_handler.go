package handlers

import (
	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	IconURL     string `json:"icon_url" validate:"required,url"`
	Points      int    `json:"points" validate:"min=0"`
	XP          int    `json:"xp" validate:"min=0"`
	Criteria    string `json:"criteria" validate:"required"`
}

func validCriteria(raw string) bool {
	criteria, err := models.ParseCriteria(raw)
	if err != nil {
		return false
	}
	switch criteria.Type {
	case models.CriteriaCoursesCompleted, models.CriteriaChallengesCompleted:
		return criteria.Count > 0
	case models.CriteriaLevelReached:
		return criteria.Level > 0
	}
	return false
}

func GetAchievements(c *fiber.Ctx) error {
	var achievements []models.Achievement
	if err := database.DB.Order("created_at asc").Find(&achievements).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}
	return c.JSON(achievements)
}

func GetAchievement(c *fiber.Ctx) error {
	achievementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid achievement ID"})
	}

	var achievement models.Achievement
	if err := database.DB.First(&achievement, "id = ?", achievementID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Achievement not found"})
	}
	return c.JSON(achievement)
}

func CreateAchievement(c *fiber.Ctx) error {
	var req AchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !validCriteria(req.Criteria) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid criteria"})
	}

	achievement := models.Achievement{
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
		Points:      req.Points,
		XP:          req.XP,
		Criteria:    req.Criteria,
	}
	if err := database.DB.Create(&achievement).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create achievement"})
	}
	return c.Status(fiber.StatusCreated).JSON(achievement)
}

func UpdateAchievement(c *fiber.Ctx) error {
	achievementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid achievement ID"})
	}

	var achievement models.Achievement
	if err := database.DB.First(&achievement, "id = ?", achievementID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Achievement not found"})
	}

	var req AchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !validCriteria(req.Criteria) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid criteria"})
	}

	achievement.Name = req.Name
	achievement.Description = req.Description
	achievement.IconURL = req.IconURL
	achievement.Points = req.Points
	achievement.XP = req.XP
	achievement.Criteria = req.Criteria

	if err := database.DB.Save(&achievement).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update achievement"})
	}
	return c.JSON(achievement)
}

func DeleteAchievement(c *fiber.Ctx) error {
	achievementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid achievement ID"})
	}

	var achievement models.Achievement
	if err := database.DB.First(&achievement, "id = ?", achievementID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Achievement not found"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("achievement_id = ?", achievementID).Delete(&models.UserAchievement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&achievement).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete achievement"})
	}
	return c.JSON(fiber.Map{"message": "Achievement deleted successfully"})
}

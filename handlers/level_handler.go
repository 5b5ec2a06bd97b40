package handlers

import (
	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LevelRequest struct {
	LevelNumber int     `json:"level_number" validate:"required,min=1"`
	Name        string  `json:"name" validate:"required"`
	MinXP       int     `json:"min_xp" validate:"min=0"`
	MaxXP       int     `json:"max_xp" validate:"required,min=1"`
	Rewards     *string `json:"rewards"`
}

func levelConflicts(req LevelRequest, excludeID *uuid.UUID) (string, bool) {
	if req.MinXP >= req.MaxXP {
		return "min_xp must be less than max_xp", true
	}

	var count int64
	numberQuery := database.DB.Model(&models.Level{}).Where("level_number = ?", req.LevelNumber)
	if excludeID != nil {
		numberQuery = numberQuery.Where("id <> ?", *excludeID)
	}
	numberQuery.Count(&count)
	if count > 0 {
		return "A level with this level_number already exists", true
	}

	overlap := database.DB.Model(&models.Level{}).
		Where("min_xp < ? AND max_xp > ?", req.MaxXP, req.MinXP)
	if excludeID != nil {
		overlap = overlap.Where("id <> ?", *excludeID)
	}
	overlap.Count(&count)
	if count > 0 {
		return "XP range overlaps an existing level", true
	}

	return "", false
}

func GetLevels(c *fiber.Ctx) error {
	var levels []models.Level
	if err := database.DB.Order("level_number asc").Find(&levels).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch levels"})
	}
	return c.JSON(levels)
}

func GetLevel(c *fiber.Ctx) error {
	levelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid level ID"})
	}

	var level models.Level
	if err := database.DB.First(&level, "id = ?", levelID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Level not found"})
	}
	return c.JSON(level)
}

func CreateLevel(c *fiber.Ctx) error {
	var req LevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if msg, conflict := levelConflicts(req, nil); conflict {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	level := models.Level{
		LevelNumber: req.LevelNumber,
		Name:        req.Name,
		MinXP:       req.MinXP,
		MaxXP:       req.MaxXP,
		Rewards:     req.Rewards,
	}
	if err := database.DB.Create(&level).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create level"})
	}
	return c.Status(fiber.StatusCreated).JSON(level)
}

func UpdateLevel(c *fiber.Ctx) error {
	levelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid level ID"})
	}

	var level models.Level
	if err := database.DB.First(&level, "id = ?", levelID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Level not found"})
	}

	var req LevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if msg, conflict := levelConflicts(req, &levelID); conflict {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	level.LevelNumber = req.LevelNumber
	level.Name = req.Name
	level.MinXP = req.MinXP
	level.MaxXP = req.MaxXP
	level.Rewards = req.Rewards

	if err := database.DB.Save(&level).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update level"})
	}
	return c.JSON(level)
}

func DeleteLevel(c *fiber.Ctx) error {
	levelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid level ID"})
	}

	var level models.Level
	if err := database.DB.First(&level, "id = ?", levelID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Level not found"})
	}

	var inUse int64
	database.DB.Model(&models.UserLevel{}).Where("level_id = ?", levelID).Count(&inUse)
	if inUse > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a level that users currently hold"})
	}

	if err := database.DB.Delete(&level).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete level"})
	}
	return c.JSON(fiber.Map{"message": "Level deleted successfully"})
}

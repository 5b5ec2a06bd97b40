package handlers

import (
	"errors"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AddXPRequest struct {
	Amount int        `json:"amount" validate:"required"`
	UserID *uuid.UUID `json:"user_id"`
}

type SetUserLevelRequest struct {
	LevelID   uuid.UUID `json:"level_id" validate:"required"`
	CurrentXP int       `json:"current_xp" validate:"min=0"`
}

func userLevelView(userLevel *models.UserLevel) fiber.Map {
	level := userLevel.Level
	xpToNext := level.MaxXP - userLevel.CurrentXP
	if xpToNext < 0 {
		xpToNext = 0
	}
	return fiber.Map{
		"user_id":          userLevel.UserID,
		"level_number":     level.LevelNumber,
		"level_name":       level.Name,
		"current_xp":       userLevel.CurrentXP,
		"min_xp":           level.MinXP,
		"max_xp":           level.MaxXP,
		"xp_to_next_level": xpToNext,
		"rewards":          level.Rewards,
		"updated_at":       userLevel.UpdatedAt,
	}
}

func fetchUserLevel(userID uuid.UUID) (*models.UserLevel, error) {
	userLevel, err := services.EnsureUserLevel(database.DB, userID)
	if err != nil {
		return nil, err
	}
	var full models.UserLevel
	if err := database.DB.Preload("Level").First(&full, "id = ?", userLevel.ID).Error; err != nil {
		return nil, err
	}
	return &full, nil
}

func GetMyUserLevel(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	userLevel, err := fetchUserLevel(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoLevelsDefined) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoLevelsDefined.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user level"})
	}
	return c.JSON(userLevelView(userLevel))
}

func GetUserLevelByID(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	userLevel, err := fetchUserLevel(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoLevelsDefined) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoLevelsDefined.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user level"})
	}
	return c.JSON(userLevelView(userLevel))
}

func AddXP(c *fiber.Ctx) error {
	callerID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req AddXPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	targetID := callerID
	if req.UserID != nil && *req.UserID != callerID {
		if middleware.GetUserRole(c) != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only admins can award XP to other users"})
		}
		targetID = *req.UserID
	}

	award, err := services.AwardXP(database.DB, targetID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": services.ErrInvalidAmount.Error()})
		case errors.Is(err, services.ErrNoLevelsDefined):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoLevelsDefined.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add XP"})
		}
	}

	return c.JSON(award)
}

func SetUserLevel(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req SetUserLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var level models.Level
	if err := database.DB.First(&level, "id = ?", req.LevelID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Level not found"})
	}
	if req.CurrentXP < level.MinXP || req.CurrentXP >= level.MaxXP {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "current_xp must lie within the level's XP range"})
	}

	var userLevel models.UserLevel
	if err := database.DB.Where("user_id = ?", userID).First(&userLevel).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User level not found"})
	}

	userLevel.LevelID = level.ID
	userLevel.CurrentXP = req.CurrentXP
	if err := database.DB.Save(&userLevel).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user level"})
	}

	userLevel.Level = level
	return c.JSON(userLevelView(&userLevel))
}

func DeleteUserLevel(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	result := database.DB.Where("user_id = ?", userID).Delete(&models.UserLevel{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user level"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User level not found"})
	}
	return c.JSON(fiber.Map{"message": "User level deleted successfully"})
}

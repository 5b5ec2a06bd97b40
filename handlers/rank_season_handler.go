package handlers

import (
	"errors"
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RankSeasonRequest struct {
	Name      string    `json:"name" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	IsActive  bool      `json:"is_active"`
}

func GetRankSeasons(c *fiber.Ctx) error {
	var seasons []models.RankSeason
	if err := database.DB.Order("start_date desc").Find(&seasons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch seasons"})
	}
	return c.JSON(seasons)
}

func GetActiveRankSeason(c *fiber.Ctx) error {
	season, err := services.ActiveSeason(database.DB)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSeason) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoActiveSeason.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch active season"})
	}
	return c.JSON(season)
}

func GetRankSeason(c *fiber.Ctx) error {
	seasonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid season ID"})
	}

	var season models.RankSeason
	if err := database.DB.First(&season, "id = ?", seasonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Season not found"})
	}
	return c.JSON(season)
}

func CreateRankSeason(c *fiber.Ctx) error {
	var req RankSeasonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.EndDate.After(req.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must be after start_date"})
	}

	season := models.RankSeason{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsActive {
			if err := tx.Model(&models.RankSeason{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
				return err
			}
			season.IsActive = true
		}
		return tx.Create(&season).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create season"})
	}
	return c.Status(fiber.StatusCreated).JSON(season)
}

func UpdateRankSeason(c *fiber.Ctx) error {
	seasonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid season ID"})
	}

	var season models.RankSeason
	if err := database.DB.First(&season, "id = ?", seasonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Season not found"})
	}

	var req RankSeasonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.EndDate.After(req.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must be after start_date"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsActive && !season.IsActive {
			if err := tx.Model(&models.RankSeason{}).Where("is_active = ? AND id <> ?", true, seasonID).Update("is_active", false).Error; err != nil {
				return err
			}
		}
		season.Name = req.Name
		season.StartDate = req.StartDate
		season.EndDate = req.EndDate
		season.IsActive = req.IsActive
		return tx.Save(&season).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update season"})
	}
	return c.JSON(season)
}

func DeleteRankSeason(c *fiber.Ctx) error {
	seasonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid season ID"})
	}

	var season models.RankSeason
	if err := database.DB.First(&season, "id = ?", seasonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Season not found"})
	}

	var rankCount, userRankCount int64
	database.DB.Model(&models.Rank{}).Where("season_id = ?", seasonID).Count(&rankCount)
	database.DB.Model(&models.UserRank{}).Where("season_id = ?", seasonID).Count(&userRankCount)
	if rankCount > 0 || userRankCount > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a season that still has ranks or user standings"})
	}

	if err := database.DB.Delete(&season).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete season"})
	}
	return c.JSON(fiber.Map{"message": "Season deleted successfully"})
}

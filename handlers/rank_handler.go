package handlers

import (
	"errors"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RankRequest struct {
	Name      string    `json:"name" validate:"required"`
	MinPoints int       `json:"min_points" validate:"min=0"`
	SeasonID  uuid.UUID `json:"season_id" validate:"required"`
}

func rankConflicts(req RankRequest, excludeID *uuid.UUID) (string, bool) {
	var count int64
	nameQuery := database.DB.Model(&models.Rank{}).Where("season_id = ? AND name = ?", req.SeasonID, req.Name)
	if excludeID != nil {
		nameQuery = nameQuery.Where("id <> ?", *excludeID)
	}
	nameQuery.Count(&count)
	if count > 0 {
		return "A rank with this name already exists in the season", true
	}

	pointsQuery := database.DB.Model(&models.Rank{}).Where("season_id = ? AND min_points = ?", req.SeasonID, req.MinPoints)
	if excludeID != nil {
		pointsQuery = pointsQuery.Where("id <> ?", *excludeID)
	}
	pointsQuery.Count(&count)
	if count > 0 {
		return "A rank with this min_points already exists in the season", true
	}

	return "", false
}

func GetRanks(c *fiber.Ctx) error {
	var ranks []models.Rank
	if err := database.DB.Order("min_points asc").Find(&ranks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ranks"})
	}
	return c.JSON(ranks)
}

func GetActiveSeasonRanks(c *fiber.Ctx) error {
	season, err := services.ActiveSeason(database.DB)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSeason) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoActiveSeason.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch active season"})
	}

	ranks, err := services.SeasonRanks(database.DB, season.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoRanksDefined) {
			return c.JSON([]models.Rank{})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ranks"})
	}
	return c.JSON(ranks)
}

func GetSeasonRanks(c *fiber.Ctx) error {
	seasonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid season ID"})
	}

	var ranks []models.Rank
	if err := database.DB.Where("season_id = ?", seasonID).Order("min_points asc").Find(&ranks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch ranks"})
	}
	return c.JSON(ranks)
}

func CreateRank(c *fiber.Ctx) error {
	var req RankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var season models.RankSeason
	if err := database.DB.First(&season, "id = ?", req.SeasonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Season not found"})
	}

	if msg, conflict := rankConflicts(req, nil); conflict {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	rank := models.Rank{
		Name:      req.Name,
		MinPoints: req.MinPoints,
		SeasonID:  req.SeasonID,
	}
	if err := database.DB.Create(&rank).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create rank"})
	}
	return c.Status(fiber.StatusCreated).JSON(rank)
}

func UpdateRank(c *fiber.Ctx) error {
	rankID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rank ID"})
	}

	var rank models.Rank
	if err := database.DB.First(&rank, "id = ?", rankID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Rank not found"})
	}

	var req RankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var season models.RankSeason
	if err := database.DB.First(&season, "id = ?", req.SeasonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Season not found"})
	}

	if msg, conflict := rankConflicts(req, &rankID); conflict {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	rank.Name = req.Name
	rank.MinPoints = req.MinPoints
	rank.SeasonID = req.SeasonID
	if err := database.DB.Save(&rank).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update rank"})
	}
	return c.JSON(rank)
}

func DeleteRank(c *fiber.Ctx) error {
	rankID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rank ID"})
	}

	var rank models.Rank
	if err := database.DB.First(&rank, "id = ?", rankID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Rank not found"})
	}

	var inUse int64
	database.DB.Model(&models.UserRank{}).Where("rank_id = ?", rankID).Count(&inUse)
	if inUse > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a rank that users currently hold"})
	}

	if err := database.DB.Delete(&rank).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete rank"})
	}
	return c.JSON(fiber.Map{"message": "Rank deleted successfully"})
}

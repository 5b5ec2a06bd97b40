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

type AddPointsRequest struct {
	Amount int        `json:"amount" validate:"required"`
	UserID *uuid.UUID `json:"user_id"`
}

type SetUserRankRequest struct {
	RankID uuid.UUID `json:"rank_id" validate:"required"`
	Points int       `json:"points" validate:"min=0"`
}

func userRankView(userRank *models.UserRank) fiber.Map {
	return fiber.Map{
		"user_id":     userRank.UserID,
		"season_id":   userRank.SeasonID,
		"season_name": userRank.Season.Name,
		"rank_name":   userRank.Rank.Name,
		"min_points":  userRank.Rank.MinPoints,
		"points":      userRank.Points,
		"updated_at":  userRank.UpdatedAt,
	}
}

func fetchActiveUserRank(userID uuid.UUID) (*models.UserRank, error) {
	season, err := services.ActiveSeason(database.DB)
	if err != nil {
		return nil, err
	}
	ranks, err := services.SeasonRanks(database.DB, season.ID)
	if err != nil {
		return nil, err
	}
	userRank, err := services.EnsureUserRank(database.DB, userID, season, ranks)
	if err != nil {
		return nil, err
	}

	var full models.UserRank
	if err := database.DB.Preload("Rank").Preload("Season").First(&full, "id = ?", userRank.ID).Error; err != nil {
		return nil, err
	}
	return &full, nil
}

func rankServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNoActiveSeason):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoActiveSeason.Error()})
	case errors.Is(err, services.ErrNoRanksDefined):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoRanksDefined.Error()})
	case errors.Is(err, services.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": services.ErrInvalidAmount.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve user rank"})
	}
}

func GetMyUserRank(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	userRank, err := fetchActiveUserRank(userID)
	if err != nil {
		return rankServiceError(c, err)
	}
	return c.JSON(userRankView(userRank))
}

func GetMyUserRanks(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var userRanks []models.UserRank
	if err := database.DB.Preload("Rank").Preload("Season").
		Where("user_id = ?", userID).Order("created_at desc").Find(&userRanks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user ranks"})
	}

	views := make([]fiber.Map, 0, len(userRanks))
	for i := range userRanks {
		views = append(views, userRankView(&userRanks[i]))
	}
	return c.JSON(views)
}

func GetUserRankByID(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	userRank, err := fetchActiveUserRank(userID)
	if err != nil {
		return rankServiceError(c, err)
	}
	return c.JSON(userRankView(userRank))
}

func AddPoints(c *fiber.Ctx) error {
	callerID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req AddPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	targetID := callerID
	if req.UserID != nil && *req.UserID != callerID {
		if middleware.GetUserRole(c) != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only admins can award points to other users"})
		}
		targetID = *req.UserID
	}

	award, err := services.AwardPoints(database.DB, targetID, req.Amount)
	if err != nil {
		return rankServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"season_name":   award.Season.Name,
		"rank_name":     award.Rank.Name,
		"points":        award.Points,
		"points_added":  award.PointsAdded,
		"rank_up":       award.RankUp,
		"previous_rank": award.PreviousRank,
		"updated_at":    award.UpdatedAt,
	})
}

func SetUserRank(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	seasonID, err := uuid.Parse(c.Params("seasonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid season ID"})
	}

	var req SetUserRankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var rank models.Rank
	if err := database.DB.First(&rank, "id = ?", req.RankID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Rank not found"})
	}
	if rank.SeasonID != seasonID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rank does not belong to the given season"})
	}
	if req.Points < rank.MinPoints {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "points must be at least the rank's min_points"})
	}

	var userRank models.UserRank
	if err := database.DB.Where("user_id = ? AND season_id = ?", userID, seasonID).First(&userRank).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User rank not found"})
	}

	userRank.RankID = rank.ID
	userRank.Points = req.Points
	if err := database.DB.Save(&userRank).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user rank"})
	}

	userRank.Rank = rank
	database.DB.First(&userRank.Season, "id = ?", seasonID)
	return c.JSON(userRankView(&userRank))
}

func DeleteUserRank(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	seasonID, err := uuid.Parse(c.Params("seasonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid season ID"})
	}

	result := database.DB.Where("user_id = ? AND season_id = ?", userID, seasonID).Delete(&models.UserRank{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user rank"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User rank not found"})
	}
	return c.JSON(fiber.Map{"message": "User rank deleted successfully"})
}

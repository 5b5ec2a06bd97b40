package handlers

import (
	"errors"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/services"
	"github.com/gofiber/fiber/v2"
)

type LeaderboardEntry struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Points    int    `json:"points"`
	RankName  string `json:"rank_name"`
}

// GetLeaderboard returns the top standings of the active season.
func GetLeaderboard(c *fiber.Ctx) error {
	season, err := services.ActiveSeason(database.DB)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSeason) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoActiveSeason.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch active season"})
	}

	var leaderboard []LeaderboardEntry
	err = database.DB.Model(&models.UserRank{}).
		Select("users.username", "users.first_name", "users.last_name", "user_ranks.points", "ranks.name as rank_name").
		Joins("JOIN users ON users.id = user_ranks.user_id").
		Joins("JOIN ranks ON ranks.id = user_ranks.rank_id").
		Where("user_ranks.season_id = ?", season.ID).
		Order("user_ranks.points desc").
		Limit(20).
		Find(&leaderboard).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve leaderboard"})
	}

	return c.JSON(fiber.Map{
		"season":      season.Name,
		"leaderboard": leaderboard,
	})
}

func ListMyCertificates(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var certificates []models.Certificate
	database.DB.Where("user_id = ?", userID).Order("completion_date desc").Find(&certificates)

	return c.JSON(certificates)
}

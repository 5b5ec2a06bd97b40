package handlers

import (
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TournamentRequest struct {
	Name      string    `json:"name" validate:"required"`
	Game      string    `json:"game" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Organizer string    `json:"organizer" validate:"required"`
	PrizePool float64   `json:"prize_pool" validate:"min=0"`
}

type TournamentResultRequest struct {
	UserID       uuid.UUID `json:"user_id" validate:"required"`
	TournamentID uuid.UUID `json:"tournament_id" validate:"required"`
	Placement    int       `json:"placement" validate:"required,min=1"`
	TeamName     *string   `json:"team_name"`
	PrizeEarned  float64   `json:"prize_earned" validate:"min=0"`
}

func GetTournaments(c *fiber.Ctx) error {
	var tournaments []models.Tournament
	if err := database.DB.Order("date desc").Find(&tournaments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tournaments"})
	}
	return c.JSON(tournaments)
}

func GetTournament(c *fiber.Ctx) error {
	tournamentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tournament ID"})
	}

	var tournament models.Tournament
	if err := database.DB.First(&tournament, "id = ?", tournamentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tournament not found"})
	}
	return c.JSON(tournament)
}

func CreateTournament(c *fiber.Ctx) error {
	var req TournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tournament := models.Tournament{
		Name:      req.Name,
		Game:      req.Game,
		Date:      req.Date,
		Organizer: req.Organizer,
		PrizePool: req.PrizePool,
	}
	if err := database.DB.Create(&tournament).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tournament"})
	}
	return c.Status(fiber.StatusCreated).JSON(tournament)
}

func UpdateTournament(c *fiber.Ctx) error {
	tournamentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tournament ID"})
	}

	var tournament models.Tournament
	if err := database.DB.First(&tournament, "id = ?", tournamentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tournament not found"})
	}

	var req TournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tournament.Name = req.Name
	tournament.Game = req.Game
	tournament.Date = req.Date
	tournament.Organizer = req.Organizer
	tournament.PrizePool = req.PrizePool

	if err := database.DB.Save(&tournament).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update tournament"})
	}
	return c.JSON(tournament)
}

func DeleteTournament(c *fiber.Ctx) error {
	tournamentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tournament ID"})
	}

	var tournament models.Tournament
	if err := database.DB.First(&tournament, "id = ?", tournamentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tournament not found"})
	}

	var results int64
	database.DB.Model(&models.TournamentResult{}).Where("tournament_id = ?", tournamentID).Count(&results)
	if results > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a tournament with recorded results"})
	}

	if err := database.DB.Delete(&tournament).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete tournament"})
	}
	return c.JSON(fiber.Map{"message": "Tournament deleted successfully"})
}

func GetMyTournamentResults(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var results []models.TournamentResult
	if err := database.DB.Preload("Tournament").
		Where("user_id = ?", userID).Order("created_at desc").Find(&results).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch results"})
	}
	return c.JSON(results)
}

func GetTournamentResults(c *fiber.Ctx) error {
	tournamentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tournament ID"})
	}

	var results []models.TournamentResult
	if err := database.DB.Preload("User").
		Where("tournament_id = ?", tournamentID).Order("placement asc").Find(&results).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch results"})
	}
	return c.JSON(results)
}

func CreateTournamentResult(c *fiber.Ctx) error {
	var req TournamentResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var tournament models.Tournament
	if err := database.DB.First(&tournament, "id = ?", req.TournamentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tournament not found"})
	}

	var existing models.TournamentResult
	if err := database.DB.Where("user_id = ? AND tournament_id = ?", req.UserID, req.TournamentID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Result already recorded for this user and tournament"})
	}

	result := models.TournamentResult{
		UserID:       req.UserID,
		TournamentID: req.TournamentID,
		Placement:    req.Placement,
		TeamName:     req.TeamName,
		PrizeEarned:  req.PrizeEarned,
	}
	if err := database.DB.Create(&result).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record result"})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func UpdateTournamentResult(c *fiber.Ctx) error {
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid result ID"})
	}

	var result models.TournamentResult
	if err := database.DB.First(&result, "id = ?", resultID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Result not found"})
	}

	var req TournamentResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result.Placement = req.Placement
	result.TeamName = req.TeamName
	result.PrizeEarned = req.PrizeEarned

	if err := database.DB.Save(&result).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update result"})
	}
	return c.JSON(result)
}

func DeleteTournamentResult(c *fiber.Ctx) error {
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid result ID"})
	}

	result := database.DB.Delete(&models.TournamentResult{}, "id = ?", resultID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete result"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Result not found"})
	}
	return c.JSON(fiber.Map{"message": "Result deleted successfully"})
}

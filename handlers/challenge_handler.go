package handlers

import (
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChallengeRequest struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description" validate:"required"`
	ChallengeType      string     `json:"challenge_type" validate:"required,oneof=daily global"`
	Points             int        `json:"points" validate:"min=0"`
	XP                 int        `json:"xp" validate:"min=0"`
	StartDate          time.Time  `json:"start_date" validate:"required"`
	EndDate            *time.Time `json:"end_date"`
	CompletionCriteria string     `json:"completion_criteria" validate:"required"`
	Difficulty         string     `json:"difficulty" validate:"required,oneof=easy medium hard"`
	IsActive           *bool      `json:"is_active"`
}

func GetChallenges(c *fiber.Ctx) error {
	var challenges []models.Challenge
	if err := database.DB.Order("start_date desc").Find(&challenges).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}
	return c.JSON(challenges)
}

func GetActiveChallenges(c *fiber.Ctx) error {
	now := time.Now()
	var challenges []models.Challenge
	if err := database.DB.
		Where("is_active = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", true, now, now).
		Order("start_date desc").Find(&challenges).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}
	return c.JSON(challenges)
}

func GetChallenge(c *fiber.Ctx) error {
	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid challenge ID"})
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
	}
	return c.JSON(challenge)
}

func CreateChallenge(c *fiber.Ctx) error {
	var req ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must be after start_date"})
	}

	challenge := models.Challenge{
		Title:              req.Title,
		Description:        req.Description,
		ChallengeType:      req.ChallengeType,
		Points:             req.Points,
		XP:                 req.XP,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		CompletionCriteria: req.CompletionCriteria,
		Difficulty:         req.Difficulty,
		IsActive:           true,
	}
	if req.IsActive != nil {
		challenge.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&challenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create challenge"})
	}
	return c.Status(fiber.StatusCreated).JSON(challenge)
}

func UpdateChallenge(c *fiber.Ctx) error {
	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid challenge ID"})
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
	}

	var req ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must be after start_date"})
	}

	challenge.Title = req.Title
	challenge.Description = req.Description
	challenge.ChallengeType = req.ChallengeType
	challenge.Points = req.Points
	challenge.XP = req.XP
	challenge.StartDate = req.StartDate
	challenge.EndDate = req.EndDate
	challenge.CompletionCriteria = req.CompletionCriteria
	challenge.Difficulty = req.Difficulty
	if req.IsActive != nil {
		challenge.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&challenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update challenge"})
	}
	return c.JSON(challenge)
}

func DeleteChallenge(c *fiber.Ctx) error {
	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid challenge ID"})
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
	}

	var started int64
	database.DB.Model(&models.UserChallenge{}).Where("challenge_id = ?", challengeID).Count(&started)
	if started > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a challenge users have started"})
	}

	if err := database.DB.Delete(&challenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete challenge"})
	}
	return c.JSON(fiber.Map{"message": "Challenge deleted successfully"})
}

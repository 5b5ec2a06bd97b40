package handlers

import (
	"errors"
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChallengeProgressRequest struct {
	Progress int `json:"progress" validate:"min=0,max=100"`
}

func listUserChallenges(c *fiber.Ctx, userID uuid.UUID, completed *bool) error {
	query := database.DB.Preload("Challenge").Where("user_id = ?", userID)
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}

	var userChallenges []models.UserChallenge
	if err := query.Order("created_at desc").Find(&userChallenges).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user challenges"})
	}
	return c.JSON(userChallenges)
}

func GetMyChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	return listUserChallenges(c, userID, nil)
}

func GetMyActiveChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	completed := false
	return listUserChallenges(c, userID, &completed)
}

func GetMyCompletedChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	completed := true
	return listUserChallenges(c, userID, &completed)
}

func StartChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	challengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid challenge ID"})
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
	}

	now := time.Now()
	if !challenge.IsActive || challenge.StartDate.After(now) ||
		(challenge.EndDate != nil && challenge.EndDate.Before(now)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Challenge is not currently active"})
	}

	var existing models.UserChallenge
	if err := database.DB.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Challenge already started"})
	}

	userChallenge := models.UserChallenge{
		UserID:      userID,
		ChallengeID: challengeID,
	}
	if err := database.DB.Create(&userChallenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start challenge"})
	}

	userChallenge.Challenge = challenge
	return c.Status(fiber.StatusCreated).JSON(userChallenge)
}

func UpdateChallengeProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	userChallengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user challenge ID"})
	}

	var req ChallengeProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var userChallenge models.UserChallenge
	if err := database.DB.Preload("Challenge").First(&userChallenge, "id = ?", userChallengeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User challenge not found"})
	}
	if userChallenge.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only update your own challenges"})
	}
	if userChallenge.Completed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Challenge already completed"})
	}

	userChallenge.Progress = req.Progress
	if req.Progress >= 100 {
		now := time.Now()
		userChallenge.Completed = true
		userChallenge.CompletedAt = &now
		userChallenge.PointsEarned = userChallenge.Challenge.Points
		userChallenge.XPEarned = userChallenge.Challenge.XP
	}

	if err := database.DB.Save(&userChallenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update challenge progress"})
	}

	if userChallenge.Completed && userChallenge.XPEarned > 0 {
		if _, err := services.AwardXP(database.DB, userID, userChallenge.XPEarned); err != nil &&
			!errors.Is(err, services.ErrNoLevelsDefined) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Challenge completed but XP grant failed"})
		}
	}
	return c.JSON(userChallenge)
}

func DeleteUserChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	userChallengeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user challenge ID"})
	}

	var userChallenge models.UserChallenge
	if err := database.DB.First(&userChallenge, "id = ?", userChallengeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User challenge not found"})
	}
	if userChallenge.UserID != userID && middleware.GetUserRole(c) != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only delete your own challenges"})
	}

	if err := database.DB.Delete(&userChallenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user challenge"})
	}
	return c.JSON(fiber.Map{"message": "User challenge deleted successfully"})
}

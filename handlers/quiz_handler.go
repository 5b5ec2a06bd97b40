package handlers

import (
	"errors"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type QuizAnswer struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Answer     bool      `json:"answer"`
}

type QuizSubmission struct {
	Answers []QuizAnswer `json:"answers" validate:"required,min=1,dive"`
}

func GetQuizQuestions(c *fiber.Ctx) error {
	var questions []models.QuizQuestion
	if err := database.DB.Where("status = ?", models.QuestionStatusActive).
		Order("created_at asc").Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch quiz questions"})
	}
	return c.JSON(questions)
}

func SubmitQuiz(c *fiber.Ctx) error {
	var req QuizSubmission
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var questions []models.QuizQuestion
	if err := database.DB.Where("status = ?", models.QuestionStatusActive).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch quiz questions"})
	}

	known := make(map[uuid.UUID]bool, len(questions))
	for _, question := range questions {
		known[question.ID] = true
	}

	answers := make(map[uuid.UUID]bool, len(req.Answers))
	var unknown []string
	for _, answer := range req.Answers {
		if !known[answer.QuestionID] {
			unknown = append(unknown, answer.QuestionID.String())
			continue
		}
		answers[answer.QuestionID] = answer.Answer
	}
	if len(unknown) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":       "Unknown question IDs in submission",
			"unknown_ids": unknown,
		})
	}

	var careers []models.Career
	if err := database.DB.Find(&careers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch careers"})
	}

	recommendation, err := services.RecommendCareer(questions, answers, careers)
	if err != nil {
		if errors.Is(err, services.ErrNoCareersDefined) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrNoCareersDefined.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute recommendation"})
	}
	return c.JSON(recommendation)
}

package services

import (
	"testing"

	"github.com/chayanon-dev/game_academy/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuiz() ([]models.QuizQuestion, []models.Career) {
	questions := []models.QuizQuestion{
		{ID: uuid.New(), Question: "Do you enjoy building user interfaces?", Tags: "frontend,design"},
		{ID: uuid.New(), Question: "Do you like working with data?", Tags: "data,backend"},
		{ID: uuid.New(), Question: "Do you enjoy talking to users?", Tags: "product,design"},
	}
	careers := []models.Career{
		{ID: uuid.New(), Title: "Backend Engineer", Description: "Builds services.", Tags: "backend,data"},
		{ID: uuid.New(), Title: "Frontend Engineer", Description: "Builds interfaces.", Tags: "frontend,design"},
		{ID: uuid.New(), Title: "Product Designer", Description: "Designs products.", Tags: "design,product"},
	}
	return questions, careers
}

func TestRecommendCareer_PicksHighestScore(t *testing.T) {
	questions, careers := testQuiz()

	answers := map[uuid.UUID]bool{
		questions[0].ID: true,
		questions[1].ID: false,
		questions[2].ID: false,
	}

	rec, err := RecommendCareer(questions, answers, careers)
	require.NoError(t, err)
	assert.Equal(t, "Frontend Engineer", rec.Title)
	assert.NotEmpty(t, rec.Reason)
}

func TestRecommendCareer_Deterministic(t *testing.T) {
	questions, careers := testQuiz()

	answers := map[uuid.UUID]bool{
		questions[0].ID: true,
		questions[2].ID: true,
	}

	first, err := RecommendCareer(questions, answers, careers)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := RecommendCareer(questions, answers, careers)
		require.NoError(t, err)
		assert.Equal(t, first.Title, again.Title)
		assert.Equal(t, first.Reason, again.Reason)
	}
}

func TestRecommendCareer_NoYesAnswersStillRecommends(t *testing.T) {
	questions, careers := testQuiz()

	rec, err := RecommendCareer(questions, map[uuid.UUID]bool{}, careers)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Title)
	assert.NotEmpty(t, rec.Reason)
}

func TestRecommendCareer_NoCareers(t *testing.T) {
	questions, _ := testQuiz()

	_, err := RecommendCareer(questions, map[uuid.UUID]bool{}, nil)
	assert.ErrorIs(t, err, ErrNoCareersDefined)
}

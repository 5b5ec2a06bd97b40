package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/chayanon-dev/game_academy/models"
	"github.com/google/uuid"
)

var ErrNoCareersDefined = errors.New("no careers defined in the system")

// CareerRecommendation is the quiz verdict: one career plus a short reason.
type CareerRecommendation struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reason      string    `json:"reason"`
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(strings.ToLower(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// RecommendCareer scores each career by how many of its tags the user's
// "yes" answers voted for and returns the best match. Scoring is
// deterministic: ties break on title order.
func RecommendCareer(questions []models.QuizQuestion, answers map[uuid.UUID]bool, careers []models.Career) (CareerRecommendation, error) {
	if len(careers) == 0 {
		return CareerRecommendation{}, ErrNoCareersDefined
	}

	weights := make(map[string]int)
	for _, question := range questions {
		if !answers[question.ID] {
			continue
		}
		for _, tag := range splitTags(question.Tags) {
			weights[tag]++
		}
	}

	best := careers[0]
	bestScore := -1
	var bestTags []string
	for _, career := range careers {
		score := 0
		var matched []string
		for _, tag := range splitTags(career.Tags) {
			if weights[tag] > 0 {
				score += weights[tag]
				matched = append(matched, tag)
			}
		}
		if score > bestScore || (score == bestScore && career.Title < best.Title) {
			best = career
			bestScore = score
			bestTags = matched
		}
	}

	return CareerRecommendation{
		ID:          best.ID,
		Title:       best.Title,
		Description: best.Description,
		Reason:      recommendationReason(best.Title, bestTags),
	}, nil
}

func recommendationReason(title string, matched []string) string {
	if len(matched) == 0 {
		return "Based on your answers, " + title + " is the closest overall fit."
	}
	sort.Strings(matched)
	return "Your answers show a strong leaning towards " + strings.Join(matched, ", ") + ", which fits " + title + "."
}

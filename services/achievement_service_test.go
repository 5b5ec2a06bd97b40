package services

import (
	"testing"

	"github.com/chayanon-dev/game_academy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	criteria, err := models.ParseCriteria(`{"type":"courses_completed","count":5}`)
	require.NoError(t, err)
	assert.Equal(t, models.CriteriaCoursesCompleted, criteria.Type)
	assert.Equal(t, 5, criteria.Count)

	criteria, err = models.ParseCriteria(`{"type":"level_reached","level":10}`)
	require.NoError(t, err)
	assert.Equal(t, models.CriteriaLevelReached, criteria.Type)
	assert.Equal(t, 10, criteria.Level)

	_, err = models.ParseCriteria(`not json`)
	assert.Error(t, err)
}

func TestCriteriaSatisfied_CoursesCompleted(t *testing.T) {
	counts := ProgressCounts{CompletedCourses: 5}

	assert.True(t, criteriaSatisfied(models.AchievementCriteria{Type: models.CriteriaCoursesCompleted, Count: 5}, counts))
	assert.True(t, criteriaSatisfied(models.AchievementCriteria{Type: models.CriteriaCoursesCompleted, Count: 3}, counts))
	assert.False(t, criteriaSatisfied(models.AchievementCriteria{Type: models.CriteriaCoursesCompleted, Count: 6}, counts))
}

func TestCriteriaSatisfied_ChallengesCompleted(t *testing.T) {
	counts := ProgressCounts{CompletedChallenges: 2}

	assert.True(t, criteriaSatisfied(models.AchievementCriteria{Type: models.CriteriaChallengesCompleted, Count: 2}, counts))
	assert.False(t, criteriaSatisfied(models.AchievementCriteria{Type: models.CriteriaChallengesCompleted, Count: 3}, counts))
}

func TestCriteriaSatisfied_LevelReached(t *testing.T) {
	counts := ProgressCounts{LevelNumber: 4}

	assert.True(t, criteriaSatisfied(models.AchievementCriteria{Type: models.CriteriaLevelReached, Level: 4}, counts))
	assert.True(t, criteriaSatisfied(models.AchievementCriteria{Type: models.CriteriaLevelReached, Level: 1}, counts))
	assert.False(t, criteriaSatisfied(models.AchievementCriteria{Type: models.CriteriaLevelReached, Level: 5}, counts))
}

func TestCriteriaSatisfied_UnknownTypeNeverSatisfied(t *testing.T) {
	counts := ProgressCounts{CompletedCourses: 100, CompletedChallenges: 100, LevelNumber: 100}

	assert.False(t, criteriaSatisfied(models.AchievementCriteria{Type: "logins_counted", Count: 1}, counts))
	assert.False(t, criteriaSatisfied(models.AchievementCriteria{}, counts))
}

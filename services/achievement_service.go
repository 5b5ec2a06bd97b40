package services

import (
	"time"

	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/websocket"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressCounts is one user's live stats, queried fresh per evaluation.
type ProgressCounts struct {
	CompletedCourses    int64
	CompletedChallenges int64
	LevelNumber         int
}

// UnlockedAchievement is one entry of a check-criteria response.
type UnlockedAchievement struct {
	ID            uuid.UUID `json:"id"`
	AchievementID uuid.UUID `json:"achievement_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IconURL       string    `json:"icon_url"`
	Points        int       `json:"points"`
	XP            int       `json:"xp"`
	UnlockedAt    string    `json:"unlocked_at"`
}

type CheckResult struct {
	UnlockedCount int                   `json:"unlockedCount"`
	NewlyUnlocked []UnlockedAchievement `json:"newlyUnlocked"`
}

// criteriaSatisfied tests one parsed criteria rule against the user's
// counts. Unrecognized rule types are never satisfied.
func criteriaSatisfied(criteria models.AchievementCriteria, counts ProgressCounts) bool {
	switch criteria.Type {
	case models.CriteriaCoursesCompleted:
		return counts.CompletedCourses >= int64(criteria.Count)
	case models.CriteriaChallengesCompleted:
		return counts.CompletedChallenges >= int64(criteria.Count)
	case models.CriteriaLevelReached:
		return counts.LevelNumber >= criteria.Level
	default:
		return false
	}
}

func userProgressCounts(db *gorm.DB, userID uuid.UUID) (ProgressCounts, error) {
	var counts ProgressCounts

	if err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&counts.CompletedCourses).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.UserChallenge{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&counts.CompletedChallenges).Error; err != nil {
		return counts, err
	}

	var userLevel models.UserLevel
	err := db.Preload("Level").Where("user_id = ?", userID).First(&userLevel).Error
	if err == nil {
		counts.LevelNumber = userLevel.Level.LevelNumber
	} else if err != gorm.ErrRecordNotFound {
		return counts, err
	}
	return counts, nil
}

// CheckAndUnlock scans the user's locked achievements in catalog order and
// unlocks every one whose criteria the user's current counts satisfy,
// granting the achievement's XP through the XP engine. The count queries
// and the unlock writes are not transactional with each other; a criterion
// can be re-checked on the next explicit call.
func CheckAndUnlock(db *gorm.DB, userID uuid.UUID) (*CheckResult, error) {
	var achievements []models.Achievement
	if err := db.Order("created_at asc").Find(&achievements).Error; err != nil {
		return nil, err
	}

	var unlockedIDs []uuid.UUID
	if err := db.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &unlockedIDs).Error; err != nil {
		return nil, err
	}
	unlocked := make(map[uuid.UUID]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	counts, err := userProgressCounts(db, userID)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{NewlyUnlocked: []UnlockedAchievement{}}
	for _, achievement := range achievements {
		if unlocked[achievement.ID] {
			continue
		}

		criteria, err := models.ParseCriteria(achievement.Criteria)
		if err != nil {
			continue
		}
		if !criteriaSatisfied(criteria, counts) {
			continue
		}

		userAchievement := models.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
			UnlockedAt:    time.Now(),
		}
		if err := db.Create(&userAchievement).Error; err != nil {
			return nil, err
		}

		if achievement.XP > 0 {
			if _, err := AwardXP(db, userID, achievement.XP); err != nil && err != ErrNoLevelsDefined {
				return nil, err
			}
			// Refresh so a level_reached criterion later in the catalog
			// sees the level this unlock may have produced.
			counts, err = userProgressCounts(db, userID)
			if err != nil {
				return nil, err
			}
		}

		websocket.Publish(userID, websocket.Event{
			Type: "achievement_unlocked",
			Data: map[string]interface{}{
				"achievement_id": achievement.ID,
				"name":           achievement.Name,
				"xp":             achievement.XP,
				"points":         achievement.Points,
			},
		})

		result.NewlyUnlocked = append(result.NewlyUnlocked, UnlockedAchievement{
			ID:            userAchievement.ID,
			AchievementID: achievement.ID,
			Name:          achievement.Name,
			Description:   achievement.Description,
			IconURL:       achievement.IconURL,
			Points:        achievement.Points,
			XP:            achievement.XP,
			UnlockedAt:    userAchievement.UnlockedAt.Format(time.RFC3339),
		})
	}

	result.UnlockedCount = len(result.NewlyUnlocked)
	return result, nil
}

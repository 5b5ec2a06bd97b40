package services

import (
	"errors"
	"math"
	"time"

	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/websocket"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount   = errors.New("amount must be greater than 0")
	ErrNoLevelsDefined = errors.New("no levels defined in the system")
)

// XPAward is the outcome of one XP grant.
type XPAward struct {
	UserID             uuid.UUID  `json:"user_id"`
	LevelNumber        int        `json:"level_number"`
	LevelName          string     `json:"level_name"`
	CurrentXP          int        `json:"current_xp"`
	XPAdded            int        `json:"xp_added"`
	MinXP              int        `json:"min_xp"`
	MaxXP              int        `json:"max_xp"`
	XPToNextLevel      int        `json:"xp_to_next_level"`
	ProgressPercentage int        `json:"progress_percentage"`
	LevelUp            bool       `json:"level_up"`
	PreviousLevel      *int       `json:"previous_level"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// resolveLevelUp applies the single-step transition policy: crossing the
// current level's max moves the user exactly one level, carrying over the
// excess. A grant spanning two boundaries still advances only one level.
// With no next level the user stays put and XP accumulates uncapped.
func resolveLevelUp(current models.Level, next *models.Level, newXP int) (models.Level, int, bool) {
	if newXP >= current.MaxXP && next != nil {
		return *next, newXP - current.MaxXP, true
	}
	return current, newXP, false
}

func progressPercentage(currentXP, maxXP int) int {
	if maxXP <= 0 {
		return 0
	}
	return int(math.Round(float64(currentXP) / float64(maxXP) * 100))
}

func xpToNextLevel(currentXP, maxXP int) int {
	return maxXP - currentXP
}

// EnsureUserLevel returns the user's progression row, creating it at the
// catalog's level 1 with zero XP on first use.
func EnsureUserLevel(db *gorm.DB, userID uuid.UUID) (*models.UserLevel, error) {
	var userLevel models.UserLevel
	err := db.Preload("Level").Where("user_id = ?", userID).First(&userLevel).Error
	if err == nil {
		return &userLevel, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var firstLevel models.Level
	if err := db.Where("level_number = ?", 1).First(&firstLevel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoLevelsDefined
		}
		return nil, err
	}

	userLevel = models.UserLevel{
		UserID:    userID,
		LevelID:   firstLevel.ID,
		CurrentXP: 0,
		Level:     firstLevel,
	}
	if err := db.Create(&userLevel).Error; err != nil {
		return nil, err
	}
	return &userLevel, nil
}

// AwardXP applies a positive XP delta to a user and resolves at most one
// level transition. The read and write are separate round trips; two
// concurrent awards for the same user can overwrite each other.
func AwardXP(db *gorm.DB, userID uuid.UUID, amount int) (*XPAward, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	userLevel, err := EnsureUserLevel(db, userID)
	if err != nil {
		return nil, err
	}

	var next *models.Level
	var nextLevel models.Level
	err = db.Where("level_number = ?", userLevel.Level.LevelNumber+1).First(&nextLevel).Error
	if err == nil {
		next = &nextLevel
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	previous := userLevel.Level
	newLevel, newXP, leveledUp := resolveLevelUp(userLevel.Level, next, userLevel.CurrentXP+amount)

	userLevel.LevelID = newLevel.ID
	userLevel.CurrentXP = newXP
	userLevel.Level = newLevel
	if err := db.Model(&models.UserLevel{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{"level_id": newLevel.ID, "current_xp": newXP}).Error; err != nil {
		return nil, err
	}

	award := &XPAward{
		UserID:             userID,
		LevelNumber:        newLevel.LevelNumber,
		LevelName:          newLevel.Name,
		CurrentXP:          newXP,
		XPAdded:            amount,
		MinXP:              newLevel.MinXP,
		MaxXP:              newLevel.MaxXP,
		XPToNextLevel:      xpToNextLevel(newXP, newLevel.MaxXP),
		ProgressPercentage: progressPercentage(newXP, newLevel.MaxXP),
		LevelUp:            leveledUp,
		UpdatedAt:          time.Now(),
	}
	if leveledUp {
		prev := previous.LevelNumber
		award.PreviousLevel = &prev
		websocket.Publish(userID, websocket.Event{
			Type: "level_up",
			Data: map[string]interface{}{
				"level_number":   newLevel.LevelNumber,
				"level_name":     newLevel.Name,
				"previous_level": prev,
			},
		})
	}
	return award, nil
}

// RevokeXP subtracts XP from the user's progression row, clamped at zero.
// The level itself is left untouched.
func RevokeXP(db *gorm.DB, userID uuid.UUID, amount int) error {
	var userLevel models.UserLevel
	err := db.Where("user_id = ?", userID).First(&userLevel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	newXP := clampXP(userLevel.CurrentXP - amount)
	return db.Model(&models.UserLevel{}).Where("user_id = ?", userID).
		Update("current_xp", newXP).Error
}

func clampXP(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp
}

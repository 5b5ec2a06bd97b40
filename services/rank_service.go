package services

import (
	"errors"
	"time"

	"github.com/chayanon-dev/game_academy/models"
	"github.com/chayanon-dev/game_academy/websocket"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNoActiveSeason = errors.New("no active rank season found")
	ErrNoRanksDefined = errors.New("no ranks defined for the active season")
)

// PointsAward is the outcome of one points grant.
type PointsAward struct {
	UserID       uuid.UUID         `json:"user_id"`
	Season       models.RankSeason `json:"-"`
	Rank         models.Rank       `json:"-"`
	Points       int               `json:"points"`
	PointsAdded  int               `json:"points_added"`
	RankUp       bool              `json:"rank_up"`
	PreviousRank *string           `json:"previous_rank"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// resolveRank picks the highest-threshold rank whose min_points does not
// exceed the total. ranks must be sorted ascending by min_points. This is
// a full rescan, so a single grant can jump several tiers.
func resolveRank(ranks []models.Rank, points int) models.Rank {
	for i := len(ranks) - 1; i >= 0; i-- {
		if points >= ranks[i].MinPoints {
			return ranks[i]
		}
	}
	return ranks[0]
}

func ActiveSeason(db *gorm.DB) (*models.RankSeason, error) {
	var season models.RankSeason
	if err := db.Where("is_active = ?", true).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSeason
		}
		return nil, err
	}
	return &season, nil
}

// SeasonRanks returns a season's ladder ordered ascending by min_points.
func SeasonRanks(db *gorm.DB, seasonID uuid.UUID) ([]models.Rank, error) {
	var ranks []models.Rank
	if err := db.Where("season_id = ?", seasonID).Order("min_points asc").Find(&ranks).Error; err != nil {
		return nil, err
	}
	if len(ranks) == 0 {
		return nil, ErrNoRanksDefined
	}
	return ranks, nil
}

// EnsureUserRank returns the user's row for the season, creating it at the
// season's lowest rank with zero points when absent. ranks must be the
// season's ladder in ascending order.
func EnsureUserRank(db *gorm.DB, userID uuid.UUID, season *models.RankSeason, ranks []models.Rank) (*models.UserRank, error) {
	var userRank models.UserRank
	err := db.Preload("Rank").Preload("Season").
		Where("user_id = ? AND season_id = ?", userID, season.ID).First(&userRank).Error
	if err == nil {
		return &userRank, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userRank = models.UserRank{
		UserID:   userID,
		SeasonID: season.ID,
		RankID:   ranks[0].ID,
		Points:   0,
		Rank:     ranks[0],
		Season:   *season,
	}
	if err := db.Create(&userRank).Error; err != nil {
		return nil, err
	}
	return &userRank, nil
}

// AwardPoints applies a positive points delta in the active season and
// re-resolves the user's rank against the full ladder.
func AwardPoints(db *gorm.DB, userID uuid.UUID, amount int) (*PointsAward, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	season, err := ActiveSeason(db)
	if err != nil {
		return nil, err
	}
	ranks, err := SeasonRanks(db, season.ID)
	if err != nil {
		return nil, err
	}
	userRank, err := EnsureUserRank(db, userID, season, ranks)
	if err != nil {
		return nil, err
	}

	newPoints := userRank.Points + amount
	newRank := resolveRank(ranks, newPoints)
	rankChanged := newRank.ID != userRank.RankID
	previousName := userRank.Rank.Name

	if err := db.Model(&models.UserRank{}).
		Where("user_id = ? AND season_id = ?", userID, season.ID).
		Updates(map[string]interface{}{"rank_id": newRank.ID, "points": newPoints}).Error; err != nil {
		return nil, err
	}

	award := &PointsAward{
		UserID:      userID,
		Season:      *season,
		Rank:        newRank,
		Points:      newPoints,
		PointsAdded: amount,
		RankUp:      rankChanged,
		UpdatedAt:   time.Now(),
	}
	if rankChanged {
		award.PreviousRank = &previousName
		websocket.Publish(userID, websocket.Event{
			Type: "rank_up",
			Data: map[string]interface{}{
				"rank":          newRank.Name,
				"previous_rank": previousName,
				"season":        season.Name,
			},
		})
	}
	return award, nil
}

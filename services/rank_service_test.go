package services

import (
	"testing"

	"github.com/chayanon-dev/game_academy/models"
	"github.com/stretchr/testify/assert"
)

func testRanks() []models.Rank {
	return []models.Rank{
		{Name: "Bronze", MinPoints: 0},
		{Name: "Silver", MinPoints: 100},
		{Name: "Gold", MinPoints: 500},
	}
}

func TestResolveRank_LowestByDefault(t *testing.T) {
	rank := resolveRank(testRanks(), 0)
	assert.Equal(t, "Bronze", rank.Name)
}

func TestResolveRank_SingleTier(t *testing.T) {
	// 0 + 120 points lands in Silver.
	rank := resolveRank(testRanks(), 120)
	assert.Equal(t, "Silver", rank.Name)
}

func TestResolveRank_MultiTierJump(t *testing.T) {
	// 50 + 470 crosses Silver and Gold in one grant; the rescan goes
	// straight to Gold.
	rank := resolveRank(testRanks(), 520)
	assert.Equal(t, "Gold", rank.Name)
}

func TestResolveRank_ExactThreshold(t *testing.T) {
	rank := resolveRank(testRanks(), 500)
	assert.Equal(t, "Gold", rank.Name)
}

func TestResolveRank_BelowLadderFallsToLowest(t *testing.T) {
	ranks := []models.Rank{
		{Name: "Silver", MinPoints: 100},
		{Name: "Gold", MinPoints: 500},
	}
	rank := resolveRank(ranks, 10)
	assert.Equal(t, "Silver", rank.Name)
}

package services

import (
	"testing"

	"github.com/chayanon-dev/game_academy/models"
	"github.com/stretchr/testify/assert"
)

func testLevels() []models.Level {
	return []models.Level{
		{LevelNumber: 1, Name: "Novice", MinXP: 0, MaxXP: 100},
		{LevelNumber: 2, Name: "Apprentice", MinXP: 100, MaxXP: 250},
		{LevelNumber: 3, Name: "Adept", MinXP: 250, MaxXP: 500},
	}
}

func TestResolveLevelUp_SameLevelAccumulation(t *testing.T) {
	levels := testLevels()

	level, xp, leveledUp := resolveLevelUp(levels[0], &levels[1], 60)

	assert.False(t, leveledUp)
	assert.Equal(t, 1, level.LevelNumber)
	assert.Equal(t, 60, xp)
}

func TestResolveLevelUp_CarryOver(t *testing.T) {
	levels := testLevels()

	// 150 XP at level 1 (max 100) carries 50 into level 2.
	level, xp, leveledUp := resolveLevelUp(levels[0], &levels[1], 150)

	assert.True(t, leveledUp)
	assert.Equal(t, 2, level.LevelNumber)
	assert.Equal(t, 50, xp)
}

func TestResolveLevelUp_ExactBoundary(t *testing.T) {
	levels := testLevels()

	level, xp, leveledUp := resolveLevelUp(levels[0], &levels[1], 100)

	assert.True(t, leveledUp)
	assert.Equal(t, 2, level.LevelNumber)
	assert.Equal(t, 0, xp)
}

func TestResolveLevelUp_SingleStepNeverCascades(t *testing.T) {
	levels := testLevels()

	// 400 XP spans the level 2 band entirely but still lands in level 2.
	level, xp, leveledUp := resolveLevelUp(levels[0], &levels[1], 400)

	assert.True(t, leveledUp)
	assert.Equal(t, 2, level.LevelNumber)
	assert.Equal(t, 300, xp)
}

func TestResolveLevelUp_FinalLevelAccumulatesUncapped(t *testing.T) {
	levels := testLevels()

	level, xp, leveledUp := resolveLevelUp(levels[2], nil, 99999)

	assert.False(t, leveledUp)
	assert.Equal(t, 3, level.LevelNumber)
	assert.Equal(t, 99999, xp)
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 50, progressPercentage(50, 100))
	assert.Equal(t, 33, progressPercentage(50, 150))
	assert.Equal(t, 0, progressPercentage(0, 100))
	assert.Equal(t, 0, progressPercentage(10, 0))
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 40, xpToNextLevel(60, 100))
	assert.Equal(t, -50, xpToNextLevel(150, 100))
}

func TestClampXP(t *testing.T) {
	assert.Equal(t, 0, clampXP(-30))
	assert.Equal(t, 20, clampXP(20))
}

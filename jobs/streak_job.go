package jobs

import (
	"log"
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
)

// ResetIdleStreaks zeroes every streak that has not moved in 48 hours.
func ResetIdleStreaks() {
	log.Println("Running job: ResetIdleStreaks...")

	cutoff := time.Now().Add(-48 * time.Hour)

	var idleStreaks []models.Streak
	err := database.DB.
		Where("count > 0 AND updated_at < ?", cutoff).
		Find(&idleStreaks).Error
	if err != nil {
		log.Printf("Error checking for idle streaks: %v", err)
		return
	}

	if len(idleStreaks) == 0 {
		log.Println("No idle streaks found.")
		return
	}

	now := time.Now()
	for _, streak := range idleStreaks {
		streak.Count = 0
		streak.StreakResetAt = &now
		database.DB.Save(&streak)
	}

	log.Printf("Reset %d idle streak(s).", len(idleStreaks))
}

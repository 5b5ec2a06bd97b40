package jobs

import (
	"log"
	"time"

	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
)

// CloseExpiredSeasons deactivates rank seasons whose end date has passed.
func CloseExpiredSeasons() {
	log.Println("Running job: CloseExpiredSeasons...")

	result := database.DB.Model(&models.RankSeason{}).
		Where("is_active = ? AND end_date < ?", true, time.Now()).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("Error closing expired seasons: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d expired season(s).", result.RowsAffected)
	}
}

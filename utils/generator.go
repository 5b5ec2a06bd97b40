package utils

import (
	"math/rand"
	"time"

	"github.com/chayanon-dev/game_academy/models"
	"gorm.io/gorm"
)

const referenceLength = 12
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateUniquePaymentReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		reference := "PAY-" + string(b)

		var payment models.Payment
		err := tx.Where("reference = ?", reference).First(&payment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return reference, nil
			}
			return "", err
		}
	}
}

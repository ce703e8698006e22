package services

import (
	"fmt"

	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/logger"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// MarkNotified records (userID, kind, key) and reports whether this call was
// the first to do so. Later calls for the same triple return false.
func MarkNotified(userID uuid.UUID, kind, key string) (bool, error) {
	rec := models.NotifiedKey{UserID: userID, Kind: kind, Key: key}
	res := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
	if res.Error != nil {
		logger.Log.Error("notified_key_insert_failed",
			zap.String("user_id", userID.String()),
			zap.String("kind", kind),
			zap.String("key", key),
			zap.Error(res.Error))
		return false, fmt.Errorf("mark notified %s/%s: %w", kind, key, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func WasNotified(userID uuid.UUID, kind, key string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.NotifiedKey{}).
		Where("user_id = ? AND kind = ? AND key = ?", userID, kind, key).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check notified %s/%s: %w", kind, key, err)
	}
	return count > 0, nil
}

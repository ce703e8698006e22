package database

import (
	"errors"
	"fmt"

	"github.com/arnold/hard75-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNoChallenge = errors.New("no challenge configured")
	ErrLogNotFound = errors.New("daily log not found")
)

// DefaultLogLimit and MaxLogLimit bound the RecentLogs page. Computations
// over the whole challenge use AllLogs.
const (
	DefaultLogLimit = 100
	MaxLogLimit     = 400
)

// LatestChallenge returns the user's most recently created challenge.
func LatestChallenge(userID uuid.UUID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := DB.Where("user_id = ?", userID).Order("created_at DESC").First(&challenge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoChallenge
	}
	if err != nil {
		return nil, fmt.Errorf("load challenge: %w", err)
	}
	return &challenge, nil
}

// FindLog returns the log for (challengeID, date).
func FindLog(challengeID uuid.UUID, date string) (*models.DailyLog, error) {
	var log models.DailyLog
	err := DB.Where("challenge_id = ? AND date = ?", challengeID, date).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load log %s: %w", date, err)
	}
	return &log, nil
}

// GetOrCreateLog returns the log for the day, creating an empty one the
// first time the day is touched. Concurrent first writes for the same day
// converge on one row.
func GetOrCreateLog(challenge *models.Challenge, date string) (*models.DailyLog, error) {
	log, err := FindLog(challenge.ID, date)
	if err == nil {
		return log, nil
	}
	if !errors.Is(err, ErrLogNotFound) {
		return nil, err
	}

	created := models.DailyLog{
		ChallengeID: challenge.ID,
		UserID:      challenge.UserID,
		Date:        date,
	}
	if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("create log %s: %w", date, err)
	}
	return FindLog(challenge.ID, date)
}

// RecentLogs lists up to limit logs for the challenge, newest first.
func RecentLogs(challengeID uuid.UUID, limit int) ([]models.DailyLog, error) {
	if limit < 1 {
		limit = DefaultLogLimit
	}
	if limit > MaxLogLimit {
		limit = MaxLogLimit
	}
	logs := []models.DailyLog{}
	err := DB.Where("challenge_id = ?", challengeID).
		Order("date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return logs, nil
}

// AllLogs returns every log of the challenge, oldest first.
func AllLogs(challengeID uuid.UUID) ([]models.DailyLog, error) {
	logs := []models.DailyLog{}
	err := DB.Where("challenge_id = ?", challengeID).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list all logs: %w", err)
	}
	return logs, nil
}

// UpdateLog writes only the given columns, keyed by field name, so
// concurrent partial updates to the same day do not overwrite each other.
// It returns the row as stored afterwards.
func UpdateLog(log *models.DailyLog, changes map[string]interface{}) (*models.DailyLog, error) {
	if len(changes) > 0 {
		err := DB.Model(&models.DailyLog{}).
			Where("id = ?", log.ID).
			Updates(changes).Error
		if err != nil {
			return nil, fmt.Errorf("update log %s: %w", log.Date, err)
		}
	}
	return FindLog(log.ChallengeID, log.Date)
}

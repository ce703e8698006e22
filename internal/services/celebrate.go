package services

import (
	"fmt"

	"github.com/arnold/hard75-api/internal/badges"
	"github.com/arnold/hard75-api/internal/logger"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/arnold/hard75-api/internal/tasks"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Celebration is a one-time moment worth telling the user about.
type Celebration struct {
	Kind  string `json:"kind"` // step_goal, day_complete, badge_earned
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date,omitempty"`
	Badge string `json:"badge,omitempty"`
}

// Candidates lists every celebration the log currently qualifies for,
// without regard to what was already sent. history should include l.
func Candidates(c *models.Challenge, l *models.DailyLog, history []models.DailyLog) []Celebration {
	out := []Celebration{}
	if c == nil || l == nil {
		return out
	}

	if c.TrackSteps && c.StepsGoal > 0 && l.Steps() >= c.StepsGoal {
		out = append(out, Celebration{
			Kind:  models.NotificationStepGoal,
			Key:   l.Date,
			Title: "Step goal reached",
			Body:  fmt.Sprintf("You hit %d steps today.", c.StepsGoal),
			Date:  l.Date,
		})
	}

	statuses := tasks.Evaluate(c, l, history)
	if len(statuses) > 0 && tasks.IsDayComplete(statuses) {
		out = append(out, Celebration{
			Kind:  models.NotificationDayComplete,
			Key:   l.Date,
			Title: "Day complete",
			Body:  "Every task is done for today.",
			Date:  l.Date,
		})
	}

	for _, b := range badges.Earned(c, history) {
		out = append(out, Celebration{
			Kind:  models.NotificationBadge,
			Key:   c.ID.String() + ":" + b.ID,
			Title: "Badge earned: " + b.Title,
			Body:  b.Description,
			Badge: b.ID,
		})
	}
	return out
}

// Announce delivers each candidate the user has not been told about yet and
// returns the ones that were new. Delivery is a stored notification, a push
// and a websocket event.
func Announce(userID uuid.UUID, candidates []Celebration) []Celebration {
	fresh := []Celebration{}
	for _, cel := range candidates {
		first, err := MarkNotified(userID, cel.Kind, cel.Key)
		if err != nil || !first {
			continue
		}

		metadata := map[string]interface{}{}
		if cel.Date != "" {
			metadata["date"] = cel.Date
		}
		if cel.Badge != "" {
			metadata["badgeId"] = cel.Badge
		}
		if _, err := CreateNotification(userID, cel.Kind, cel.Title, cel.Body, metadata); err != nil {
			logger.Log.Warn("celebration_notification_failed", zap.String("kind", cel.Kind), zap.Error(err))
		}

		WS.Broadcast(userID, WSEvent{
			Type:   cel.Kind,
			UserID: userID.String(),
			Date:   cel.Date,
			Data:   cel,
		})

		logger.Log.Info("celebration_sent",
			zap.String("user_id", userID.String()),
			zap.String("kind", cel.Kind),
			zap.String("key", cel.Key))
		fresh = append(fresh, cel)
	}
	return fresh
}

// Celebrate announces whatever the updated log newly qualifies for.
func Celebrate(c *models.Challenge, l *models.DailyLog, history []models.DailyLog) []Celebration {
	if c == nil {
		return []Celebration{}
	}
	return Announce(c.UserID, Candidates(c, l, history))
}

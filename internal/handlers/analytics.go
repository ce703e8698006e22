package handlers

import (
	"github.com/arnold/hard75-api/internal/analytics"
	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/tasks"
	"github.com/gofiber/fiber/v2"
)

type dayCompletion struct {
	Date       string `json:"date"`
	Percentage int    `json:"percentage"`
}

// GetAnalytics returns the snapshot for the current challenge. analytics is
// null until the first log exists.
func GetAnalytics(c *fiber.Ctx) error {
	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	logs, err := database.AllLogs(challenge.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch logs",
		})
	}

	day := today(challenge.UserID)
	snap := analytics.Compute(challenge, logs, day)

	week := []dayCompletion{}
	for _, cell := range analytics.WeeklyActivity(logs, day) {
		pct := 0
		if l := analytics.FindLog(logs, cell.Date); l != nil {
			pct = tasks.CompletionPercentage(tasks.Evaluate(challenge, l, logs))
		}
		week = append(week, dayCompletion{Date: cell.Date, Percentage: pct})
	}

	return c.JSON(fiber.Map{
		"today":          day,
		"analytics":      snap,
		"weekCompletion": week,
	})
}

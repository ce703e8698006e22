package handlers

import (
	"errors"

	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/arnold/hard75-api/internal/tasks"
	"github.com/gofiber/fiber/v2"
)

// GetDayTasks evaluates the day's tasks. A day with no log yet is evaluated
// as an empty log, so every tracked task shows as incomplete.
func GetDayTasks(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return invalidDate(c)
	}

	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	log, err := database.FindLog(challenge.ID, date)
	if errors.Is(err, database.ErrLogNotFound) {
		log = &models.DailyLog{ChallengeID: challenge.ID, UserID: challenge.UserID, Date: date}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch log",
		})
	}

	history, err := database.AllLogs(challenge.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch logs",
		})
	}

	statuses := tasks.Evaluate(challenge, log, history)
	return c.JSON(fiber.Map{
		"date":            date,
		"tasks":           statuses,
		"completed":       tasks.Completed(statuses),
		"incomplete":      tasks.Incomplete(statuses),
		"dayComplete":     tasks.IsDayComplete(statuses),
		"percentage":      tasks.CompletionPercentage(statuses),
		"caloriesGoalMet": tasks.CaloriesGoalMet(challenge, log),
	})
}

package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/logger"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/arnold/hard75-api/internal/services"
	"github.com/arnold/hard75-api/internal/tasks"
	"github.com/arnold/hard75-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetLogs lists the most recent logs of the current challenge, newest first.
func GetLogs(c *fiber.Ctx) error {
	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(database.DefaultLogLimit)))
	logs, err := database.RecentLogs(challenge.ID, limit)
	if err != nil {
		logger.Log.Error("logs_list_failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch logs",
		})
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"total": len(logs),
	})
}

func GetLog(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No log for this day",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch log",
		})
	}

	return c.JSON(log)
}

// UpsertLog applies a partial update to the day's log, creating it on first touch.
func UpsertLog(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return invalidDate(c)
	}

	var req models.UpdateLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	return editLog(c, challenge, date, func(*models.DailyLog) map[string]interface{} {
		return req.Changes()
	})
}

// DeleteWeight clears the day's weight entry.
func DeleteWeight(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return invalidDate(c)
	}

	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	return editLog(c, challenge, date, func(*models.DailyLog) map[string]interface{} {
		return map[string]interface{}{
			"CurrentWeight": nil,
			"WeightLogged":  false,
		}
	})
}

// DeletePhoto clears the day's progress photo and removes the stored file.
func DeletePhoto(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return invalidDate(c)
	}

	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	return editLog(c, challenge, date, func(l *models.DailyLog) map[string]interface{} {
		if l.ProgressPhotoURL != nil {
			removeUpload(*l.ProgressPhotoURL)
		}
		return map[string]interface{}{
			"ProgressPhotoURL":       nil,
			"ProgressPhotoCompleted": false,
		}
	})
}

// SyncHealth merges device health samples into the day's log.
func SyncHealth(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return invalidDate(c)
	}

	var req models.HealthSyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	return editLog(c, challenge, date, req.Changes)
}

// editLog loads (or lazily creates) the day's log and writes only the
// columns changes returns. When something was written it runs the
// post-write fan-out. The response carries the stored log, its task
// statuses and any new celebrations.
func editLog(c *fiber.Ctx, challenge *models.Challenge, date string, changes func(l *models.DailyLog) map[string]interface{}) error {
	log, err := database.GetOrCreateLog(challenge, date)
	if err != nil {
		logger.Log.Error("log_load_failed", zap.String("date", date), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load log",
		})
	}

	columns := changes(log)
	changed := len(columns) > 0
	if changed {
		log, err = database.UpdateLog(log, columns)
		if err != nil {
			logger.Log.Error("log_save_failed", zap.String("date", date), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save log",
			})
		}
	}

	history, err := database.AllLogs(challenge.ID)
	if err != nil {
		logger.Log.Warn("log_history_failed", zap.Error(err))
	}

	statuses := tasks.Evaluate(challenge, log, history)
	celebrations := []services.Celebration{}
	if changed {
		celebrations = services.Celebrate(challenge, log, history)
		services.WS.Broadcast(challenge.UserID, services.WSEvent{
			Type:   services.EventLogUpdated,
			UserID: challenge.UserID.String(),
			Date:   date,
			Data:   log,
		})
	}

	return c.JSON(fiber.Map{
		"log":          log,
		"tasks":        statuses,
		"dayComplete":  tasks.IsDayComplete(statuses),
		"percentage":   tasks.CompletionPercentage(statuses),
		"celebrations": celebrations,
	})
}
// removeUpload deletes a file previously served under /uploads/.
func removeUpload(url string) {
	name := strings.TrimPrefix(url, "/uploads/")
	if name == url || name == "" || strings.ContainsAny(name, `/\`) {
		return
	}
	if err := os.Remove(filepath.Join(uploadsDir, name)); err != nil && !os.IsNotExist(err) {
		logger.Log.Warn("upload_remove_failed", zap.String("file", name), zap.Error(err))
	}
}

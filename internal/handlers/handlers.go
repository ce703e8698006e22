package handlers

import (
	"errors"
	"time"

	"github.com/arnold/hard75-api/internal/calendar"
	"github.com/arnold/hard75-api/internal/config"
	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/logger"
	"github.com/arnold/hard75-api/internal/middleware"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	uploadsDir      = "uploads"
	googleClientIDs = ""

	// now is swapped in tests to pin "today".
	now = time.Now
)

// Configure applies the settings handlers read at request time.
func Configure(cfg *config.Config) {
	uploadsDir = cfg.UploadsDir
	googleClientIDs = cfg.GoogleClientIDs
}

// today is the current calendar date in the user's timezone.
func today(userID uuid.UUID) string {
	var user models.User
	zone := "UTC"
	if err := database.DB.Select("timezone").First(&user, "id = ?", userID).Error; err == nil {
		zone = user.Timezone
	}
	return calendar.Today(now(), zone)
}

// currentChallenge loads the user's active challenge, writing the error
// response itself when there is none. A nil challenge means the handler
// should return the error.
func currentChallenge(c *fiber.Ctx) (*models.Challenge, error) {
	challenge, err := database.LatestChallenge(middleware.GetUserID(c))
	if errors.Is(err, database.ErrNoChallenge) {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No challenge configured",
		})
	}
	if err != nil {
		logger.Log.Error("challenge_load_failed", zap.Error(err))
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load challenge",
		})
	}
	return challenge, nil
}

// dateParam returns the :date route parameter if it is a calendar date.
func dateParam(c *fiber.Ctx) (string, bool) {
	date := c.Params("date")
	return date, calendar.Valid(date)
}

func invalidDate(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Date must be YYYY-MM-DD",
	})
}

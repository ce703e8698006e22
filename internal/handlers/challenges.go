package handlers

import (
	"github.com/arnold/hard75-api/internal/analytics"
	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/logger"
	"github.com/arnold/hard75-api/internal/middleware"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/arnold/hard75-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateChallenge starts a new challenge. It becomes the user's current one.
func CreateChallenge(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateChallengeRequest
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

	challenge := models.NewChallenge(userID, req)
	if err := database.DB.Create(&challenge).Error; err != nil {
		logger.Log.Error("challenge_create_failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create challenge",
		})
	}

	logger.Log.Info("challenge_created",
		zap.String("user_id", userID.String()),
		zap.String("challenge_id", challenge.ID.String()),
		zap.String("start_date", challenge.StartDate),
		zap.Int("total_days", challenge.TotalDays))

	return c.Status(fiber.StatusCreated).JSON(challenge)
}

// GetCurrentChallenge returns the latest challenge with where the user is in it.
func GetCurrentChallenge(c *fiber.Ctx) error {
	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	day := analytics.ElapsedDays(challenge, today(challenge.UserID))
	return c.JSON(fiber.Map{
		"challenge":     challenge,
		"currentDay":    day,
		"daysRemaining": challenge.TotalDays - day,
	})
}

// UpdateCurrentChallenge applies a partial edit to the current challenge.
func UpdateCurrentChallenge(c *fiber.Ctx) error {
	var req models.UpdateChallengeRequest
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

	req.Apply(challenge)
	if err := database.DB.Save(challenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update challenge",
		})
	}

	return c.JSON(challenge)
}

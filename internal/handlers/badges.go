package handlers

import (
	"github.com/arnold/hard75-api/internal/badges"
	"github.com/arnold/hard75-api/internal/database"
	"github.com/gofiber/fiber/v2"
)

func GetBadges(c *fiber.Ctx) error {
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

	catalog := badges.Catalog(challenge, logs)
	earned := 0
	for _, b := range catalog {
		if b.Earned {
			earned++
		}
	}

	return c.JSON(fiber.Map{
		"badges": catalog,
		"earned": earned,
	})
}

package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arnold/hard75-api/internal/logger"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxPhotoBytes = 5 * 1024 * 1024

var allowedPhotoExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".heic": true}

// UploadProgressPhoto stores the day's progress photo and marks the photo
// task done. A previous photo for the day is replaced.
func UploadProgressPhoto(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return invalidDate(c)
	}

	challenge, err := currentChallenge(c)
	if challenge == nil {
		return err
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExt[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only jpg, png, webp and heic images are allowed",
		})
	}

	if file.Size > maxPhotoBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image must be under 5MB",
		})
	}

	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create uploads directory",
		})
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(uploadsDir, filename)); err != nil {
		logger.Log.Error("photo_save_failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image",
		})
	}

	photoURL := fmt.Sprintf("/uploads/%s", filename)
	err = editLog(c, challenge, date, func(l *models.DailyLog) map[string]interface{} {
		if l.ProgressPhotoURL != nil {
			removeUpload(*l.ProgressPhotoURL)
		}
		return map[string]interface{}{
			"ProgressPhotoURL":       photoURL,
			"ProgressPhotoCompleted": true,
		}
	})
	// Nothing points at the new file if the log was not updated.
	if c.Response().StatusCode() >= fiber.StatusBadRequest {
		removeUpload(photoURL)
	}
	return err
}

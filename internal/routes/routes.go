package routes

import (
	"github.com/arnold/hard75-api/internal/handlers"
	"github.com/arnold/hard75-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func Setup(app *fiber.App, uploadsDir string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Static("/uploads", uploadsDir)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Post("/google", handlers.GoogleLogin)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/me", handlers.UpdateProfile)

	challenges := protected.Group("/challenges")
	challenges.Post("/", handlers.CreateChallenge)
	challenges.Get("/current", handlers.GetCurrentChallenge)
	challenges.Put("/current", handlers.UpdateCurrentChallenge)

	// Daily logs of the current challenge, keyed by YYYY-MM-DD
	logs := protected.Group("/logs")
	logs.Get("/", handlers.GetLogs)
	logs.Get("/:date", handlers.GetLog)
	logs.Put("/:date", handlers.UpsertLog)
	logs.Get("/:date/tasks", handlers.GetDayTasks)
	logs.Post("/:date/health", handlers.SyncHealth)
	logs.Post("/:date/photo", handlers.UploadProgressPhoto)
	logs.Delete("/:date/photo", handlers.DeletePhoto)
	logs.Delete("/:date/weight", handlers.DeleteWeight)

	protected.Get("/analytics", handlers.GetAnalytics)
	protected.Get("/badges", handlers.GetBadges)
	protected.Get("/journal", handlers.GetJournal)

	notifications := protected.Group("/notifications")
	notifications.Get("/", handlers.GetNotifications)
	notifications.Put("/:id/read", handlers.MarkNotificationRead)
	notifications.Post("/read-all", handlers.MarkAllRead)

	// Device token for push notifications
	protected.Post("/device-token", handlers.RegisterDeviceToken)

	// WebSocket for the user's own live updates
	app.Use("/ws", handlers.WebSocketUpgrade())
	app.Get("/ws", websocket.New(handlers.HandleWebSocket))
}

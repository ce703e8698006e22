package services

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/logger"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// PushService handles sending push notifications via Firebase Cloud Messaging
type PushService struct {
	client *messaging.Client
}

// Global push service instance
var Push *PushService

// InitPush initializes the Firebase push notification service.
// Push stays disabled, without error, if no service account is configured.
func InitPush(ctx context.Context, serviceAccountPath string) error {
	log := logger.Log.With(zap.String("component", "fcm"))

	if serviceAccountPath == "" {
		log.Info("push_disabled", zap.String("reason", "no service account configured"))
		Push = &PushService{client: nil}
		return nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountPath))
	if err != nil {
		log.Warn("push_disabled", zap.String("reason", "firebase app init failed"), zap.Error(err))
		Push = &PushService{client: nil}
		return nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Warn("push_disabled", zap.String("reason", "messaging client init failed"), zap.Error(err))
		Push = &PushService{client: nil}
		return nil
	}

	Push = &PushService{client: client}
	log.Info("push_enabled")
	return nil
}

// Enabled reports whether messages will actually be sent.
func (p *PushService) Enabled() bool {
	return p != nil && p.client != nil
}

// SendToUser sends a push notification to a user by their ID.
// No-op if push is not configured or user has no FCM token.
func (p *PushService) SendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) {
	if !p.Enabled() {
		return
	}

	var user models.User
	if err := database.DB.Select("fcm_token").First(&user, "id = ?", userID).Error; err != nil {
		return
	}

	if user.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if data != nil {
		msg.Data = data
	}

	if _, err := p.client.Send(ctx, msg); err != nil {
		logger.Log.Warn("push_send_failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/google/uuid"
)

// CreateNotification stores an in-app notification and pushes it to the
// user's device in the background.
func CreateNotification(userID uuid.UUID, notifType, title, body string, metadata map[string]interface{}) (*models.Notification, error) {
	notif := models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
	}

	var pushData map[string]string
	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err == nil {
			s := string(data)
			notif.Metadata = &s
		}
		pushData = make(map[string]string, len(metadata)+1)
		for k, v := range metadata {
			pushData[k] = fmt.Sprintf("%v", v)
		}
		pushData["type"] = notifType
	}

	if err := database.DB.Create(&notif).Error; err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	if Push.Enabled() {
		go Push.SendToUser(context.Background(), userID, title, body, pushData)
	}
	return &notif, nil
}

package handlers

import (
	"sort"

	"github.com/arnold/hard75-api/internal/calendar"
	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/arnold/hard75-api/internal/tasks"
	"github.com/gofiber/fiber/v2"
)

// JournalEntry is one item of the challenge timeline.
type JournalEntry struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"` // day_complete, progress_photo, note, badge_earned
	Date      string  `json:"date"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	MoodScore *int    `json:"moodScore,omitempty"`
}

// journalOrder breaks ties between entries on the same day.
var journalOrder = map[string]int{
	models.NotificationBadge:       0,
	models.NotificationDayComplete: 1,
	"progress_photo":               2,
	"note":                         3,
}

// GetJournal returns a newest-first timeline of the current challenge:
// completed days, progress photos, mood and free-form notes, and badges.
func GetJournal(c *fiber.Ctx) error {
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

	entries := []JournalEntry{}
	for i := range logs {
		l := &logs[i]

		statuses := tasks.Evaluate(challenge, l, logs)
		if len(statuses) > 0 && tasks.IsDayComplete(statuses) {
			entries = append(entries, JournalEntry{
				ID:    "day_" + l.ID.String(),
				Type:  models.NotificationDayComplete,
				Date:  l.Date,
				Title: "Day complete",
			})
		}

		if l.ProgressPhotoURL != nil {
			entries = append(entries, JournalEntry{
				ID:       "photo_" + l.ID.String(),
				Type:     "progress_photo",
				Date:     l.Date,
				Title:    "Progress photo",
				ImageURL: l.ProgressPhotoURL,
			})
		}

		content := ""
		if l.MoodNote != nil {
			content = *l.MoodNote
		} else if l.Notes != nil {
			content = *l.Notes
		}
		if content != "" {
			entries = append(entries, JournalEntry{
				ID:        "note_" + l.ID.String(),
				Type:      "note",
				Date:      l.Date,
				Title:     "Note",
				Content:   content,
				MoodScore: l.MoodScore,
			})
		}
	}

	// Badges live in the notification feed; it is the only record of when
	// each was earned.
	var badgeNotes []models.Notification
	database.DB.
		Where("user_id = ? AND type = ? AND created_at >= ?", challenge.UserID, models.NotificationBadge, challenge.CreatedAt).
		Order("created_at DESC").
		Limit(30).
		Find(&badgeNotes)

	for _, n := range badgeNotes {
		entries = append(entries, JournalEntry{
			ID:      "badge_" + n.ID.String(),
			Type:    models.NotificationBadge,
			Date:    calendar.Format(n.CreatedAt),
			Title:   n.Title,
			Content: n.Body,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return journalOrder[entries[i].Type] < journalOrder[entries[j].Type]
	})

	return c.JSON(entries)
}

// Package badges defines the achievement catalog and decides which badges a
// challenge history has earned.
package badges

import (
	"github.com/arnold/hard75-api/internal/analytics"
	"github.com/arnold/hard75-api/internal/calendar"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/arnold/hard75-api/internal/tasks"
)

// Badge IDs are persisted in the notification de-duplication set and by
// clients; keep them stable.
const (
	FirstDay    = "first_day"
	Streak7     = "streak_7"
	Streak21    = "streak_21"
	Streak50    = "streak_50"
	Halfway     = "halfway"
	Finisher    = "finisher"
	PerfectWeek = "perfect_week"
)

type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// progress is what the catalog rules look at.
type progress struct {
	challenge     *models.Challenge
	loggedDays    int
	longestStreak int
	perfectRun    int
}

type definition struct {
	id          string
	title       string
	description string
	earned      func(p progress) bool
}

var catalog = []definition{
	{FirstDay, "Day One", "Logged the first day of the challenge",
		func(p progress) bool { return p.loggedDays >= 1 }},
	{Streak7, "One Week Strong", "Logged 7 days in a row",
		func(p progress) bool { return p.longestStreak >= 7 }},
	{Streak21, "Habit Formed", "Logged 21 days in a row",
		func(p progress) bool { return p.longestStreak >= 21 }},
	{Streak50, "Unstoppable", "Logged 50 days in a row",
		func(p progress) bool { return p.longestStreak >= 50 }},
	{Halfway, "Halfway There", "Logged half of the challenge's days",
		func(p progress) bool { return p.loggedDays*2 >= p.challenge.TotalDays }},
	{Finisher, "Finisher", "Logged every day of the challenge",
		func(p progress) bool { return p.loggedDays >= p.challenge.TotalDays }},
	{PerfectWeek, "Perfect Week", "Completed every task for 7 days in a row",
		func(p progress) bool { return p.perfectRun >= 7 }},
}

// Catalog returns every badge with Earned set for the given history.
// A nil challenge earns nothing.
func Catalog(c *models.Challenge, logs []models.DailyLog) []Badge {
	var p progress
	if c != nil {
		p = progress{
			challenge:     c,
			loggedDays:    len(logs),
			longestStreak: analytics.LongestStreak(logs),
			perfectRun:    longestPerfectRun(c, logs),
		}
	}

	out := make([]Badge, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, Badge{
			ID:          d.id,
			Title:       d.title,
			Description: d.description,
			Earned:      c != nil && c.TotalDays > 0 && d.earned(p),
		})
	}
	return out
}

// Earned returns only the badges the history has earned.
func Earned(c *models.Challenge, logs []models.DailyLog) []Badge {
	earned := []Badge{}
	for _, b := range Catalog(c, logs) {
		if b.Earned {
			earned = append(earned, b)
		}
	}
	return earned
}

// longestPerfectRun is the longest run of consecutive days on which every
// tracked task was complete. A challenge that tracks no tasks has no
// perfect days.
func longestPerfectRun(c *models.Challenge, logs []models.DailyLog) int {
	perfect := make(map[string]bool)
	for i := range logs {
		if !calendar.Valid(logs[i].Date) {
			continue
		}
		statuses := tasks.Evaluate(c, &logs[i], logs)
		if len(statuses) > 0 && tasks.IsDayComplete(statuses) {
			perfect[logs[i].Date] = true
		}
	}

	longest := 0
	for date := range perfect {
		if perfect[calendar.AddDays(date, -1)] {
			continue
		}
		run := 0
		for d := date; perfect[d]; d = calendar.AddDays(d, 1) {
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Package analytics summarizes a challenge's log history for the overview
// and analytics screens.
package analytics

import (
	"math"
	"sort"

	"github.com/arnold/hard75-api/internal/calendar"
	"github.com/arnold/hard75-api/internal/models"
)

// DayActivity is one cell of the weekly activity strip.
type DayActivity struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	HasLog      bool   `json:"hasLog"`
	HasActivity bool   `json:"hasActivity"`
}

type Snapshot struct {
	CompletedDays     int           `json:"completedDays"`
	TotalDays         int           `json:"totalDays"` // elapsed days, capped at the challenge length
	ChallengeDays     int           `json:"challengeDays"`
	DaysRemaining     int           `json:"daysRemaining"`
	CompletionRate    int           `json:"completionRate"`
	ChallengeProgress int           `json:"challengeProgress"`
	CurrentStreak     int           `json:"currentStreak"`
	LongestStreak     int           `json:"longestStreak"`
	AvgSteps          int           `json:"avgSteps"`
	AvgWater          float64       `json:"avgWater"`
	AvgReading        int           `json:"avgReading"`
	AvgWorkoutMinutes int           `json:"avgWorkoutMinutes"`
	WorkoutRate       int           `json:"workoutRate"`
	DietRate          int           `json:"dietRate"`
	PhotoRate         int           `json:"photoRate"`
	Weekly            []DayActivity `json:"weekly"`
}

// Compute builds the analytics snapshot as of today (YYYY-MM-DD). It returns
// nil when there is no challenge or no logs, which callers render as an
// empty state.
//
// CompletedDays counts days with any log entry. That is looser than
// tasks.IsDayComplete, which requires every tracked task; both are kept.
func Compute(c *models.Challenge, logs []models.DailyLog, today string) *Snapshot {
	if c == nil || len(logs) == 0 {
		return nil
	}

	elapsed := ElapsedDays(c, today)
	completed := len(logs)

	var steps, reading, workout int
	var water float64
	var workoutDays, dietDays, photoDays int
	for i := range logs {
		l := &logs[i]
		steps += l.Steps()
		water += l.Water()
		reading += l.Reading()
		workout += l.WorkoutMinutes()
		if l.HasWorkout() {
			workoutDays++
		}
		if l.DietCompleted {
			dietDays++
		}
		if l.ProgressPhotoCompleted {
			photoDays++
		}
	}
	n := float64(completed)

	remaining := c.TotalDays - elapsed
	if remaining < 0 {
		remaining = 0
	}

	return &Snapshot{
		CompletedDays:     completed,
		TotalDays:         elapsed,
		ChallengeDays:     c.TotalDays,
		DaysRemaining:     remaining,
		CompletionRate:    Percent(completed, elapsed),
		ChallengeProgress: Percent(completed, c.TotalDays),
		CurrentStreak:     CurrentStreak(logs, today),
		LongestStreak:     LongestStreak(logs),
		AvgSteps:          int(math.Round(float64(steps) / n)),
		AvgWater:          math.Round(water/n*10) / 10,
		AvgReading:        int(math.Round(float64(reading) / n)),
		AvgWorkoutMinutes: int(math.Round(float64(workout) / n)),
		WorkoutRate:       Percent(workoutDays, elapsed),
		DietRate:          Percent(dietDays, elapsed),
		PhotoRate:         Percent(photoDays, elapsed),
		Weekly:            WeeklyActivity(logs, today),
	}
}

// ElapsedDays is the number of challenge days up to and including today,
// capped at the challenge length and never negative.
func ElapsedDays(c *models.Challenge, today string) int {
	if c == nil {
		return 0
	}
	since, ok := calendar.DaysBetween(c.StartDate, today)
	if !ok {
		return 0
	}
	elapsed := since + 1
	if elapsed > c.TotalDays {
		elapsed = c.TotalDays
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// Percent is round(part/whole*100), or 0 when whole is not positive.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// CurrentStreak counts consecutive days with a log, walking back from today.
// Without a log for today the streak is 0.
func CurrentStreak(logs []models.DailyLog, today string) int {
	if !calendar.Valid(today) {
		return 0
	}
	dates := dateSet(logs)
	streak := 0
	for {
		if !dates[calendar.AddDays(today, -streak)] {
			return streak
		}
		streak++
	}
}

// LongestStreak is the longest run of consecutive logged days anywhere in
// the history.
func LongestStreak(logs []models.DailyLog) int {
	dates := make([]string, 0, len(logs))
	for d := range dateSet(logs) {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	longest, run, prev := 0, 0, 0
	for i, d := range dates {
		run = 1
		if i > 0 {
			if gap, ok := calendar.DaysBetween(dates[i-1], d); ok && gap == 1 {
				run = prev + 1
			}
		}
		prev = run
		if run > longest {
			longest = run
		}
	}
	return longest
}

// HasLogForDay is the analytics screen's notion of a counted day: any log
// entry at all, regardless of which tasks were done.
func HasLogForDay(logs []models.DailyLog, date string) bool {
	return FindLog(logs, date) != nil
}

// FindLog returns the log for date, or nil.
func FindLog(logs []models.DailyLog, date string) *models.DailyLog {
	for i := range logs {
		if logs[i].Date == date {
			return &logs[i]
		}
	}
	return nil
}

// WeeklyActivity returns one cell per day from the most recent Monday
// through today.
func WeeklyActivity(logs []models.DailyLog, today string) []DayActivity {
	week := []DayActivity{}
	if !calendar.Valid(today) {
		return week
	}
	for d := calendar.MostRecentMonday(today); d <= today; d = calendar.AddDays(d, 1) {
		t, _ := calendar.Parse(d)
		cell := DayActivity{Date: d, Weekday: t.Weekday().String()[:3]}
		if l := FindLog(logs, d); l != nil {
			cell.HasLog = true
			cell.HasActivity = HasActivity(l)
		}
		week = append(week, cell)
	}
	return week
}

// HasActivity reports whether any of steps, workouts, diet, water or reading
// was recorded.
func HasActivity(l *models.DailyLog) bool {
	if l == nil {
		return false
	}
	return l.Steps() > 0 ||
		l.Workout1() > 0 ||
		l.Workout2() > 0 ||
		l.DietCompleted ||
		l.Water() > 0 ||
		l.Reading() > 0
}

func dateSet(logs []models.DailyLog) map[string]bool {
	set := make(map[string]bool, len(logs))
	for i := range logs {
		set[logs[i].Date] = true
	}
	return set
}

// Package tasks decides which of a challenge's daily tasks are done for a
// given day. Every function here is pure and nil-safe.
package tasks

import (
	"math"

	"github.com/arnold/hard75-api/internal/calendar"
	"github.com/arnold/hard75-api/internal/models"
)

type ID string

const (
	Steps         ID = "steps"
	Water         ID = "water"
	Workout1      ID = "workout1"
	Workout2      ID = "workout2"
	Reading       ID = "reading"
	Diet          ID = "diet"
	Calories      ID = "calories"
	Weight        ID = "weight"
	ProgressPhoto ID = "progressPhoto"
	NoAlcohol     ID = "noAlcohol"
	Mood          ID = "mood"
	Sleep         ID = "sleep"
	Cycle         ID = "cycle"
	Skincare      ID = "skincare"
)

// Status is one tracked task's completion for a day.
type Status struct {
	ID        ID     `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// rule is one row of the completion table. tracked reads the challenge flag;
// done decides completion for the day.
type rule struct {
	id      ID
	label   string
	tracked func(c *models.Challenge) bool
	done    func(c *models.Challenge, l *models.DailyLog, history []models.DailyLog) bool
}

var rules = []rule{
	{Steps, "Steps",
		func(c *models.Challenge) bool { return c.TrackSteps },
		func(c *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.StepsCompleted || l.Steps() >= c.StepsGoal
		}},
	{Water, "Water",
		func(c *models.Challenge) bool { return c.TrackWater },
		func(c *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.WaterCompleted || l.Water() >= c.WaterLiters
		}},
	{Workout1, "Workout 1",
		func(c *models.Challenge) bool { return c.TrackWorkout1 },
		func(c *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.Workout1Completed || l.Workout1() >= c.WorkoutMinutes
		}},
	{Workout2, "Workout 2",
		func(c *models.Challenge) bool { return c.TrackWorkout2 },
		func(c *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.Workout2Completed || l.Workout2() >= c.WorkoutMinutes
		}},
	{Reading, "Reading",
		func(c *models.Challenge) bool { return c.TrackReading },
		func(c *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.ReadingCompleted || l.Reading() >= c.ReadingPages
		}},
	{Diet, "Diet",
		func(c *models.Challenge) bool { return c.TrackDiet },
		func(_ *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.DietCompleted
		}},
	{Calories, "Calories",
		func(c *models.Challenge) bool { return c.TrackCalories },
		func(_ *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.Calories() > 0
		}},
	{Weight, "Weight",
		func(c *models.Challenge) bool { return c.TrackWeight },
		func(_ *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.WeightLogged
		}},
	{ProgressPhoto, "Progress Photo",
		func(c *models.Challenge) bool { return c.TrackProgressPhoto },
		photoDone},
	{NoAlcohol, "No Alcohol",
		func(c *models.Challenge) bool { return c.TrackNoAlcohol },
		func(_ *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.NoAlcoholCompleted
		}},
	{Mood, "Mood",
		func(c *models.Challenge) bool { return c.TrackMood },
		func(_ *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.Mood() > 0
		}},
	{Sleep, "Sleep",
		func(c *models.Challenge) bool { return c.TrackSleep },
		func(c *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.SleepCompleted || float64(l.Sleep()) >= c.SleepGoalMinutes()
		}},
	// Cycle logging is optional and never blocks the day.
	{Cycle, "Cycle",
		func(c *models.Challenge) bool { return c.TrackCycle },
		func(_ *models.Challenge, _ *models.DailyLog, _ []models.DailyLog) bool {
			return true
		}},
	{Skincare, "Skincare",
		func(c *models.Challenge) bool { return c.TrackSkincare },
		func(_ *models.Challenge, l *models.DailyLog, _ []models.DailyLog) bool {
			return l.SkincareCompleted
		}},
}

// photoDone is satisfied by today's flag, or for a cadence above one day by
// any photo logged in the trailing window [date-cadence+1, date].
func photoDone(c *models.Challenge, l *models.DailyLog, history []models.DailyLog) bool {
	if l.ProgressPhotoCompleted {
		return true
	}
	cadence := c.ProgressPhotoDays
	if cadence <= 1 {
		return false
	}
	for i := range history {
		h := &history[i]
		if !h.ProgressPhotoCompleted {
			continue
		}
		ago, ok := calendar.DaysBetween(h.Date, l.Date)
		if ok && ago >= 0 && ago < cadence {
			return true
		}
	}
	return false
}

// Evaluate returns one Status per task the challenge tracks, in a fixed
// order. history is only consulted for the progress photo cadence and may
// be nil. A nil challenge or log yields an empty list.
func Evaluate(c *models.Challenge, l *models.DailyLog, history []models.DailyLog) []Status {
	statuses := []Status{}
	if c == nil || l == nil {
		return statuses
	}
	for _, r := range rules {
		if !r.tracked(c) {
			continue
		}
		statuses = append(statuses, Status{
			ID:        r.id,
			Label:     r.label,
			Completed: r.done(c, l, history),
		})
	}
	return statuses
}

// IsDayComplete reports whether every task is done. An empty list is complete.
func IsDayComplete(statuses []Status) bool {
	for _, s := range statuses {
		if !s.Completed {
			return false
		}
	}
	return true
}

func Incomplete(statuses []Status) []Status {
	return filter(statuses, false)
}

func Completed(statuses []Status) []Status {
	return filter(statuses, true)
}

func filter(statuses []Status, completed bool) []Status {
	out := []Status{}
	for _, s := range statuses {
		if s.Completed == completed {
			out = append(out, s)
		}
	}
	return out
}

// CompletionPercentage is round(completed/total*100), or 0 with no tasks.
func CompletionPercentage(statuses []Status) int {
	if len(statuses) == 0 {
		return 0
	}
	done := len(Completed(statuses))
	return int(math.Round(float64(done) / float64(len(statuses)) * 100))
}

// CaloriesGoalMet applies the challenge's calorie direction: "above" needs
// consumption at or over the goal, "below" needs a logged value at or under
// it. Evaluate does not use this; its calorie task only checks that a value
// was logged.
func CaloriesGoalMet(c *models.Challenge, l *models.DailyLog) bool {
	if c == nil || l == nil || !c.TrackCalories {
		return false
	}
	consumed := l.Calories()
	if consumed <= 0 {
		return false
	}
	if c.CaloriesGoalType == models.CaloriesAbove {
		return consumed >= c.CaloriesGoal
	}
	return consumed <= c.CaloriesGoal
}

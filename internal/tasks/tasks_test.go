package tasks

import (
	"reflect"
	"testing"

	"github.com/arnold/hard75-api/internal/models"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func allTracked() *models.Challenge {
	return &models.Challenge{
		StartDate:          "2024-06-01",
		TotalDays:          75,
		TrackSteps:         true,
		StepsGoal:          10000,
		TrackWater:         true,
		WaterLiters:        3.5,
		TrackDiet:          true,
		TrackCalories:      true,
		CaloriesGoal:       2000,
		CaloriesGoalType:   models.CaloriesBelow,
		TrackWeight:        true,
		TrackWorkout1:      true,
		TrackWorkout2:      true,
		WorkoutMinutes:     45,
		TrackReading:       true,
		ReadingPages:       10,
		TrackProgressPhoto: true,
		ProgressPhotoDays:  1,
		TrackNoAlcohol:     true,
		TrackMood:          true,
		TrackSleep:         true,
		TrackCycle:         true,
		TrackSkincare:      true,
	}
}

func statusOf(t *testing.T, statuses []Status, id ID) Status {
	t.Helper()
	for _, s := range statuses {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("Expected task %s in statuses", id)
	return Status{}
}

func TestEvaluate_NilInputs(t *testing.T) {
	t.Parallel()

	log := &models.DailyLog{Date: "2024-06-01"}
	if got := Evaluate(nil, log, nil); len(got) != 0 {
		t.Errorf("Expected no tasks for nil challenge, got %d", len(got))
	}
	if got := Evaluate(allTracked(), nil, nil); len(got) != 0 {
		t.Errorf("Expected no tasks for nil log, got %d", len(got))
	}
	if got := Evaluate(nil, nil, nil); got == nil {
		t.Error("Expected empty non-nil list")
	}
}

func TestEvaluate_NothingTracked(t *testing.T) {
	t.Parallel()

	c := &models.Challenge{StartDate: "2024-06-01", TotalDays: 75}
	statuses := Evaluate(c, &models.DailyLog{Date: "2024-06-01"}, nil)

	if len(statuses) != 0 {
		t.Fatalf("Expected empty task list, got %d", len(statuses))
	}
	if !IsDayComplete(statuses) {
		t.Error("Expected empty task list to be vacuously complete")
	}
	if got := CompletionPercentage(statuses); got != 0 {
		t.Errorf("Expected 0%% for no tasks, got %d", got)
	}
	if len(Incomplete(statuses)) != 0 || len(Completed(statuses)) != 0 {
		t.Error("Expected empty incomplete and completed lists")
	}
}

func TestEvaluate_OrderAndLabels(t *testing.T) {
	t.Parallel()

	statuses := Evaluate(allTracked(), &models.DailyLog{Date: "2024-06-01"}, nil)

	want := []ID{Steps, Water, Workout1, Workout2, Reading, Diet, Calories, Weight,
		ProgressPhoto, NoAlcohol, Mood, Sleep, Cycle, Skincare}
	got := make([]ID, len(statuses))
	for i, s := range statuses {
		got[i] = s.ID
		if s.Label == "" {
			t.Errorf("Expected label for %s", s.ID)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

func TestEvaluate_EmptyLogOnlyCycleComplete(t *testing.T) {
	t.Parallel()

	statuses := Evaluate(allTracked(), &models.DailyLog{Date: "2024-06-01"}, nil)

	for _, s := range statuses {
		if s.ID == Cycle {
			if !s.Completed {
				t.Error("Expected cycle to always be complete when tracked")
			}
			continue
		}
		if s.Completed {
			t.Errorf("Expected %s incomplete on an empty log", s.ID)
		}
	}
	if IsDayComplete(statuses) {
		t.Error("Expected day incomplete")
	}
	if got, want := CompletionPercentage(statuses), 7; got != want {
		t.Errorf("Expected %d%%, got %d", want, got)
	}
}

func TestEvaluate_NumericBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   ID
		log  models.DailyLog
		want bool
	}{
		{"steps at goal", Steps, models.DailyLog{StepsCount: intPtr(10000)}, true},
		{"steps one below", Steps, models.DailyLog{StepsCount: intPtr(9999)}, false},
		{"steps flag", Steps, models.DailyLog{StepsCompleted: true}, true},
		{"water at goal", Water, models.DailyLog{WaterLiters: floatPtr(3.5)}, true},
		{"water below", Water, models.DailyLog{WaterLiters: floatPtr(3.4)}, false},
		{"water flag", Water, models.DailyLog{WaterCompleted: true}, true},
		{"workout1 at goal", Workout1, models.DailyLog{Workout1Minutes: intPtr(45)}, true},
		{"workout1 below", Workout1, models.DailyLog{Workout1Minutes: intPtr(44)}, false},
		{"workout2 independent of workout1", Workout2, models.DailyLog{Workout1Minutes: intPtr(90)}, false},
		{"workout2 flag", Workout2, models.DailyLog{Workout2Completed: true}, true},
		{"reading at goal", Reading, models.DailyLog{ReadingPages: intPtr(10)}, true},
		{"reading below", Reading, models.DailyLog{ReadingPages: intPtr(9)}, false},
		{"sleep at default goal", Sleep, models.DailyLog{SleepMinutes: intPtr(480)}, true},
		{"sleep below default goal", Sleep, models.DailyLog{SleepMinutes: intPtr(479)}, false},
		{"sleep flag", Sleep, models.DailyLog{SleepCompleted: true}, true},
		{"calories any value", Calories, models.DailyLog{CaloriesConsumed: intPtr(3500)}, true},
		{"calories zero", Calories, models.DailyLog{CaloriesConsumed: intPtr(0)}, false},
		{"mood logged", Mood, models.DailyLog{MoodScore: intPtr(3)}, true},
		{"diet flag", Diet, models.DailyLog{DietCompleted: true}, true},
		{"weight flag", Weight, models.DailyLog{WeightLogged: true}, true},
		{"weight value without flag", Weight, models.DailyLog{CurrentWeight: floatPtr(80)}, false},
		{"no alcohol flag", NoAlcohol, models.DailyLog{NoAlcoholCompleted: true}, true},
		{"skincare flag", Skincare, models.DailyLog{SkincareCompleted: true}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log := tt.log
			log.Date = "2024-06-01"
			s := statusOf(t, Evaluate(allTracked(), &log, nil), tt.id)
			if s.Completed != tt.want {
				t.Errorf("Expected completed=%v, got %v", tt.want, s.Completed)
			}
		})
	}
}

func TestEvaluate_CustomSleepGoal(t *testing.T) {
	t.Parallel()

	c := &models.Challenge{TrackSleep: true, SleepGoalHours: 7}
	log := &models.DailyLog{Date: "2024-06-01", SleepMinutes: intPtr(420)}

	if !statusOf(t, Evaluate(c, log, nil), Sleep).Completed {
		t.Error("Expected 7h of sleep to meet a 7h goal")
	}
}

func TestEvaluate_ZeroGoalIsTriviallyMet(t *testing.T) {
	t.Parallel()

	c := &models.Challenge{TrackSteps: true, StepsGoal: 0}
	log := &models.DailyLog{Date: "2024-06-01"}

	if !statusOf(t, Evaluate(c, log, nil), Steps).Completed {
		t.Error("Expected a zero steps goal to be met by a missing count")
	}
}

func TestEvaluate_ProgressPhotoCadence(t *testing.T) {
	t.Parallel()

	today := "2024-06-10"
	photoOn := func(date string) models.DailyLog {
		return models.DailyLog{Date: date, ProgressPhotoCompleted: true}
	}

	tests := []struct {
		name    string
		cadence int
		history []models.DailyLog
		want    bool
	}{
		{
			name:    "within window",
			cadence: 3,
			history: []models.DailyLog{
				{Date: "2024-06-10"},
				{Date: "2024-06-09"},
				photoOn("2024-06-08"),
			},
			want: true,
		},
		{
			name:    "exactly cadence days ago is outside",
			cadence: 3,
			history: []models.DailyLog{photoOn("2024-06-07")},
			want:    false,
		},
		{
			name:    "four days ago",
			cadence: 3,
			history: []models.DailyLog{photoOn("2024-06-06")},
			want:    false,
		},
		{
			name:    "cadence one ignores history",
			cadence: 1,
			history: []models.DailyLog{photoOn("2024-06-09")},
			want:    false,
		},
		{
			name:    "future photo ignored",
			cadence: 7,
			history: []models.DailyLog{photoOn("2024-06-11")},
			want:    false,
		},
		{
			name:    "no history",
			cadence: 7,
			want:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &models.Challenge{TrackProgressPhoto: true, ProgressPhotoDays: tt.cadence}
			log := &models.DailyLog{Date: today}
			if got := statusOf(t, Evaluate(c, log, tt.history), ProgressPhoto).Completed; got != tt.want {
				t.Errorf("Expected completed=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestEvaluate_TodayPhotoFlagAlwaysCounts(t *testing.T) {
	t.Parallel()

	c := &models.Challenge{TrackProgressPhoto: true, ProgressPhotoDays: 1}
	log := &models.DailyLog{Date: "2024-06-10", ProgressPhotoCompleted: true}

	if !statusOf(t, Evaluate(c, log, nil), ProgressPhoto).Completed {
		t.Error("Expected today's photo flag to complete the task")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	t.Parallel()

	c := allTracked()
	c.ProgressPhotoDays = 3
	log := &models.DailyLog{Date: "2024-06-10", StepsCount: intPtr(12000), DietCompleted: true}
	history := []models.DailyLog{{Date: "2024-06-09", ProgressPhotoCompleted: true}}

	first := Evaluate(c, log, history)
	second := Evaluate(c, log, history)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %v and %v", first, second)
	}
}

func TestCompletionHelpers(t *testing.T) {
	t.Parallel()

	statuses := []Status{
		{ID: Steps, Completed: true},
		{ID: Water, Completed: false},
		{ID: Diet, Completed: true},
	}

	if got := CompletionPercentage(statuses); got != 67 {
		t.Errorf("Expected 67%%, got %d", got)
	}
	if got := len(Completed(statuses)); got != 2 {
		t.Errorf("Expected 2 completed, got %d", got)
	}
	inc := Incomplete(statuses)
	if len(inc) != 1 || inc[0].ID != Water {
		t.Errorf("Expected only water incomplete, got %v", inc)
	}
	if IsDayComplete(statuses) {
		t.Error("Expected day incomplete")
	}
}

func TestCaloriesGoalMet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		direction string
		consumed  *int
		want      bool
	}{
		{"below under goal", models.CaloriesBelow, intPtr(1800), true},
		{"below at goal", models.CaloriesBelow, intPtr(2000), true},
		{"below over goal", models.CaloriesBelow, intPtr(2100), false},
		{"below nothing logged", models.CaloriesBelow, nil, false},
		{"above over goal", models.CaloriesAbove, intPtr(2500), true},
		{"above at goal", models.CaloriesAbove, intPtr(2000), true},
		{"above under goal", models.CaloriesAbove, intPtr(1500), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &models.Challenge{TrackCalories: true, CaloriesGoal: 2000, CaloriesGoalType: tt.direction}
			log := &models.DailyLog{Date: "2024-06-01", CaloriesConsumed: tt.consumed}
			if got := CaloriesGoalMet(c, log); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCaloriesGoalMet_DiffersFromTaskRule(t *testing.T) {
	t.Parallel()

	c := &models.Challenge{TrackCalories: true, CaloriesGoal: 2000, CaloriesGoalType: models.CaloriesBelow}
	log := &models.DailyLog{Date: "2024-06-01", CaloriesConsumed: intPtr(3000)}

	if !statusOf(t, Evaluate(c, log, nil), Calories).Completed {
		t.Error("Expected calorie task complete once any value is logged")
	}
	if CaloriesGoalMet(c, log) {
		t.Error("Expected direction-aware check to fail when over a 'below' goal")
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLog is one challenge day. Raw measurements are nullable; read them
// through the accessor methods, which resolve missing values to zero.
type DailyLog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ChallengeID uuid.UUID `json:"challengeId" gorm:"type:uuid;not null;uniqueIndex:idx_challenge_date"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Date        string    `json:"date" gorm:"not null;uniqueIndex:idx_challenge_date"` // YYYY-MM-DD

	StepsCount     *int `json:"stepsCount"`
	StepsCompleted bool `json:"stepsCompleted" gorm:"default:false"`

	WaterLiters    *float64 `json:"waterLiters"`
	WaterCompleted bool     `json:"waterCompleted" gorm:"default:false"`

	Workout1Minutes   *int    `json:"workout1Minutes"`
	Workout1Type      *string `json:"workout1Type"`
	Workout1Completed bool    `json:"workout1Completed" gorm:"default:false"`
	Workout2Minutes   *int    `json:"workout2Minutes"`
	Workout2Type      *string `json:"workout2Type"`
	Workout2Completed bool    `json:"workout2Completed" gorm:"default:false"`

	ReadingPages     *int `json:"readingPages"`
	ReadingCompleted bool `json:"readingCompleted" gorm:"default:false"`

	DietCompleted    bool `json:"dietCompleted" gorm:"default:false"`
	CaloriesConsumed *int `json:"caloriesConsumed"`

	CurrentWeight *float64 `json:"currentWeight"`
	WeightLogged  bool     `json:"weightLogged" gorm:"default:false"`

	ProgressPhotoCompleted bool    `json:"progressPhotoCompleted" gorm:"default:false"`
	ProgressPhotoURL       *string `json:"progressPhotoUrl"`

	NoAlcoholCompleted bool `json:"noAlcoholCompleted" gorm:"default:false"`

	MoodScore *int    `json:"moodScore"`
	MoodNote  *string `json:"moodNote"`

	SleepMinutes   *int `json:"sleepMinutes"`
	SleepLogged    bool `json:"sleepLogged" gorm:"default:false"`
	SleepCompleted bool `json:"sleepCompleted" gorm:"default:false"`

	CycleFlow *string `json:"cycleFlow"` // none, light, medium, heavy

	SkincareCompleted bool `json:"skincareCompleted" gorm:"default:false"`

	Notes *string `json:"notes" gorm:"type:text"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (l *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *DailyLog) Steps() int          { return intOrZero(l.StepsCount) }
func (l *DailyLog) Water() float64      { return floatOrZero(l.WaterLiters) }
func (l *DailyLog) Workout1() int       { return intOrZero(l.Workout1Minutes) }
func (l *DailyLog) Workout2() int       { return intOrZero(l.Workout2Minutes) }
func (l *DailyLog) Reading() int        { return intOrZero(l.ReadingPages) }
func (l *DailyLog) Calories() int       { return intOrZero(l.CaloriesConsumed) }
func (l *DailyLog) Weight() float64     { return floatOrZero(l.CurrentWeight) }
func (l *DailyLog) Mood() int           { return intOrZero(l.MoodScore) }
func (l *DailyLog) Sleep() int          { return intOrZero(l.SleepMinutes) }
func (l *DailyLog) WorkoutMinutes() int { return l.Workout1() + l.Workout2() }
func (l *DailyLog) HasWorkout() bool    { return l.Workout1() > 0 || l.Workout2() > 0 }

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// UpdateLogRequest is a partial update to one day's log. Nil fields are left alone.
type UpdateLogRequest struct {
	StepsCount     *int  `json:"stepsCount" validate:"omitempty,gte=0"`
	StepsCompleted *bool `json:"stepsCompleted"`

	WaterLiters    *float64 `json:"waterLiters" validate:"omitempty,gte=0"`
	WaterCompleted *bool    `json:"waterCompleted"`

	Workout1Minutes   *int    `json:"workout1Minutes" validate:"omitempty,gte=0"`
	Workout1Type      *string `json:"workout1Type" validate:"omitempty,max=64"`
	Workout1Completed *bool   `json:"workout1Completed"`
	Workout2Minutes   *int    `json:"workout2Minutes" validate:"omitempty,gte=0"`
	Workout2Type      *string `json:"workout2Type" validate:"omitempty,max=64"`
	Workout2Completed *bool   `json:"workout2Completed"`

	ReadingPages     *int  `json:"readingPages" validate:"omitempty,gte=0"`
	ReadingCompleted *bool `json:"readingCompleted"`

	DietCompleted    *bool `json:"dietCompleted"`
	CaloriesConsumed *int  `json:"caloriesConsumed" validate:"omitempty,gte=0"`

	CurrentWeight *float64 `json:"currentWeight" validate:"omitempty,gt=0"`

	ProgressPhotoCompleted *bool `json:"progressPhotoCompleted"`

	NoAlcoholCompleted *bool `json:"noAlcoholCompleted"`

	MoodScore *int    `json:"moodScore" validate:"omitempty,gte=1,lte=5"`
	MoodNote  *string `json:"moodNote" validate:"omitempty,max=500"`

	SleepMinutes   *int  `json:"sleepMinutes" validate:"omitempty,gte=0,lte=1440"`
	SleepCompleted *bool `json:"sleepCompleted"`

	CycleFlow *string `json:"cycleFlow" validate:"omitempty,oneof=none light medium heavy"`

	SkincareCompleted *bool `json:"skincareCompleted"`

	Notes *string `json:"notes" validate:"omitempty,max=2000"`
}

// Changes lists the columns req sets, keyed by DailyLog field name. Logging
// a weight or sleep value also sets the matching "logged" flag.
func (req *UpdateLogRequest) Changes() map[string]interface{} {
	ch := map[string]interface{}{}
	setColumn(ch, "StepsCount", req.StepsCount)
	setColumn(ch, "StepsCompleted", req.StepsCompleted)
	setColumn(ch, "WaterLiters", req.WaterLiters)
	setColumn(ch, "WaterCompleted", req.WaterCompleted)
	setColumn(ch, "Workout1Minutes", req.Workout1Minutes)
	setColumn(ch, "Workout1Type", req.Workout1Type)
	setColumn(ch, "Workout1Completed", req.Workout1Completed)
	setColumn(ch, "Workout2Minutes", req.Workout2Minutes)
	setColumn(ch, "Workout2Type", req.Workout2Type)
	setColumn(ch, "Workout2Completed", req.Workout2Completed)
	setColumn(ch, "ReadingPages", req.ReadingPages)
	setColumn(ch, "ReadingCompleted", req.ReadingCompleted)
	setColumn(ch, "DietCompleted", req.DietCompleted)
	setColumn(ch, "CaloriesConsumed", req.CaloriesConsumed)
	setColumn(ch, "ProgressPhotoCompleted", req.ProgressPhotoCompleted)
	setColumn(ch, "NoAlcoholCompleted", req.NoAlcoholCompleted)
	setColumn(ch, "MoodScore", req.MoodScore)
	setColumn(ch, "MoodNote", req.MoodNote)
	setColumn(ch, "SleepCompleted", req.SleepCompleted)
	setColumn(ch, "CycleFlow", req.CycleFlow)
	setColumn(ch, "SkincareCompleted", req.SkincareCompleted)
	setColumn(ch, "Notes", req.Notes)
	if req.CurrentWeight != nil {
		ch["CurrentWeight"] = *req.CurrentWeight
		ch["WeightLogged"] = true
	}
	if req.SleepMinutes != nil {
		ch["SleepMinutes"] = *req.SleepMinutes
		ch["SleepLogged"] = true
	}
	return ch
}

func setColumn[T any](ch map[string]interface{}, field string, v *T) {
	if v != nil {
		ch[field] = *v
	}
}

// HealthSyncRequest carries samples read from the device health store.
type HealthSyncRequest struct {
	Steps        *int     `json:"steps" validate:"omitempty,gte=0"`
	Weight       *float64 `json:"weight" validate:"omitempty,gt=0"`
	SleepMinutes *int     `json:"sleepMinutes" validate:"omitempty,gte=0,lte=1440"`
}

// Changes compares device samples with the stored log l and returns the
// columns to write, keyed by field name. A synced step count never lowers
// the stored one; the step column is guarded in SQL too.
func (req *HealthSyncRequest) Changes(l *DailyLog) map[string]interface{} {
	ch := map[string]interface{}{}
	if req.Steps != nil && *req.Steps > l.Steps() {
		ch["StepsCount"] = gorm.Expr(
			"CASE WHEN steps_count IS NULL OR steps_count < ? THEN ? ELSE steps_count END",
			*req.Steps, *req.Steps)
	}
	if req.Weight != nil && (l.CurrentWeight == nil || *l.CurrentWeight != *req.Weight) {
		ch["CurrentWeight"] = *req.Weight
		ch["WeightLogged"] = true
	}
	if req.SleepMinutes != nil && (l.SleepMinutes == nil || *l.SleepMinutes != *req.SleepMinutes) {
		ch["SleepMinutes"] = *req.SleepMinutes
		ch["SleepLogged"] = true
	}
	return ch
}

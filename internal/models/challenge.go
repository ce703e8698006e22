package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CaloriesAbove = "above"
	CaloriesBelow = "below"
)

// DefaultSleepGoalHours applies when a challenge tracks sleep without a goal.
const DefaultSleepGoalHours = 8

type Challenge struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	StartDate string    `json:"startDate" gorm:"not null"` // YYYY-MM-DD
	TotalDays int       `json:"totalDays" gorm:"not null;default:75"`

	TrackSteps bool `json:"trackSteps" gorm:"default:false"`
	StepsGoal  int  `json:"stepsGoal" gorm:"default:0"`

	TrackWater  bool    `json:"trackWater" gorm:"default:false"`
	WaterLiters float64 `json:"waterLiters" gorm:"default:0"`

	TrackDiet bool `json:"trackDiet" gorm:"default:false"`

	TrackCalories    bool   `json:"trackCalories" gorm:"default:false"`
	CaloriesGoal     int    `json:"caloriesGoal" gorm:"default:0"`
	CaloriesGoalType string `json:"caloriesGoalType" gorm:"default:'below'"` // above, below

	TrackWeight bool    `json:"trackWeight" gorm:"default:false"`
	WeightGoal  float64 `json:"weightGoal" gorm:"default:0"`

	TrackWorkout1  bool `json:"trackWorkout1" gorm:"default:false"`
	TrackWorkout2  bool `json:"trackWorkout2" gorm:"default:false"`
	WorkoutMinutes int  `json:"workoutMinutes" gorm:"default:0"`

	TrackReading bool `json:"trackReading" gorm:"default:false"`
	ReadingPages int  `json:"readingPages" gorm:"default:0"`

	TrackProgressPhoto bool `json:"trackProgressPhoto" gorm:"default:false"`
	ProgressPhotoDays  int  `json:"progressPhotoDays" gorm:"default:1"`

	TrackNoAlcohol bool `json:"trackNoAlcohol" gorm:"default:false"`
	TrackMood      bool `json:"trackMood" gorm:"default:false"`

	TrackSleep     bool    `json:"trackSleep" gorm:"default:false"`
	SleepGoalHours float64 `json:"sleepGoalHours" gorm:"default:0"`

	TrackCycle    bool `json:"trackCycle" gorm:"default:false"`
	TrackSkincare bool `json:"trackSkincare" gorm:"default:false"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// SleepGoalMinutes resolves the sleep goal, applying the 8 hour default.
func (c *Challenge) SleepGoalMinutes() float64 {
	hours := c.SleepGoalHours
	if hours <= 0 {
		hours = DefaultSleepGoalHours
	}
	return hours * 60
}

// Challenge DTOs
type CreateChallengeRequest struct {
	StartDate string `json:"startDate" validate:"required,calendar_date"`
	TotalDays int    `json:"totalDays" validate:"required,gt=0,lte=1000"`

	TrackSteps bool `json:"trackSteps"`
	StepsGoal  int  `json:"stepsGoal" validate:"gte=0"`

	TrackWater  bool    `json:"trackWater"`
	WaterLiters float64 `json:"waterLiters" validate:"gte=0"`

	TrackDiet bool `json:"trackDiet"`

	TrackCalories    bool   `json:"trackCalories"`
	CaloriesGoal     int    `json:"caloriesGoal" validate:"gte=0"`
	CaloriesGoalType string `json:"caloriesGoalType" validate:"omitempty,calories_direction"`

	TrackWeight bool    `json:"trackWeight"`
	WeightGoal  float64 `json:"weightGoal" validate:"gte=0"`

	TrackWorkout1  bool `json:"trackWorkout1"`
	TrackWorkout2  bool `json:"trackWorkout2"`
	WorkoutMinutes int  `json:"workoutMinutes" validate:"gte=0"`

	TrackReading bool `json:"trackReading"`
	ReadingPages int  `json:"readingPages" validate:"gte=0"`

	TrackProgressPhoto bool `json:"trackProgressPhoto"`
	ProgressPhotoDays  int  `json:"progressPhotoDays" validate:"gte=0"`

	TrackNoAlcohol bool    `json:"trackNoAlcohol"`
	TrackMood      bool    `json:"trackMood"`
	TrackSleep     bool    `json:"trackSleep"`
	SleepGoalHours float64 `json:"sleepGoalHours" validate:"gte=0,lte=24"`
	TrackCycle     bool    `json:"trackCycle"`
	TrackSkincare  bool    `json:"trackSkincare"`
}

// UpdateChallengeRequest carries a partial configuration edit.
type UpdateChallengeRequest struct {
	StartDate *string `json:"startDate" validate:"omitempty,calendar_date"`
	TotalDays *int    `json:"totalDays" validate:"omitempty,gt=0,lte=1000"`

	TrackSteps *bool `json:"trackSteps"`
	StepsGoal  *int  `json:"stepsGoal" validate:"omitempty,gte=0"`

	TrackWater  *bool    `json:"trackWater"`
	WaterLiters *float64 `json:"waterLiters" validate:"omitempty,gte=0"`

	TrackDiet *bool `json:"trackDiet"`

	TrackCalories    *bool   `json:"trackCalories"`
	CaloriesGoal     *int    `json:"caloriesGoal" validate:"omitempty,gte=0"`
	CaloriesGoalType *string `json:"caloriesGoalType" validate:"omitempty,calories_direction"`

	TrackWeight *bool    `json:"trackWeight"`
	WeightGoal  *float64 `json:"weightGoal" validate:"omitempty,gte=0"`

	TrackWorkout1  *bool `json:"trackWorkout1"`
	TrackWorkout2  *bool `json:"trackWorkout2"`
	WorkoutMinutes *int  `json:"workoutMinutes" validate:"omitempty,gte=0"`

	TrackReading *bool `json:"trackReading"`
	ReadingPages *int  `json:"readingPages" validate:"omitempty,gte=0"`

	TrackProgressPhoto *bool `json:"trackProgressPhoto"`
	ProgressPhotoDays  *int  `json:"progressPhotoDays" validate:"omitempty,gte=0"`

	TrackNoAlcohol *bool    `json:"trackNoAlcohol"`
	TrackMood      *bool    `json:"trackMood"`
	TrackSleep     *bool    `json:"trackSleep"`
	SleepGoalHours *float64 `json:"sleepGoalHours" validate:"omitempty,gte=0,lte=24"`
	TrackCycle     *bool    `json:"trackCycle"`
	TrackSkincare  *bool    `json:"trackSkincare"`
}

// NewChallenge builds a challenge for userID from a validated create request.
func NewChallenge(userID uuid.UUID, req CreateChallengeRequest) Challenge {
	direction := req.CaloriesGoalType
	if direction == "" {
		direction = CaloriesBelow
	}
	return Challenge{
		UserID:             userID,
		StartDate:          req.StartDate,
		TotalDays:          req.TotalDays,
		TrackSteps:         req.TrackSteps,
		StepsGoal:          req.StepsGoal,
		TrackWater:         req.TrackWater,
		WaterLiters:        req.WaterLiters,
		TrackDiet:          req.TrackDiet,
		TrackCalories:      req.TrackCalories,
		CaloriesGoal:       req.CaloriesGoal,
		CaloriesGoalType:   direction,
		TrackWeight:        req.TrackWeight,
		WeightGoal:         req.WeightGoal,
		TrackWorkout1:      req.TrackWorkout1,
		TrackWorkout2:      req.TrackWorkout2,
		WorkoutMinutes:     req.WorkoutMinutes,
		TrackReading:       req.TrackReading,
		ReadingPages:       req.ReadingPages,
		TrackProgressPhoto: req.TrackProgressPhoto,
		ProgressPhotoDays:  req.ProgressPhotoDays,
		TrackNoAlcohol:     req.TrackNoAlcohol,
		TrackMood:          req.TrackMood,
		TrackSleep:         req.TrackSleep,
		SleepGoalHours:     req.SleepGoalHours,
		TrackCycle:         req.TrackCycle,
		TrackSkincare:      req.TrackSkincare,
	}
}

// Apply copies every set field of req onto c.
func (req *UpdateChallengeRequest) Apply(c *Challenge) {
	setString(&c.StartDate, req.StartDate)
	setInt(&c.TotalDays, req.TotalDays)
	setBool(&c.TrackSteps, req.TrackSteps)
	setInt(&c.StepsGoal, req.StepsGoal)
	setBool(&c.TrackWater, req.TrackWater)
	setFloat(&c.WaterLiters, req.WaterLiters)
	setBool(&c.TrackDiet, req.TrackDiet)
	setBool(&c.TrackCalories, req.TrackCalories)
	setInt(&c.CaloriesGoal, req.CaloriesGoal)
	setString(&c.CaloriesGoalType, req.CaloriesGoalType)
	setBool(&c.TrackWeight, req.TrackWeight)
	setFloat(&c.WeightGoal, req.WeightGoal)
	setBool(&c.TrackWorkout1, req.TrackWorkout1)
	setBool(&c.TrackWorkout2, req.TrackWorkout2)
	setInt(&c.WorkoutMinutes, req.WorkoutMinutes)
	setBool(&c.TrackReading, req.TrackReading)
	setInt(&c.ReadingPages, req.ReadingPages)
	setBool(&c.TrackProgressPhoto, req.TrackProgressPhoto)
	setInt(&c.ProgressPhotoDays, req.ProgressPhotoDays)
	setBool(&c.TrackNoAlcohol, req.TrackNoAlcohol)
	setBool(&c.TrackMood, req.TrackMood)
	setBool(&c.TrackSleep, req.TrackSleep)
	setFloat(&c.SleepGoalHours, req.SleepGoalHours)
	setBool(&c.TrackCycle, req.TrackCycle)
	setBool(&c.TrackSkincare, req.TrackSkincare)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

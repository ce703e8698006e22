package validation

import (
	"strings"
	"testing"

	"github.com/arnold/hard75-api/internal/models"
)

func TestStruct_CreateChallenge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     models.CreateChallengeRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  models.CreateChallengeRequest{StartDate: "2024-06-01", TotalDays: 75},
		},
		{
			name:    "zero days",
			req:     models.CreateChallengeRequest{StartDate: "2024-06-01", TotalDays: 0},
			wantErr: "totalDays is required",
		},
		{
			name:    "bad date",
			req:     models.CreateChallengeRequest{StartDate: "06/01/2024", TotalDays: 75},
			wantErr: "startDate must be a YYYY-MM-DD date",
		},
		{
			name:    "bad calorie direction",
			req:     models.CreateChallengeRequest{StartDate: "2024-06-01", TotalDays: 75, CaloriesGoalType: "sideways"},
			wantErr: "caloriesGoalType must be 'above' or 'below'",
		},
		{
			name:    "negative goal",
			req:     models.CreateChallengeRequest{StartDate: "2024-06-01", TotalDays: 75, StepsGoal: -1},
			wantErr: "stepsGoal fails gte=0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Struct(tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestStruct_UpdateLog(t *testing.T) {
	t.Parallel()

	mood := 6
	flow := "spotting"
	err := Struct(models.UpdateLogRequest{MoodScore: &mood, CycleFlow: &flow})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "moodScore") || !strings.Contains(err.Error(), "cycleFlow") {
		t.Errorf("Expected both fields reported, got %q", err.Error())
	}

	ok := 3
	if err := Struct(models.UpdateLogRequest{MoodScore: &ok}); err != nil {
		t.Errorf("Expected valid mood, got %v", err)
	}
}

package database

import (
	"errors"
	"os"
	"testing"

	"github.com/arnold/hard75-api/internal/calendar"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	db, err := Open("file:store_test?mode=memory&cache=shared", false)
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)
	DB = db
	if err := Migrate(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newChallenge(t *testing.T, start string, totalDays int) *models.Challenge {
	t.Helper()

	c := models.Challenge{UserID: uuid.New(), StartDate: start, TotalDays: totalDays, TrackDiet: true}
	if err := DB.Create(&c).Error; err != nil {
		t.Fatalf("Failed to create challenge: %v", err)
	}
	return &c
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestLatestChallenge_None(t *testing.T) {
	if _, err := LatestChallenge(uuid.New()); !errors.Is(err, ErrNoChallenge) {
		t.Errorf("Expected ErrNoChallenge, got %v", err)
	}
}

func TestGetOrCreateLog_SameRowTwice(t *testing.T) {
	c := newChallenge(t, "2024-06-01", 75)

	first, err := GetOrCreateLog(c, "2024-06-10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := GetOrCreateLog(c, "2024-06-10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("Expected one row for the day, got %s and %s", first.ID, second.ID)
	}
}

func TestUpdateLog_OverlappingPartialUpdatesBothLand(t *testing.T) {
	c := newChallenge(t, "2024-06-01", 75)

	// Two writers read the same day before either writes.
	a, err := GetOrCreateLog(c, "2024-06-10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, err := GetOrCreateLog(c, "2024-06-10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	water := models.UpdateLogRequest{WaterLiters: floatPtr(3)}
	if _, err := UpdateLog(a, water.Changes()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	diet := true
	toggle := models.UpdateLogRequest{DietCompleted: &diet}
	stored, err := UpdateLog(b, toggle.Changes())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stored.Water() != 3 {
		t.Errorf("Expected water 3 to survive the diet toggle, got %v", stored.Water())
	}
	if !stored.DietCompleted {
		t.Error("Expected diet completed")
	}
}

func TestUpdateLog_HealthStepsNeverLower(t *testing.T) {
	c := newChallenge(t, "2024-06-01", 75)

	stale, err := GetOrCreateLog(c, "2024-06-10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A concurrent sync already stored more steps than the stale read shows.
	high := models.UpdateLogRequest{StepsCount: intPtr(9000)}
	if _, err := UpdateLog(stale, high.Changes()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	sync := models.HealthSyncRequest{Steps: intPtr(4000)}
	stored, err := UpdateLog(stale, sync.Changes(stale))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored.Steps() != 9000 {
		t.Errorf("Expected steps to stay 9000, got %d", stored.Steps())
	}

	sync = models.HealthSyncRequest{Steps: intPtr(12000)}
	stored, err = UpdateLog(stored, sync.Changes(stored))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored.Steps() != 12000 {
		t.Errorf("Expected steps raised to 12000, got %d", stored.Steps())
	}
}

func TestUpdateLog_ClearsColumns(t *testing.T) {
	c := newChallenge(t, "2024-06-01", 75)

	l, _ := GetOrCreateLog(c, "2024-06-10")
	weigh := models.UpdateLogRequest{CurrentWeight: floatPtr(81)}
	l, err := UpdateLog(l, weigh.Changes())
	if err != nil || !l.WeightLogged {
		t.Fatalf("Expected weight logged, got %+v (err %v)", l, err)
	}

	l, err = UpdateLog(l, map[string]interface{}{"CurrentWeight": nil, "WeightLogged": false})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if l.CurrentWeight != nil || l.WeightLogged {
		t.Errorf("Expected weight cleared, got %v / %v", l.CurrentWeight, l.WeightLogged)
	}
}

func TestAllLogs_NotCappedByPageLimit(t *testing.T) {
	c := newChallenge(t, "2023-01-01", 900)

	n := MaxLogLimit + 50
	logs := make([]models.DailyLog, n)
	for i := range logs {
		logs[i] = models.DailyLog{ChallengeID: c.ID, UserID: c.UserID, Date: calendar.AddDays(c.StartDate, i)}
	}
	if err := DB.CreateInBatches(&logs, 100).Error; err != nil {
		t.Fatalf("Failed to seed logs: %v", err)
	}

	all, err := AllLogs(c.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != n {
		t.Errorf("Expected %d logs, got %d", n, len(all))
	}
	if all[0].Date != c.StartDate {
		t.Errorf("Expected oldest first, got %s", all[0].Date)
	}

	page, err := RecentLogs(c.ID, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(page) != DefaultLogLimit {
		t.Errorf("Expected the default page of %d, got %d", DefaultLogLimit, len(page))
	}
}

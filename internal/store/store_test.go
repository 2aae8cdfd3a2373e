// ABOUTME: Tests for the collection store: CRUD, migration, and seeding.
// ABOUTME: Every test opens a real store in a temp directory.
package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmonteiro/ferro/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestOpenSeedsReferenceData(t *testing.T) {
	s := openTestStore(t)

	workouts, err := s.Workouts()
	require.NoError(t, err)
	if len(workouts) != 5 {
		t.Errorf("Expected 5 seeded workouts, got %d", len(workouts))
	}

	gyms, err := s.Gyms()
	require.NoError(t, err)
	if len(gyms) != 4 {
		t.Errorf("Expected 4 seeded gyms, got %d", len(gyms))
	}

	w, err := s.Workout("push-a")
	require.NoError(t, err)
	if w == nil || w.Name != "Push (Superior A)" {
		t.Errorf("Expected seeded push-a template, got %+v", w)
	}
	if len(w.Exercises) != 4 {
		t.Errorf("Expected 4 exercises in push-a, got %d", len(w.Exercises))
	}
}

func TestReopenDoesNotReseed(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)

	// Deleting a seeded record must survive a reopen; reseeding would
	// silently resurrect user deletions.
	require.NoError(t, s.DeleteWorkout("push-a"))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	w, err := s.Workout("push-a")
	require.NoError(t, err)
	if w != nil {
		t.Error("Deleted seed record came back after reopen")
	}

	workouts, err := s.Workouts()
	require.NoError(t, err)
	if len(workouts) != 4 {
		t.Errorf("Expected 4 workouts after delete and reopen, got %d", len(workouts))
	}
}

func TestAddDuplicateKey(t *testing.T) {
	s := openTestStore(t)

	w := models.NewWorkout("Treino X", models.WorkoutGym)
	require.NoError(t, s.AddWorkout(w))

	err := s.AddWorkout(w)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetByID(CollWorkouts, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// Typed accessors translate absence into a nil record.
	w, err := s.Workout("missing")
	require.NoError(t, err)
	if w != nil {
		t.Errorf("Expected nil workout, got %+v", w)
	}
}

func TestPutReplaces(t *testing.T) {
	s := openTestStore(t)

	w := models.NewWorkout("Antes", models.WorkoutGym)
	require.NoError(t, s.SaveWorkout(w))

	w.Name = "Depois"
	require.NoError(t, s.SaveWorkout(w))

	got, err := s.Workout(w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	if got.Name != "Depois" {
		t.Errorf("Name = %q, want %q", got.Name, "Depois")
	}

	workouts, err := s.Workouts()
	require.NoError(t, err)
	if len(workouts) != 6 {
		t.Errorf("Put must not duplicate: expected 6 workouts, got %d", len(workouts))
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := openTestStore(t)

	if err := s.Remove(CollLogs, "never-existed"); err != nil {
		t.Errorf("Remove of absent ID should be a no-op, got %v", err)
	}
}

func TestUnknownCollection(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetAll("bogus")
	if !errors.Is(err, ErrUnknownCollection) {
		t.Errorf("Expected ErrUnknownCollection, got %v", err)
	}
	if err := s.Put("bogus", "id", struct{}{}); !errors.Is(err, ErrUnknownCollection) {
		t.Errorf("Expected ErrUnknownCollection, got %v", err)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Clear(CollWorkouts))

	workouts, err := s.Workouts()
	require.NoError(t, err)
	if len(workouts) != 0 {
		t.Errorf("Expected empty collection after Clear, got %d", len(workouts))
	}

	// Other collections are untouched.
	gyms, err := s.Gyms()
	require.NoError(t, err)
	if len(gyms) != 4 {
		t.Errorf("Clear leaked into gyms: got %d", len(gyms))
	}
}

func TestLogsSortedByDateDesc(t *testing.T) {
	s := openTestStore(t)

	for _, date := range []string{"2026-02-01T10:00:00Z", "2026-03-01T10:00:00Z", "2026-01-01T10:00:00Z"} {
		require.NoError(t, s.SaveLog(&models.Log{ID: models.NewID(), Date: date, WorkoutName: "Treino"}))
	}

	logs, err := s.Logs()
	require.NoError(t, err)
	require.Len(t, logs, 3)
	if logs[0].Date[:7] != "2026-03" || logs[2].Date[:7] != "2026-01" {
		t.Errorf("Logs not sorted most recent first: %s, %s, %s", logs[0].Date, logs[1].Date, logs[2].Date)
	}
}

func TestProfileLazyDefault(t *testing.T) {
	s := openTestStore(t)

	// Wipe the seeded profile to simulate a pre-profile store.
	require.NoError(t, s.Clear(CollProfile))

	p, err := s.Profile()
	require.NoError(t, err)
	require.NotNil(t, p)
	if p.Name != "Atleta" || p.Goal != models.GoalHypertrophy {
		t.Errorf("Unexpected default profile: %+v", p)
	}

	// The default must have been persisted, not just synthesized.
	raw, err := s.GetByID(CollProfile, models.ProfileID)
	require.NoError(t, err)
	if len(raw) == 0 {
		t.Error("Default profile was not persisted")
	}
}

func TestSaveProfileForcesID(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveProfile(&models.Profile{ID: "rogue", Name: "Bruno"}))

	p, err := s.Profile()
	require.NoError(t, err)
	if p.ID != models.ProfileID {
		t.Errorf("Profile ID = %q, want %q", p.ID, models.ProfileID)
	}
	if p.Name != "Bruno" {
		t.Errorf("Name = %q, want %q", p.Name, "Bruno")
	}
}

func TestDailyStatsZeroRow(t *testing.T) {
	s := openTestStore(t)

	d, err := s.DailyStats("2026-06-01")
	require.NoError(t, err)
	require.NotNil(t, d)
	if d.Water != 0 || d.Date != "2026-06-01" {
		t.Errorf("Expected zero row for absent date, got %+v", d)
	}
}

func TestAddWaterAccumulates(t *testing.T) {
	s := openTestStore(t)

	_, err := s.AddWater("2026-06-01", 250)
	require.NoError(t, err)
	d, err := s.AddWater("2026-06-01", 500)
	require.NoError(t, err)
	if d.Water != 750 {
		t.Errorf("Water = %d, want 750", d.Water)
	}

	// Another day starts from zero.
	d2, err := s.AddWater("2026-06-02", 100)
	require.NoError(t, err)
	if d2.Water != 100 {
		t.Errorf("Water = %d, want 100", d2.Water)
	}
}

func TestMealsOnNormalizesBothShapes(t *testing.T) {
	s := openTestStore(t)

	// Legacy shape with flat macros.
	require.NoError(t, s.SaveNutritionLog(&models.NutritionLog{
		ID:       "legacy",
		Date:     "2026-06-01T12:00:00Z",
		Calories: 600,
		Foods:    []string{"arroz", "frango"},
		Protein:  40,
		Carbs:    70,
		Fats:     15,
	}))
	// Itemized shape with nested macros.
	require.NoError(t, s.SaveNutritionLog(&models.NutritionLog{
		ID:       "itemized",
		Date:     "2026-06-01T19:00:00Z",
		Calories: 450,
		Items:    []models.FoodItem{{Name: "ovo", Weight: 120}},
		Macros:   &models.Macros{Protein: 25, Carbs: 10, Fat: 30},
	}))
	// Different day, must not appear.
	require.NoError(t, s.SaveNutritionLog(&models.NutritionLog{
		ID:   "other-day",
		Date: "2026-06-02T08:00:00Z",
	}))

	meals, err := s.MealsOn("2026-06-01")
	require.NoError(t, err)
	require.Len(t, meals, 2)

	for _, m := range meals {
		switch m.ID {
		case "legacy":
			if m.Macros.Protein != 40 || m.Macros.Fat != 15 {
				t.Errorf("Legacy macros wrong: %+v", m.Macros)
			}
		case "itemized":
			if m.Macros.Protein != 25 {
				t.Errorf("Itemized macros wrong: %+v", m.Macros)
			}
			if len(m.Foods) != 1 || m.Foods[0] != "ovo" {
				t.Errorf("Expected foods derived from items, got %v", m.Foods)
			}
		default:
			t.Errorf("Unexpected meal %q", m.ID)
		}
	}
}

func TestWeightHistorySortedAsc(t *testing.T) {
	s := openTestStore(t)

	for _, e := range []*models.WeightEntry{
		{Date: "2026-03-01", Weight: 82},
		{Date: "2026-01-01", Weight: 84},
		{Date: "2026-02-01", Weight: 83},
	} {
		require.NoError(t, s.AddWeight(e))
	}

	entries, err := s.WeightHistory()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	if entries[0].Date != "2026-01-01" || entries[2].Date != "2026-03-01" {
		t.Errorf("Weight history not sorted oldest first: %v", entries)
	}
	for _, e := range entries {
		if e.ID == "" {
			t.Error("AddWeight should assign an ID")
		}
	}
}

func TestDeleteWorkoutKeepsLogs(t *testing.T) {
	s := openTestStore(t)

	log := &models.Log{ID: models.NewID(), Date: "2026-05-01T10:00:00Z", WorkoutID: "push-a", WorkoutName: "Push (Superior A)"}
	require.NoError(t, s.SaveLog(log))

	require.NoError(t, s.DeleteWorkout("push-a"))

	got, err := s.Log(log.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	if got.WorkoutName != "Push (Superior A)" {
		t.Errorf("Log lost its workout name: %+v", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)

	require.NoError(t, src.SaveLog(&models.Log{ID: "l1", Date: "2026-05-01T10:00:00Z", WorkoutName: "Push"}))
	require.NoError(t, src.AddWeight(&models.WeightEntry{ID: "w1", Date: "2026-05-01", Weight: 82.5}))
	_, err := src.AddWater("2026-05-01", 500)
	require.NoError(t, err)

	dump, err := src.ExportAll()
	require.NoError(t, err)
	if dump.Version != schemaVersion {
		t.Errorf("Export version = %d, want %d", dump.Version, schemaVersion)
	}

	dst := openTestStore(t)
	require.NoError(t, dst.Import(dump))

	logs, err := dst.Logs()
	require.NoError(t, err)
	require.Len(t, logs, 1)

	weights, err := dst.WeightHistory()
	require.NoError(t, err)
	require.Len(t, weights, 1)

	// Importing into an already seeded store must not duplicate seeds.
	workouts, err := dst.Workouts()
	require.NoError(t, err)
	if len(workouts) != 5 {
		t.Errorf("Import duplicated seeds: got %d workouts", len(workouts))
	}

	// Round trip is idempotent.
	require.NoError(t, dst.Import(dump))
	logs, err = dst.Logs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

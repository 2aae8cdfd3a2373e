// ABOUTME: Reconciles the local store with the per-user cloud tables.
// ABOUTME: Full pull (cloud wins per ID) then full push (bulk upsert).
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bmonteiro/ferro/internal/models"
	"github.com/bmonteiro/ferro/internal/remote"
	"github.com/bmonteiro/ferro/internal/store"
)

// RemoteStore is what the engine needs from the cloud: scoped reads, bulk
// upserts, and the session check that gates every run.
type RemoteStore interface {
	Select(ctx context.Context, table string, filters map[string]string, out any) error
	Upsert(ctx context.Context, table string, rows any) error
	CurrentUser(ctx context.Context) (*remote.User, error)
}

// CollectionError records one collection failing during a phase. Sibling
// collections in the same phase still run.
type CollectionError struct {
	Collection string
	Phase      string // "pull" or "push"
	Err        error
}

func (e CollectionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Phase, e.Collection, e.Err)
}

// Report summarizes one sync run.
type Report struct {
	Skipped  bool // no authenticated session; nothing was attempted
	Pulled   map[string]int
	Pushed   map[string]int
	Failures []CollectionError
}

// OK reports whether the run completed with every collection reconciled.
func (r *Report) OK() bool {
	return !r.Skipped && len(r.Failures) == 0
}

// Engine runs the pull-then-push reconciliation. There is no conflict
// detection: pull overwrites local records that share an ID with a cloud
// row, push upserts everything local. Callers should not mutate the synced
// collections while a run is in flight.
type Engine struct {
	store  *store.Store
	remote RemoteStore
	log    *slog.Logger
}

// New creates an engine. The logger receives per-collection failures.
func New(s *store.Store, r RemoteStore, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{store: s, remote: r, log: log}
}

// Run executes one full sync. With no session it returns a skipped report
// and no error. Per-collection failures are collected in the report rather
// than aborting siblings; the only hard error is the session check itself.
// Two consecutive runs with no intervening changes leave both stores
// unchanged.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	user, err := e.remote.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if user == nil {
		e.log.Debug("sync skipped, no session")
		return &Report{Skipped: true}, nil
	}

	report := &Report{
		Pulled: make(map[string]int),
		Pushed: make(map[string]int),
	}

	e.pull(ctx, user.ID, report)
	e.push(ctx, user.ID, report)

	if len(report.Failures) > 0 {
		e.log.Warn("sync finished with failures", "failures", len(report.Failures))
	} else {
		e.log.Info("sync completed",
			"pulled", total(report.Pulled), "pushed", total(report.Pushed))
	}
	return report, nil
}

func total(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

func (e *Engine) fail(report *Report, phase, collection string, err error) {
	e.log.Warn("sync collection failed", "phase", phase, "collection", collection, "error", err)
	report.Failures = append(report.Failures, CollectionError{
		Collection: collection,
		Phase:      phase,
		Err:        err,
	})
}

// pull copies cloud state into the local store, in a fixed collection
// order. Cloud rows overwrite local records with the same ID; local-only
// records are untouched.
func (e *Engine) pull(ctx context.Context, userID string, report *Report) {
	if n, err := e.pullProfile(ctx, userID); err != nil {
		e.fail(report, "pull", store.CollProfile, err)
	} else {
		report.Pulled[store.CollProfile] = n
	}

	if n, err := e.pullWorkouts(ctx, userID); err != nil {
		e.fail(report, "pull", store.CollWorkouts, err)
	} else {
		report.Pulled[store.CollWorkouts] = n
	}

	if n, err := e.pullLogs(ctx, userID); err != nil {
		e.fail(report, "pull", store.CollLogs, err)
	} else {
		report.Pulled[store.CollLogs] = n
	}

	if n, err := e.pullWeightHistory(ctx, userID); err != nil {
		e.fail(report, "pull", store.CollWeightHistory, err)
	} else {
		report.Pulled[store.CollWeightHistory] = n
	}

	if n, err := e.pullNutritionLogs(ctx, userID); err != nil {
		e.fail(report, "pull", store.CollNutritionLogs, err)
	} else {
		report.Pulled[store.CollNutritionLogs] = n
	}
}

func (e *Engine) pullProfile(ctx context.Context, userID string) (int, error) {
	var rows []profileRow
	if err := e.remote.Select(ctx, tableProfiles, map[string]string{"id": userID}, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	p := rows[0].toLocal()
	if err := e.store.Put(store.CollProfile, p.ID, p); err != nil {
		return 0, err
	}
	return 1, nil
}

func (e *Engine) pullWorkouts(ctx context.Context, userID string) (int, error) {
	var rows []workoutRow
	if err := e.remote.Select(ctx, tableWorkouts, map[string]string{"user_id": userID}, &rows); err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		w := row.Data
		if w.ID == "" {
			w.ID = row.ID
		}
		if err := e.store.Put(store.CollWorkouts, w.ID, &w); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (e *Engine) pullLogs(ctx context.Context, userID string) (int, error) {
	var rows []logRow
	if err := e.remote.Select(ctx, tableLogs, map[string]string{"user_id": userID}, &rows); err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		l := row.toLocal()
		if err := e.store.Put(store.CollLogs, l.ID, l); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (e *Engine) pullWeightHistory(ctx context.Context, userID string) (int, error) {
	var rows []weightRow
	if err := e.remote.Select(ctx, tableWeightHistory, map[string]string{"user_id": userID}, &rows); err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		entry := &models.WeightEntry{ID: row.ID, Date: row.Date, Weight: row.Weight}
		if err := e.store.Put(store.CollWeightHistory, entry.ID, entry); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (e *Engine) pullNutritionLogs(ctx context.Context, userID string) (int, error) {
	var rows []nutritionRow
	if err := e.remote.Select(ctx, tableNutrition, map[string]string{"user_id": userID}, &rows); err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		l := row.toLocal()
		if err := e.store.Put(store.CollNutritionLogs, l.ID, l); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// push upserts local state to the cloud. Weight history is pull-only:
// entries are created on the backend with server-assigned IDs, and pushing
// locally generated ones would collide. Photos, gyms, and daily stats never
// leave the device.
func (e *Engine) push(ctx context.Context, userID string, report *Report) {
	if n, err := e.pushProfile(ctx, userID); err != nil {
		e.fail(report, "push", store.CollProfile, err)
	} else {
		report.Pushed[store.CollProfile] = n
	}

	if n, err := e.pushWorkouts(ctx, userID); err != nil {
		e.fail(report, "push", store.CollWorkouts, err)
	} else {
		report.Pushed[store.CollWorkouts] = n
	}

	if n, err := e.pushLogs(ctx, userID); err != nil {
		e.fail(report, "push", store.CollLogs, err)
	} else {
		report.Pushed[store.CollLogs] = n
	}

	if n, err := e.pushNutritionLogs(ctx, userID); err != nil {
		e.fail(report, "push", store.CollNutritionLogs, err)
	} else {
		report.Pushed[store.CollNutritionLogs] = n
	}
}

func (e *Engine) pushProfile(ctx context.Context, userID string) (int, error) {
	p, err := getProfile(e.store)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, nil
	}
	if err := e.remote.Upsert(ctx, tableProfiles, []profilePushRow{profileToRow(userID, p)}); err != nil {
		return 0, err
	}
	return 1, nil
}

// getProfile reads the raw profile without triggering default synthesis;
// pushing a profile the user never touched would be noise.
func getProfile(s *store.Store) (*models.Profile, error) {
	raw, err := s.GetAll(store.CollProfile)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var p models.Profile
	if err := json.Unmarshal(raw[0], &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (e *Engine) pushWorkouts(ctx context.Context, userID string) (int, error) {
	workouts, err := e.store.Workouts()
	if err != nil {
		return 0, err
	}
	if len(workouts) == 0 {
		return 0, nil
	}
	rows := make([]workoutRow, 0, len(workouts))
	for _, w := range workouts {
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		rows = append(rows, workoutRow{
			ID:        w.ID,
			UserID:    userID,
			Name:      w.Name,
			Data:      *w,
			UpdatedAt: nowRFC3339(),
		})
	}
	if err := e.remote.Upsert(ctx, tableWorkouts, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (e *Engine) pushLogs(ctx context.Context, userID string) (int, error) {
	logs, err := e.store.Logs()
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, nil
	}
	rows := make([]logRow, 0, len(logs))
	for _, l := range logs {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		workoutID := l.WorkoutID
		if workoutID == "" {
			workoutID = "unknown"
		}
		rows = append(rows, logRow{
			ID:          l.ID,
			UserID:      userID,
			Date:        l.Date,
			WorkoutID:   workoutID,
			WorkoutName: l.WorkoutName,
			Duration:    l.Duration,
			LogData:     l.Data,
			CreatedAt:   nowRFC3339(),
		})
	}
	if err := e.remote.Upsert(ctx, tableLogs, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (e *Engine) pushNutritionLogs(ctx context.Context, userID string) (int, error) {
	logs, err := e.store.NutritionLogs()
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, nil
	}
	rows := make([]nutritionRow, 0, len(logs))
	for _, l := range logs {
		entry := l.Normalize()
		macros := entry.Macros
		items := l.Items
		if items == nil {
			items = []models.FoodItem{}
		}
		rows = append(rows, nutritionRow{
			ID:        l.ID,
			UserID:    userID,
			Date:      l.Date,
			MealName:  entry.Meal,
			Calories:  entry.Calories,
			Macros:    &macros,
			Items:     items,
			CreatedAt: nowRFC3339(),
		})
	}
	if err := e.remote.Upsert(ctx, tableNutrition, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

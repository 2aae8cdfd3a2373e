// ABOUTME: Full-store JSON export and import across all collections.
// ABOUTME: Import upserts, so restoring into a seeded store never duplicates.
package store

import (
	"fmt"

	"github.com/bmonteiro/ferro/internal/models"
)

// ExportData is the portable dump of every collection.
type ExportData struct {
	Version       int                    `json:"version"`
	Workouts      []*models.Workout      `json:"workouts"`
	Logs          []*models.Log          `json:"logs"`
	Gyms          []*models.Gym          `json:"gyms"`
	Profile       *models.Profile        `json:"profile,omitempty"`
	NutritionLogs []*models.NutritionLog `json:"nutrition_logs"`
	DailyStats    []*models.DailyStats   `json:"daily_stats"`
	WeightHistory []*models.WeightEntry  `json:"weight_history"`
	Photos        []*models.Photo        `json:"photos"`
}

// ExportAll reads every collection into an ExportData.
func (s *Store) ExportAll() (*ExportData, error) {
	data := &ExportData{Version: schemaVersion}
	var err error

	if data.Workouts, err = s.Workouts(); err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	if data.Logs, err = s.Logs(); err != nil {
		return nil, fmt.Errorf("export logs: %w", err)
	}
	if data.Gyms, err = s.Gyms(); err != nil {
		return nil, fmt.Errorf("export gyms: %w", err)
	}
	if data.Profile, err = getOne[models.Profile](s, CollProfile, models.ProfileID); err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	if data.NutritionLogs, err = s.NutritionLogs(); err != nil {
		return nil, fmt.Errorf("export nutrition logs: %w", err)
	}
	rawStats, err := s.GetAll(CollDailyStats)
	if err != nil {
		return nil, fmt.Errorf("export daily stats: %w", err)
	}
	if data.DailyStats, err = unmarshalAll[models.DailyStats](rawStats); err != nil {
		return nil, fmt.Errorf("export daily stats: %w", err)
	}
	if data.WeightHistory, err = s.WeightHistory(); err != nil {
		return nil, fmt.Errorf("export weight history: %w", err)
	}
	if data.Photos, err = s.Photos(); err != nil {
		return nil, fmt.Errorf("export photos: %w", err)
	}

	return data, nil
}

// Import upserts every record from an ExportData into the store.
func (s *Store) Import(data *ExportData) error {
	for _, w := range data.Workouts {
		if err := s.SaveWorkout(w); err != nil {
			return err
		}
	}
	for _, l := range data.Logs {
		if err := s.SaveLog(l); err != nil {
			return err
		}
	}
	for _, g := range data.Gyms {
		if err := s.Put(CollGyms, g.ID, g); err != nil {
			return err
		}
	}
	if data.Profile != nil {
		if err := s.SaveProfile(data.Profile); err != nil {
			return err
		}
	}
	for _, n := range data.NutritionLogs {
		if err := s.SaveNutritionLog(n); err != nil {
			return err
		}
	}
	for _, d := range data.DailyStats {
		if err := s.Put(CollDailyStats, d.Date, d); err != nil {
			return err
		}
	}
	for _, e := range data.WeightHistory {
		if err := s.SaveWeight(e); err != nil {
			return err
		}
	}
	for _, p := range data.Photos {
		if err := s.Put(CollPhotos, p.ID, p); err != nil {
			return err
		}
	}
	return nil
}

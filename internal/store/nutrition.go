// ABOUTME: Typed accessors for nutrition logs and per-day water stats.
package store

import (
	"sort"
	"strings"

	"github.com/bmonteiro/ferro/internal/models"
)

// NutritionLogs returns every logged meal, most recent first. Records are
// returned as stored; call Normalize on each before computing totals.
func (s *Store) NutritionLogs() ([]*models.NutritionLog, error) {
	raw, err := s.GetAll(CollNutritionLogs)
	if err != nil {
		return nil, err
	}
	logs, err := unmarshalAll[models.NutritionLog](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
	return logs, nil
}

// MealsOn returns normalized meals for one calendar day (YYYY-MM-DD).
func (s *Store) MealsOn(date string) ([]models.MealEntry, error) {
	logs, err := s.NutritionLogs()
	if err != nil {
		return nil, err
	}
	var meals []models.MealEntry
	for _, l := range logs {
		if strings.HasPrefix(l.Date, date) {
			meals = append(meals, l.Normalize())
		}
	}
	return meals, nil
}

// SaveNutritionLog inserts or replaces a meal log.
func (s *Store) SaveNutritionLog(n *models.NutritionLog) error {
	return s.Put(CollNutritionLogs, n.ID, n)
}

// DeleteNutritionLog removes a meal log.
func (s *Store) DeleteNutritionLog(id string) error {
	return s.Remove(CollNutritionLogs, id)
}

// DailyStats returns the stats row for a date, or a zero row when absent.
func (s *Store) DailyStats(date string) (*models.DailyStats, error) {
	d, err := getOne[models.DailyStats](s, CollDailyStats, date)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = &models.DailyStats{Date: date}
	}
	return d, nil
}

// AddWater increments the water counter for a date and persists the row.
func (s *Store) AddWater(date string, ml int) (*models.DailyStats, error) {
	d, err := s.DailyStats(date)
	if err != nil {
		return nil, err
	}
	d.Water += ml
	if err := s.Put(CollDailyStats, d.Date, d); err != nil {
		return nil, err
	}
	return d, nil
}

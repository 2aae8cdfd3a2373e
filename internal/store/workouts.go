// ABOUTME: Typed accessors for workout templates and gyms.
// ABOUTME: Thin wrappers over the generic collection operations.
package store

import (
	"sort"
	"strings"

	"github.com/bmonteiro/ferro/internal/models"
)

// Workouts returns every workout template, sorted by name.
func (s *Store) Workouts() ([]*models.Workout, error) {
	raw, err := s.GetAll(CollWorkouts)
	if err != nil {
		return nil, err
	}
	workouts, err := unmarshalAll[models.Workout](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Name < workouts[j].Name
	})
	return workouts, nil
}

// Workout returns a template by ID, or nil when absent.
func (s *Store) Workout(id string) (*models.Workout, error) {
	return getOne[models.Workout](s, CollWorkouts, id)
}

// AddWorkout inserts a new template; ErrDuplicateKey if the ID exists.
func (s *Store) AddWorkout(w *models.Workout) error {
	return s.Add(CollWorkouts, w.ID, w)
}

// SaveWorkout inserts or replaces a template.
func (s *Store) SaveWorkout(w *models.Workout) error {
	return s.Put(CollWorkouts, w.ID, w)
}

// DeleteWorkout removes a template. Logs referencing it are kept; history
// stays meaningful through Log.WorkoutName.
func (s *Store) DeleteWorkout(id string) error {
	return s.Remove(CollWorkouts, id)
}

// Gyms returns the gym lookup list, sorted by name.
func (s *Store) Gyms() ([]*models.Gym, error) {
	raw, err := s.GetAll(CollGyms)
	if err != nil {
		return nil, err
	}
	gyms, err := unmarshalAll[models.Gym](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(gyms, func(i, j int) bool {
		return strings.ToLower(gyms[i].Name) < strings.ToLower(gyms[j].Name)
	})
	return gyms, nil
}

// AddGym inserts a gym into the lookup list.
func (s *Store) AddGym(g *models.Gym) error {
	return s.Add(CollGyms, g.ID, g)
}

// ABOUTME: First-run reference data: sample workouts, gyms, default profile.
// ABOUTME: Inserted once when the seed collections are first created.
package store

import "github.com/bmonteiro/ferro/internal/models"

func seedWorkouts() []*models.Workout {
	return []*models.Workout{
		{
			ID:   "push-a",
			Name: "Push (Superior A)",
			Type: models.WorkoutGym,
			Exercises: []models.Exercise{
				{Name: "Supino Reto", Sets: 3, Reps: "8-12"},
				{Name: "Desenvolvimento Halter", Sets: 3, Reps: "8-12"},
				{Name: "Tríceps Corda", Sets: 3, Reps: "12-15"},
				{Name: "Elevação Lateral", Sets: 4, Reps: "12-15"},
			},
		},
		{
			ID:   "pull-b",
			Name: "Pull (Superior B)",
			Type: models.WorkoutGym,
			Exercises: []models.Exercise{
				{Name: "Barra Fixa", Sets: 3, Reps: "Falha"},
				{Name: "Remada Curvada", Sets: 3, Reps: "8-12"},
				{Name: "Rosca Direta", Sets: 3, Reps: "10-12"},
				{Name: "Face Pull", Sets: 3, Reps: "15-20"},
			},
		},
		{
			ID:   "leg-day",
			Name: "Leg Day",
			Type: models.WorkoutGym,
			Exercises: []models.Exercise{
				{Name: "Agachamento Livre", Sets: 4, Reps: "6-8"},
				{Name: "Leg Press", Sets: 3, Reps: "10-12"},
				{Name: "Stiff", Sets: 3, Reps: "10-12"},
				{Name: "Cadeira Extensora", Sets: 3, Reps: "12-15"},
			},
		},
		{
			ID:     "bjj-tech",
			Name:   "Aula Técnica",
			Type:   models.WorkoutBJJ,
			Fields: []string{"Técnicas", "Observações"},
		},
		{
			ID:     "bjj-roll",
			Name:   "Roll Livre",
			Type:   models.WorkoutBJJ,
			Fields: []string{"Rounds", "Parceiros", "Intensidade"},
		},
	}
}

func seedGyms() []*models.Gym {
	return []*models.Gym{
		{ID: "blue-fit", Name: "Blue Fit"},
		{ID: "smart-fit", Name: "Smart Fit"},
		{ID: "building", Name: "Academia do Prédio"},
		{ID: "home", Name: "Casa"},
	}
}

// seed inserts reference records. Per-record failures (a duplicate key from
// a partially seeded store) are swallowed so one bad record never blocks
// the rest.
func (s *Store) seed() {
	for _, w := range seedWorkouts() {
		_ = s.Add(CollWorkouts, w.ID, w)
	}
	for _, g := range seedGyms() {
		_ = s.Add(CollGyms, g.ID, g)
	}
	p := models.DefaultProfile()
	_ = s.Add(CollProfile, p.ID, p)
}

// ABOUTME: Typed accessors for the weight history series and progress photos.
package store

import (
	"sort"

	"github.com/bmonteiro/ferro/internal/models"
)

// WeightHistory returns the body weight series, oldest first.
func (s *Store) WeightHistory() ([]*models.WeightEntry, error) {
	raw, err := s.GetAll(CollWeightHistory)
	if err != nil {
		return nil, err
	}
	entries, err := unmarshalAll[models.WeightEntry](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// AddWeight appends an entry to the weight series.
func (s *Store) AddWeight(e *models.WeightEntry) error {
	if e.ID == "" {
		e.ID = models.NewID()
	}
	return s.Add(CollWeightHistory, e.ID, e)
}

// SaveWeight inserts or replaces a weight entry (used by sync pull).
func (s *Store) SaveWeight(e *models.WeightEntry) error {
	return s.Put(CollWeightHistory, e.ID, e)
}

// Photos returns progress photos, most recent first. Payloads are data-URI
// strings and can be large; callers should not hold many at once.
func (s *Store) Photos() ([]*models.Photo, error) {
	raw, err := s.GetAll(CollPhotos)
	if err != nil {
		return nil, err
	}
	photos, err := unmarshalAll[models.Photo](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].Date > photos[j].Date
	})
	return photos, nil
}

// AddPhoto stores a progress photo.
func (s *Store) AddPhoto(p *models.Photo) error {
	if p.ID == "" {
		p.ID = models.NewID()
	}
	return s.Add(CollPhotos, p.ID, p)
}

// DeletePhoto removes a photo.
func (s *Store) DeletePhoto(id string) error {
	return s.Remove(CollPhotos, id)
}

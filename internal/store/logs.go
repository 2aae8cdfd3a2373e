// ABOUTME: Typed accessors for completed session logs.
package store

import (
	"sort"

	"github.com/bmonteiro/ferro/internal/models"
)

// Logs returns every session log, most recent first.
func (s *Store) Logs() ([]*models.Log, error) {
	raw, err := s.GetAll(CollLogs)
	if err != nil {
		return nil, err
	}
	logs, err := unmarshalAll[models.Log](raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
	return logs, nil
}

// Log returns one session log by ID, or nil when absent.
func (s *Store) Log(id string) (*models.Log, error) {
	return getOne[models.Log](s, CollLogs, id)
}

// SaveLog inserts or replaces a session log.
func (s *Store) SaveLog(l *models.Log) error {
	return s.Put(CollLogs, l.ID, l)
}

// DeleteLog removes a session log.
func (s *Store) DeleteLog(id string) error {
	return s.Remove(CollLogs, id)
}

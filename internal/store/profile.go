// ABOUTME: Singleton profile accessor with lazy default creation.
// ABOUTME: A fresh install reads a synthesized profile, persisted on first access.
package store

import "github.com/bmonteiro/ferro/internal/models"

// Profile returns the singleton profile. When no profile has ever been
// written (fresh install, or a migration from a pre-profile schema), a
// default is synthesized and persisted before returning, so callers never
// see a nil profile.
func (s *Store) Profile() (*models.Profile, error) {
	p, err := getOne[models.Profile](s, CollProfile, models.ProfileID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = models.DefaultProfile()
	if err := s.Put(CollProfile, p.ID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SaveProfile replaces the singleton profile. The ID is forced to the fixed
// profile key regardless of what the caller set.
func (s *Store) SaveProfile(p *models.Profile) error {
	p.ID = models.ProfileID
	return s.Put(CollProfile, p.ID, p)
}

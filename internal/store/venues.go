package store

import (
	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// VenuePatch is a partial update; nil fields are left untouched.
type VenuePatch struct {
	Name        *string
	Description *string
	Capacity    *int
	Available   *bool
}

func (s *Store) CreateVenue(venue models.Venue) models.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venueID++
	venue.ID = s.venueID
	s.venues[venue.ID] = venue
	return venue
}

func (s *Store) GetVenue(id int) (models.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	venue, ok := s.venues[id]
	return venue, ok
}

func (s *Store) UpdateVenue(id int, patch VenuePatch) (models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	venue, ok := s.venues[id]
	if !ok {
		return models.Venue{}, apperrors.NotFound("Venue not found")
	}
	if patch.Name != nil {
		venue.Name = *patch.Name
	}
	if patch.Description != nil {
		venue.Description = *patch.Description
	}
	if patch.Capacity != nil {
		venue.Capacity = *patch.Capacity
	}
	if patch.Available != nil {
		venue.Available = *patch.Available
	}
	s.venues[id] = venue
	return venue, nil
}

func (s *Store) ListVenues() []models.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Venue, 0, len(s.venues))
	for _, venue := range s.venues {
		out = append(out, venue)
	}
	return sortByID(out, func(v models.Venue) int { return v.ID })
}

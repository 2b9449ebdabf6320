package store

import (
	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// ClassPatch is a partial update; nil fields are left untouched.
type ClassPatch struct {
	Name            *string
	SportCategoryID *int
	Description     *string
	AgeGroup        *string
	Capacity        *int
	InstructorID    *int
	VenueID         *int
	Price           *int
	Active          *bool
}

// CreateClass inserts a class after checking its instructor, sport category
// and (when set) venue references.
func (s *Store) CreateClass(class models.Class) (models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sportCategories[class.SportCategoryID]; !ok {
		return models.Class{}, apperrors.NotFound("Sport category not found")
	}
	if _, ok := s.instructors[class.InstructorID]; !ok {
		return models.Class{}, apperrors.NotFound("Instructor not found")
	}
	if class.VenueID != nil {
		if _, ok := s.venues[*class.VenueID]; !ok {
			return models.Class{}, apperrors.NotFound("Venue not found")
		}
	}
	s.classID++
	class.ID = s.classID
	s.classes[class.ID] = class
	return class, nil
}

func (s *Store) GetClass(id int) (models.Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	class, ok := s.classes[id]
	return class, ok
}

func (s *Store) UpdateClass(id int, patch ClassPatch) (models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	class, ok := s.classes[id]
	if !ok {
		return models.Class{}, apperrors.NotFound("Class not found")
	}
	if patch.Name != nil {
		class.Name = *patch.Name
	}
	if patch.SportCategoryID != nil {
		if _, ok := s.sportCategories[*patch.SportCategoryID]; !ok {
			return models.Class{}, apperrors.NotFound("Sport category not found")
		}
		class.SportCategoryID = *patch.SportCategoryID
	}
	if patch.Description != nil {
		class.Description = *patch.Description
	}
	if patch.AgeGroup != nil {
		class.AgeGroup = *patch.AgeGroup
	}
	if patch.Capacity != nil {
		class.Capacity = *patch.Capacity
	}
	if patch.InstructorID != nil {
		if _, ok := s.instructors[*patch.InstructorID]; !ok {
			return models.Class{}, apperrors.NotFound("Instructor not found")
		}
		class.InstructorID = *patch.InstructorID
	}
	if patch.VenueID != nil {
		if _, ok := s.venues[*patch.VenueID]; !ok {
			return models.Class{}, apperrors.NotFound("Venue not found")
		}
		class.VenueID = patch.VenueID
	}
	if patch.Price != nil {
		class.Price = *patch.Price
	}
	if patch.Active != nil {
		class.Active = *patch.Active
	}
	s.classes[id] = class
	return class, nil
}

// ListClasses returns classes in creation order, optionally filtered by
// sport category.
func (s *Store) ListClasses(sportCategoryID *int) []models.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Class, 0, len(s.classes))
	for _, class := range s.classes {
		if sportCategoryID != nil && class.SportCategoryID != *sportCategoryID {
			continue
		}
		out = append(out, class)
	}
	return sortByID(out, func(c models.Class) int { return c.ID })
}

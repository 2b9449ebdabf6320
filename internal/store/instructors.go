package store

import (
	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// InstructorPatch is a partial update; nil fields are left untouched.
type InstructorPatch struct {
	SportCategoryID *int
	Bio             *string
	Specialties     *[]string
	YearsExperience *int
	Availability    *[]models.Weekday
	Status          *models.InstructorStatus
	LeaveUntil      *models.Date
}

// CreateInstructor inserts an instructor profile after checking that the
// referenced user and sport category exist.
func (s *Store) CreateInstructor(instructor models.Instructor) (models.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[instructor.UserID]; !ok {
		return models.Instructor{}, apperrors.NotFound("User not found")
	}
	if _, ok := s.sportCategories[instructor.SportCategoryID]; !ok {
		return models.Instructor{}, apperrors.NotFound("Sport category not found")
	}
	if instructor.Status == "" {
		instructor.Status = models.InstructorAvailable
	}
	s.instructorID++
	instructor.ID = s.instructorID
	s.instructors[instructor.ID] = instructor
	return instructor, nil
}

func (s *Store) GetInstructor(id int) (models.Instructor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	instructor, ok := s.instructors[id]
	return instructor, ok
}

func (s *Store) GetInstructorByUserID(userID int) (models.Instructor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, instructor := range s.instructors {
		if instructor.UserID == userID {
			return instructor, true
		}
	}
	return models.Instructor{}, false
}

func (s *Store) UpdateInstructor(id int, patch InstructorPatch) (models.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	instructor, ok := s.instructors[id]
	if !ok {
		return models.Instructor{}, apperrors.NotFound("Instructor not found")
	}
	if patch.SportCategoryID != nil {
		if _, ok := s.sportCategories[*patch.SportCategoryID]; !ok {
			return models.Instructor{}, apperrors.NotFound("Sport category not found")
		}
		instructor.SportCategoryID = *patch.SportCategoryID
	}
	if patch.Bio != nil {
		instructor.Bio = *patch.Bio
	}
	if patch.Specialties != nil {
		instructor.Specialties = *patch.Specialties
	}
	if patch.YearsExperience != nil {
		instructor.YearsExperience = *patch.YearsExperience
	}
	if patch.Availability != nil {
		instructor.Availability = *patch.Availability
	}
	if patch.Status != nil {
		instructor.Status = *patch.Status
	}
	if patch.LeaveUntil != nil {
		instructor.LeaveUntil = patch.LeaveUntil
	}
	s.instructors[id] = instructor
	return instructor, nil
}

// ListInstructors returns instructors in creation order, optionally filtered
// by sport category.
func (s *Store) ListInstructors(sportCategoryID *int) []models.Instructor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Instructor, 0, len(s.instructors))
	for _, instructor := range s.instructors {
		if sportCategoryID != nil && instructor.SportCategoryID != *sportCategoryID {
			continue
		}
		out = append(out, instructor)
	}
	return sortByID(out, func(i models.Instructor) int { return i.ID })
}

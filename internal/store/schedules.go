package store

import (
	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// SchedulePatch is a partial update; nil fields are left untouched.
type SchedulePatch struct {
	DayOfWeek *models.Weekday
	StartTime *string
	EndTime   *string
	Recurring *bool
}

// CreateSchedule inserts a weekly schedule slot after checking its class.
func (s *Store) CreateSchedule(schedule models.Schedule) (models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.classes[schedule.ClassID]; !ok {
		return models.Schedule{}, apperrors.NotFound("Class not found")
	}
	s.scheduleID++
	schedule.ID = s.scheduleID
	s.schedules[schedule.ID] = schedule
	return schedule, nil
}

func (s *Store) GetSchedule(id int) (models.Schedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	schedule, ok := s.schedules[id]
	return schedule, ok
}

func (s *Store) UpdateSchedule(id int, patch SchedulePatch) (models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	schedule, ok := s.schedules[id]
	if !ok {
		return models.Schedule{}, apperrors.NotFound("Schedule not found")
	}
	if patch.DayOfWeek != nil {
		schedule.DayOfWeek = *patch.DayOfWeek
	}
	if patch.StartTime != nil {
		schedule.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		schedule.EndTime = *patch.EndTime
	}
	if patch.Recurring != nil {
		schedule.Recurring = *patch.Recurring
	}
	s.schedules[id] = schedule
	return schedule, nil
}

// ListSchedules returns schedules in creation order, optionally filtered by
// class.
func (s *Store) ListSchedules(classID *int) []models.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Schedule, 0, len(s.schedules))
	for _, schedule := range s.schedules {
		if classID != nil && schedule.ClassID != *classID {
			continue
		}
		out = append(out, schedule)
	}
	return sortByID(out, func(sc models.Schedule) int { return sc.ID })
}

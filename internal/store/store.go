// Package store is the in-memory entity store behind the REST API. All
// state lives in per-entity maps guarded by a single RWMutex; ids are
// monotonically increasing per entity type and never reused. Workflows that
// check before they write (booking capacity, promotion redemption, payment
// confirmation) run entirely inside the write lock.
package store

import (
	"sort"
	"sync"
	"time"

	"edusport/internal/models"
)

// Store holds every entity collection for the lifetime of the process.
// Construct it with New and inject it; it is not a package-level singleton.
type Store struct {
	mu    sync.RWMutex
	nowFn func() time.Time

	users           map[int]models.User
	roles           map[int]models.Role
	sportCategories map[int]models.SportCategory
	instructors     map[int]models.Instructor
	venues          map[int]models.Venue
	classes         map[int]models.Class
	schedules       map[int]models.Schedule
	bookings        map[int]models.Booking
	students        map[int]models.Student
	payments        map[int]models.Payment
	promotions      map[int]models.Promotion

	userID          int
	roleID          int
	sportCategoryID int
	instructorID    int
	venueID         int
	classID         int
	scheduleID      int
	bookingID       int
	studentID       int
	paymentID       int
	promotionID     int
}

// New builds an empty store and seeds the default roles and sport
// categories.
func New() *Store {
	s := &Store{
		nowFn:           func() time.Time { return time.Now().UTC() },
		users:           map[int]models.User{},
		roles:           map[int]models.Role{},
		sportCategories: map[int]models.SportCategory{},
		instructors:     map[int]models.Instructor{},
		venues:          map[int]models.Venue{},
		classes:         map[int]models.Class{},
		schedules:       map[int]models.Schedule{},
		bookings:        map[int]models.Booking{},
		students:        map[int]models.Student{},
		payments:        map[int]models.Payment{},
		promotions:      map[int]models.Promotion{},
	}
	s.seed()
	return s
}

// SetNowFunc overrides the clock, for tests.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

func (s *Store) now() time.Time {
	return s.nowFn()
}

func (s *Store) seed() {
	s.CreateRole(models.Role{Name: models.RoleAdmin, Permissions: []string{"*"}})
	s.CreateRole(models.Role{Name: models.RoleInstructor, Permissions: []string{"read:classes", "read:schedules", "update:schedules"}})
	s.CreateRole(models.Role{Name: models.RoleStudent, Permissions: []string{"read:classes", "read:schedules", "create:bookings"}})

	s.CreateSportCategory(models.SportCategory{Name: "Bóng đá", Description: "Các lớp bóng đá cho mọi lứa tuổi", Color: "#1E88E5"})
	s.CreateSportCategory(models.SportCategory{Name: "Bơi lội", Description: "Các lớp bơi lội từ cơ bản đến nâng cao", Color: "#43A047"})
	s.CreateSportCategory(models.SportCategory{Name: "Võ thuật", Description: "Các lớp võ thuật truyền thống", Color: "#E53935"})
}

// sortByID restores insertion order; ids are assigned monotonically so
// ascending id equals creation order.
func sortByID[T any](items []T, id func(T) int) []T {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
	return items
}

// Role operations. Roles are seed data; there is no update path.

func (s *Store) CreateRole(role models.Role) models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roleID++
	role.ID = s.roleID
	s.roles[role.ID] = role
	return role
}

func (s *Store) GetRole(id int) (models.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, ok := s.roles[id]
	return role, ok
}

func (s *Store) GetRoleByName(name models.RoleName) (models.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, role := range s.roles {
		if role.Name == name {
			return role, true
		}
	}
	return models.Role{}, false
}

func (s *Store) ListRoles() []models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Role, 0, len(s.roles))
	for _, role := range s.roles {
		out = append(out, role)
	}
	return sortByID(out, func(r models.Role) int { return r.ID })
}

// Sport category operations.

func (s *Store) CreateSportCategory(category models.SportCategory) models.SportCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sportCategoryID++
	category.ID = s.sportCategoryID
	s.sportCategories[category.ID] = category
	return category
}

func (s *Store) GetSportCategory(id int) (models.SportCategory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.sportCategories[id]
	return category, ok
}

func (s *Store) ListSportCategories() []models.SportCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SportCategory, 0, len(s.sportCategories))
	for _, category := range s.sportCategories {
		out = append(out, category)
	}
	return sortByID(out, func(c models.SportCategory) int { return c.ID })
}

package store

import (
	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// UserPatch is a partial update; nil fields are left untouched.
type UserPatch struct {
	Password *string
	Email    *string
	FullName *string
	Phone    *string
	RoleID   *int
	Language *string
	Active   *bool
}

// CreateUser inserts a user. Username and email uniqueness is enforced here,
// under the write lock, so two concurrent registrations cannot both pass.
func (s *Store) CreateUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return models.User{}, apperrors.Conflict("Username already exists")
		}
		if existing.Email == user.Email {
			return models.User{}, apperrors.Conflict("Email already exists")
		}
	}
	s.userID++
	user.ID = s.userID
	user.CreatedAt = s.now()
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	return user, ok
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *Store) UpdateUser(id int, patch UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, apperrors.NotFound("User not found")
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.Email != nil {
		for _, existing := range s.users {
			if existing.ID != id && existing.Email == *patch.Email {
				return models.User{}, apperrors.Conflict("Email already exists")
			}
		}
		user.Email = *patch.Email
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.RoleID != nil {
		if _, ok := s.roles[*patch.RoleID]; !ok {
			return models.User{}, apperrors.NotFound("Role not found")
		}
		user.RoleID = *patch.RoleID
	}
	if patch.Language != nil {
		user.Language = *patch.Language
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}
	s.users[id] = user
	return user, nil
}

// ListUsers returns users in creation order, optionally filtered by role.
func (s *Store) ListUsers(roleID *int) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		if roleID != nil && user.RoleID != *roleID {
			continue
		}
		out = append(out, user)
	}
	return sortByID(out, func(u models.User) int { return u.ID })
}

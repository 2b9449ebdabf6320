package store

import (
	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// StudentPatch is a partial update; nil fields are left untouched.
type StudentPatch struct {
	ParentName       *string
	ParentEmail      *string
	ParentPhone      *string
	DateOfBirth      *models.Date
	EmergencyContact *string
	MedicalNotes     *string
	MembershipType   *models.MembershipType
	MembershipExpiry *models.Date
}

// CreateStudent inserts a student profile after checking its user reference.
func (s *Store) CreateStudent(student models.Student) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[student.UserID]; !ok {
		return models.Student{}, apperrors.NotFound("User not found")
	}
	if student.MembershipType == "" {
		student.MembershipType = models.MembershipStandard
	}
	s.studentID++
	student.ID = s.studentID
	s.students[student.ID] = student
	return student, nil
}

func (s *Store) GetStudent(id int) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	student, ok := s.students[id]
	return student, ok
}

func (s *Store) GetStudentByUserID(userID int) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, student := range s.students {
		if student.UserID == userID {
			return student, true
		}
	}
	return models.Student{}, false
}

func (s *Store) UpdateStudent(id int, patch StudentPatch) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.students[id]
	if !ok {
		return models.Student{}, apperrors.NotFound("Student not found")
	}
	if patch.ParentName != nil {
		student.ParentName = *patch.ParentName
	}
	if patch.ParentEmail != nil {
		student.ParentEmail = *patch.ParentEmail
	}
	if patch.ParentPhone != nil {
		student.ParentPhone = *patch.ParentPhone
	}
	if patch.DateOfBirth != nil {
		student.DateOfBirth = patch.DateOfBirth
	}
	if patch.EmergencyContact != nil {
		student.EmergencyContact = *patch.EmergencyContact
	}
	if patch.MedicalNotes != nil {
		student.MedicalNotes = *patch.MedicalNotes
	}
	if patch.MembershipType != nil {
		student.MembershipType = *patch.MembershipType
	}
	if patch.MembershipExpiry != nil {
		student.MembershipExpiry = patch.MembershipExpiry
	}
	s.students[id] = student
	return student, nil
}

func (s *Store) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0, len(s.students))
	for _, student := range s.students {
		out = append(out, student)
	}
	return sortByID(out, func(st models.Student) int { return st.ID })
}

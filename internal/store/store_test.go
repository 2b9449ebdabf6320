package store

import (
	"testing"

	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// fixture creates the entity chain most tests need: a user, an instructor
// profile, a venue, a class and one weekly schedule.
func fixture(t *testing.T, s *Store, capacity int) (models.User, models.Class, models.Schedule) {
	t.Helper()

	role, ok := s.GetRoleByName(models.RoleInstructor)
	if !ok {
		t.Fatal("instructor role not seeded")
	}
	user, err := s.CreateUser(models.User{
		Username: "coach",
		Password: "hash",
		Email:    "coach@example.com",
		FullName: "Coach Minh",
		RoleID:   role.ID,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	categories := s.ListSportCategories()
	if len(categories) == 0 {
		t.Fatal("sport categories not seeded")
	}
	instructor, err := s.CreateInstructor(models.Instructor{
		UserID:          user.ID,
		SportCategoryID: categories[0].ID,
		Status:          models.InstructorAvailable,
		Availability:    []models.Weekday{models.Monday, models.Wednesday},
	})
	if err != nil {
		t.Fatalf("CreateInstructor: %v", err)
	}

	venue := s.CreateVenue(models.Venue{Name: "Sân A", Capacity: 30, Available: true})
	class, err := s.CreateClass(models.Class{
		Name:            "Bóng đá U10",
		SportCategoryID: categories[0].ID,
		AgeGroup:        "U10",
		Capacity:        capacity,
		InstructorID:    instructor.ID,
		VenueID:         &venue.ID,
		Price:           500000,
		Active:          true,
	})
	if err != nil {
		t.Fatalf("CreateClass: %v", err)
	}

	schedule, err := s.CreateSchedule(models.Schedule{
		ClassID:   class.ID,
		DayOfWeek: models.Monday,
		StartTime: "17:00",
		EndTime:   "18:30",
		Recurring: true,
	})
	if err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}
	return user, class, schedule
}

func TestNewSeedsRolesAndCategories(t *testing.T) {
	s := New()

	roles := s.ListRoles()
	if len(roles) != 3 {
		t.Fatalf("expected 3 seeded roles, got %d", len(roles))
	}
	for _, name := range []models.RoleName{models.RoleAdmin, models.RoleInstructor, models.RoleStudent} {
		if _, ok := s.GetRoleByName(name); !ok {
			t.Errorf("role %q not seeded", name)
		}
	}

	categories := s.ListSportCategories()
	if len(categories) != 3 {
		t.Fatalf("expected 3 seeded categories, got %d", len(categories))
	}
	if categories[0].Name != "Bóng đá" {
		t.Errorf("expected first category Bóng đá, got %q", categories[0].Name)
	}
}

func TestCreateUserUniqueness(t *testing.T) {
	s := New()
	role, _ := s.GetRoleByName(models.RoleStudent)

	if _, err := s.CreateUser(models.User{Username: "alice", Email: "alice@example.com", RoleID: role.ID}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := s.CreateUser(models.User{Username: "alice", Email: "other@example.com", RoleID: role.ID})
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("duplicate username: expected conflict, got %v", err)
	}

	_, err = s.CreateUser(models.User{Username: "alice2", Email: "alice@example.com", RoleID: role.ID})
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("duplicate email: expected conflict, got %v", err)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	s := New()
	role, _ := s.GetRoleByName(models.RoleStudent)
	user, err := s.CreateUser(models.User{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Nguyen",
		Phone:    "0900000001",
		RoleID:   role.ID,
		Active:   true,
	})
	if err != nil {
		t.Fatal(err)
	}

	phone := "0900000002"
	updated, err := s.UpdateUser(user.ID, UserPatch{Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Phone != phone {
		t.Errorf("phone not updated: %q", updated.Phone)
	}
	if updated.FullName != "Alice Nguyen" || updated.Email != "alice@example.com" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	badRole := 999
	if _, err := s.UpdateUser(user.ID, UserPatch{RoleID: &badRole}); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("unknown role: expected not_found, got %v", err)
	}
	if _, err := s.UpdateUser(999, UserPatch{Phone: &phone}); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("unknown user: expected not_found, got %v", err)
	}
}

func TestUpdateUserKeepsEmailUnique(t *testing.T) {
	s := New()
	role, _ := s.GetRoleByName(models.RoleStudent)
	alice, _ := s.CreateUser(models.User{Username: "alice", Email: "alice@example.com", RoleID: role.ID})
	bob, _ := s.CreateUser(models.User{Username: "bob", Email: "bob@example.com", RoleID: role.ID})

	taken := alice.Email
	if _, err := s.UpdateUser(bob.ID, UserPatch{Email: &taken}); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("duplicate email on update: expected conflict, got %v", err)
	}
	unchanged, _ := s.GetUser(bob.ID)
	if unchanged.Email != "bob@example.com" {
		t.Errorf("email changed despite conflict: %q", unchanged.Email)
	}

	// Patching a user's own email back onto themselves is fine.
	own := "bob@example.com"
	if _, err := s.UpdateUser(bob.ID, UserPatch{Email: &own}); err != nil {
		t.Errorf("self email patch: %v", err)
	}
}

func TestListUsersFilterByRole(t *testing.T) {
	s := New()
	student, _ := s.GetRoleByName(models.RoleStudent)
	admin, _ := s.GetRoleByName(models.RoleAdmin)

	s.CreateUser(models.User{Username: "a", Email: "a@example.com", RoleID: student.ID})
	s.CreateUser(models.User{Username: "b", Email: "b@example.com", RoleID: admin.ID})
	s.CreateUser(models.User{Username: "c", Email: "c@example.com", RoleID: student.ID})

	all := s.ListUsers(nil)
	if len(all) != 3 {
		t.Fatalf("expected 3 users, got %d", len(all))
	}
	if all[0].Username != "a" || all[2].Username != "c" {
		t.Errorf("list not in creation order: %+v", all)
	}

	students := s.ListUsers(&student.ID)
	if len(students) != 2 {
		t.Errorf("expected 2 students, got %d", len(students))
	}
}

func TestCreateClassValidatesReferences(t *testing.T) {
	s := New()
	_, class, _ := fixture(t, s, 10)

	cases := []struct {
		name  string
		class models.Class
	}{
		{"unknown category", models.Class{Name: "x", SportCategoryID: 999, InstructorID: 1, Capacity: 5}},
		{"unknown instructor", models.Class{Name: "x", SportCategoryID: class.SportCategoryID, InstructorID: 999, Capacity: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.CreateClass(tc.class); apperrors.KindOf(err) != apperrors.KindNotFound {
				t.Errorf("expected not_found, got %v", err)
			}
		})
	}

	badVenue := 999
	bad := class
	bad.VenueID = &badVenue
	bad.ID = 0
	if _, err := s.CreateClass(bad); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("unknown venue: expected not_found, got %v", err)
	}
}

func TestCreateScheduleRequiresClass(t *testing.T) {
	s := New()
	if _, err := s.CreateSchedule(models.Schedule{ClassID: 42, DayOfWeek: models.Monday}); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestRegisterStudentProfile(t *testing.T) {
	s := New()
	role, _ := s.GetRoleByName(models.RoleStudent)
	user, err := s.CreateUser(models.User{Username: "kid", Email: "kid@example.com", RoleID: role.ID})
	if err != nil {
		t.Fatal(err)
	}

	student, err := s.CreateStudent(models.Student{UserID: user.ID})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if student.MembershipType != models.MembershipStandard {
		t.Errorf("expected standard membership default, got %q", student.MembershipType)
	}
	if _, ok := s.GetStudentByUserID(user.ID); !ok {
		t.Error("student profile not found by user id")
	}
}

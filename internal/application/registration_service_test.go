package application

import (
	"context"
	"testing"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHappyPath(t *testing.T) {
	repo := seededRepo("MATH1101", "ENG1101")
	registration, _ := newTestServices(t, demoCatalog(t), repo)

	result, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-01")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeRegistered, result.Code)
	assert.Equal(t, "Successfully registered for SOEN2351 - SOEN2351-01", result.Message)

	require.Len(t, repo.ledger.RegisteredSections, 1)
	entry := repo.ledger.RegisteredSections[0]
	assert.Equal(t, domain.CourseCode("SOEN2351"), entry.CourseCode)
	assert.Equal(t, "Software Engineering Fundamentals", entry.CourseTitle)
	assert.Equal(t, 3, entry.Credits)
	assert.False(t, entry.RegisteredAt.IsZero())
}

func TestRegisterUnknownCourseAndSection(t *testing.T) {
	repo := seededRepo("MATH1101")
	registration, _ := newTestServices(t, demoCatalog(t), repo)

	result, err := registration.Register(context.Background(), "NOPE9999", "NOPE9999-01")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, OutcomeCourseNotFound, result.Code)
	assert.Equal(t, "Course not found", result.Message)

	result, err = registration.Register(context.Background(), "SOEN2351", "SOEN2351-99")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, OutcomeSectionNotFound, result.Code)
	assert.Equal(t, "Section not found", result.Message)

	assert.Zero(t, repo.saves, "rejections must not touch the ledger")
}

func TestRegisterIdempotentRejection(t *testing.T) {
	repo := seededRepo("MATH1101")
	registration, _ := newTestServices(t, demoCatalog(t), repo)

	first, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-01")
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-01")
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, OutcomeAlreadyRegistered, second.Code)
	assert.Equal(t, "You are already registered in this section", second.Message)
	assert.Len(t, repo.ledger.RegisteredSections, 1, "second call must not grow the ledger")
}

func TestRegisterPrerequisiteGating(t *testing.T) {
	repo := seededRepo() // nothing completed
	registration, _ := newTestServices(t, demoCatalog(t), repo)

	result, err := registration.Register(context.Background(), "COMP2202", "COMP2202-01")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, OutcomeMissingPrerequisites, result.Code)
	assert.Equal(t, "Missing prerequisites: COMP1201. Please complete these courses first.", result.Message)
	assert.Empty(t, repo.ledger.RegisteredSections)

	require.NoError(t, registration.MarkComplete(context.Background(), "COMP1201"))

	result, err = registration.Register(context.Background(), "COMP2202", "COMP2202-01")
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestRegisterMissingPrerequisitesNamesAll(t *testing.T) {
	catalog := &memCatalog{courses: []domain.Course{{
		Code: "SOEN3000", Title: "Advanced Topics", Credits: 3,
		Prerequisites: []domain.CourseCode{"MATH1101", "COMP1201"},
		Sections:      []domain.Section{lecture(t, "SOEN3000-01", "MW", "10:00-11:15")},
	}}}
	registration, _ := newTestServices(t, catalog, seededRepo())

	result, err := registration.Register(context.Background(), "SOEN3000", "SOEN3000-01")
	require.NoError(t, err)
	assert.Equal(t, "Missing prerequisites: MATH1101, COMP1201. Please complete these courses first.", result.Message)
}

func TestRegisterDuplicateCourseSection(t *testing.T) {
	repo := seededRepo("MATH1101")
	registration, _ := newTestServices(t, demoCatalog(t), repo)

	first, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-01")
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-02")
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, OutcomeDuplicateCourse, second.Code)
	assert.Equal(t, "You are already registered in another section of SOEN2351", second.Message)
}

func TestRegisterLabGating(t *testing.T) {
	repo := seededRepo("MATH1101")
	registration, _ := newTestServices(t, demoCatalog(t), repo)

	labFirst, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-L1")
	require.NoError(t, err)
	assert.False(t, labFirst.Success)
	assert.Equal(t, OutcomeLabRequiresLecture, labFirst.Code)
	assert.Equal(t, "You must register for a lecture section before registering for a lab", labFirst.Message)
	assert.Empty(t, repo.ledger.RegisteredSections)

	lectureResult, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-01")
	require.NoError(t, err)
	require.True(t, lectureResult.Success)

	labAfter, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-L1")
	require.NoError(t, err)
	assert.True(t, labAfter.Success)

	// Lecture plus lab of one course still counts its credits once.
	view, err := registration.Schedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalCredits)
}

func TestRegisterScheduleConflict(t *testing.T) {
	repo := seededRepo("MATH1101")
	registration, _ := newTestServices(t, demoCatalog(t), repo)

	first, err := registration.Register(context.Background(), "COMP1201", "COMP1201-01")
	require.NoError(t, err)
	require.True(t, first.Success)

	// MATH1102-02 would be TR so use a bespoke overlapping catalog entry:
	// SOEN2351-01 is MW 10:00-11:15 and COMP1201-01 is MW 08:30-09:45, so
	// overlap needs a section crossing 08:30-09:45 on M or W.
	catalog := &memCatalog{courses: []domain.Course{{
		Code: "HIST1301", Title: "World History", Credits: 3,
		Sections: []domain.Section{lecture(t, "HIST1301-01", "M", "09:00-10:30")},
	}}}
	registration = NewRegistrationService(catalog, repo, nil)

	conflicted, err := registration.Register(context.Background(), "HIST1301", "HIST1301-01")
	require.NoError(t, err)
	assert.False(t, conflicted.Success)
	assert.Equal(t, OutcomeScheduleConflict, conflicted.Code)
	assert.Equal(t, "This section conflicts with your current schedule", conflicted.Message)
	assert.Len(t, repo.ledger.RegisteredSections, 1)
}

func TestRegisterTouchingSectionsDoNotConflict(t *testing.T) {
	catalog := &memCatalog{courses: []domain.Course{
		{
			Code: "AAAA1101", Title: "First", Credits: 3,
			Sections: []domain.Section{lecture(t, "AAAA1101-01", "M", "09:00-10:00")},
		},
		{
			Code: "BBBB1101", Title: "Second", Credits: 3,
			Sections: []domain.Section{lecture(t, "BBBB1101-01", "M", "10:00-11:00")},
		},
	}}
	registration, _ := newTestServices(t, catalog, seededRepo())

	first, err := registration.Register(context.Background(), "AAAA1101", "AAAA1101-01")
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := registration.Register(context.Background(), "BBBB1101", "BBBB1101-01")
	require.NoError(t, err)
	assert.True(t, second.Success, "back-to-back sections must be allowed")
}

func TestRegisterCreditLimit(t *testing.T) {
	catalog := &memCatalog{courses: []domain.Course{
		{
			Code: "HEAV9001", Title: "Heavy Load I", Credits: 9,
			Sections: []domain.Section{lecture(t, "HEAV9001-01", "MW", "08:00-09:00")},
		},
		{
			Code: "HEAV9002", Title: "Heavy Load II", Credits: 9,
			Sections: []domain.Section{lecture(t, "HEAV9002-01", "TR", "08:00-09:00")},
		},
		{
			Code: "HEAV9003", Title: "Heavy Load III", Credits: 9,
			Sections: []domain.Section{lecture(t, "HEAV9003-01", "F", "08:00-09:00")},
		},
	}}
	repo := seededRepo()
	registration, _ := newTestServices(t, catalog, repo)

	for _, id := range []string{"HEAV9001", "HEAV9002"} {
		result, err := registration.Register(context.Background(), domain.CourseCode(id), domain.SectionID(id+"-01"))
		require.NoError(t, err)
		require.True(t, result.Success)
	}

	result, err := registration.Register(context.Background(), "HEAV9003", "HEAV9003-01")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, OutcomeCreditLimitExceeded, result.Code)
	assert.Equal(t, "Registering for this course would exceed the 18 credit limit (current: 18, new: 27)", result.Message)
	assert.Equal(t, 18, repo.ledger.TotalCredits(), "rejected call must leave the ledger unchanged")
	assert.Len(t, repo.ledger.RegisteredSections, 2)
}

func TestDrop(t *testing.T) {
	repo := seededRepo("MATH1101")
	registration, _ := newTestServices(t, demoCatalog(t), repo)

	result, err := registration.Register(context.Background(), "SOEN2351", "SOEN2351-01")
	require.NoError(t, err)
	require.True(t, result.Success)

	dropped, err := registration.Drop(context.Background(), "SOEN2351-01")
	require.NoError(t, err)
	assert.True(t, dropped.Success)
	assert.Equal(t, OutcomeDropped, dropped.Code)
	assert.Equal(t, "Successfully dropped Software Engineering Fundamentals", dropped.Message)
	assert.Empty(t, repo.ledger.RegisteredSections)

	again, err := registration.Drop(context.Background(), "SOEN2351-01")
	require.NoError(t, err)
	assert.False(t, again.Success)
	assert.Equal(t, OutcomeSectionNotRegistered, again.Code)
}

func TestListCoursesFilter(t *testing.T) {
	registration, _ := newTestServices(t, demoCatalog(t), seededRepo())

	all, err := registration.ListCourses(context.Background(), CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 8)

	math, err := registration.ListCourses(context.Background(), CourseFilter{Department: "math"})
	require.NoError(t, err)
	require.Len(t, math, 2)
	assert.Equal(t, domain.CourseCode("MATH1102"), math[0].Code)

	search, err := registration.ListCourses(context.Background(), CourseFilter{Query: "physics"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, domain.CourseCode("PHYS1101"), search[0].Code)
}

func TestDepartments(t *testing.T) {
	registration, _ := newTestServices(t, demoCatalog(t), seededRepo())

	departments, err := registration.Departments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CHEM", "COMP", "ENG", "MATH", "PHYS", "SOEN"}, departments)
}

package application

import "github.com/bnema/course-reg-cli/internal/domain"

// ScheduleView is the read model behind the weekly-schedule surfaces.
type ScheduleView struct {
	Entries          []domain.RegisteredSection
	TotalCredits     int
	CompletedCourses []domain.CourseCode
}

// CourseFilter narrows catalog listings. Department matches the leading
// letter prefix of the course code; Query matches code or title,
// case-insensitively.
type CourseFilter struct {
	Department string
	Query      string
}

package domain

type CourseCode string
type SectionID string
type SectionKind string

const (
	SectionKindLecture SectionKind = "lecture"
	SectionKindLab     SectionKind = "lab"
)

// Course is immutable reference data loaded once at startup and shared by
// every consumer. The registration engine never mutates it.
type Course struct {
	Code          CourseCode
	Title         string
	Credits       int
	HasLab        bool
	Prerequisites []CourseCode
	Sections      []Section
}

// Section is one schedulable offering (lecture or lab) of a course.
type Section struct {
	ID         SectionID
	Kind       SectionKind
	Instructor string
	Room       string
	Meeting    Meeting
}

func (c Course) FirstSectionOfKind(kind SectionKind) (Section, bool) {
	for _, section := range c.Sections {
		if section.Kind == kind {
			return section, true
		}
	}

	return Section{}, false
}

func (c Course) Requires(code CourseCode) bool {
	for _, prereq := range c.Prerequisites {
		if prereq == code {
			return true
		}
	}

	return false
}

func (k SectionKind) Valid() bool {
	switch k {
	case SectionKindLecture, SectionKindLab:
		return true
	default:
		return false
	}
}

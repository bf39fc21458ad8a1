package domain

import "time"

// MaxCredits is the distinct-course credit load the ledger may ever reach.
const MaxCredits = 18

// RegisteredSection is a denormalized snapshot captured at registration
// time, so the ledger renders schedules without re-joining the catalog
// and stays stable if catalog data changes.
type RegisteredSection struct {
	CourseCode   CourseCode
	CourseTitle  string
	SectionID    SectionID
	Kind         SectionKind
	Instructor   string
	Room         string
	Meeting      Meeting
	Credits      int
	RegisteredAt time.Time
}

// Ledger is the mutable record of a student's current registrations and
// completed-course history. It performs no validation itself; every
// invariant is enforced by the registration service, the single entry
// point for mutation.
type Ledger struct {
	RegisteredSections []RegisteredSection
	CompletedCourses   []CourseCode
}

func NewLedger(completedSeed []CourseCode) Ledger {
	completed := make([]CourseCode, 0, len(completedSeed))
	seen := make(map[CourseCode]struct{}, len(completedSeed))
	for _, code := range completedSeed {
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		completed = append(completed, code)
	}

	return Ledger{CompletedCourses: completed}
}

// TotalCredits sums credits once per distinct course, so a course with
// both a lecture and a lab entry is counted a single time.
func (l Ledger) TotalCredits() int {
	counted := make(map[CourseCode]struct{}, len(l.RegisteredSections))
	total := 0
	for _, entry := range l.RegisteredSections {
		if _, ok := counted[entry.CourseCode]; ok {
			continue
		}
		counted[entry.CourseCode] = struct{}{}
		total += entry.Credits
	}

	return total
}

func (l Ledger) IsRegistered(sectionID SectionID) bool {
	for _, entry := range l.RegisteredSections {
		if entry.SectionID == sectionID {
			return true
		}
	}

	return false
}

func (l Ledger) IsCourseRegistered(code CourseCode) bool {
	for _, entry := range l.RegisteredSections {
		if entry.CourseCode == code {
			return true
		}
	}

	return false
}

func (l Ledger) HasLectureFor(code CourseCode) bool {
	for _, entry := range l.RegisteredSections {
		if entry.CourseCode == code && entry.Kind == SectionKindLecture {
			return true
		}
	}

	return false
}

// HasConflict reports whether a meeting collides with any existing entry.
func (l Ledger) HasConflict(meeting Meeting) bool {
	for _, entry := range l.RegisteredSections {
		if entry.Meeting.Conflicts(meeting) {
			return true
		}
	}

	return false
}

func (l Ledger) HasCompleted(code CourseCode) bool {
	for _, completed := range l.CompletedCourses {
		if completed == code {
			return true
		}
	}

	return false
}

// MissingPrerequisites returns the prerequisite codes of a course not yet
// in the completed set, preserving the course's declaration order.
func (l Ledger) MissingPrerequisites(course Course) []CourseCode {
	var missing []CourseCode
	for _, prereq := range course.Prerequisites {
		if !l.HasCompleted(prereq) {
			missing = append(missing, prereq)
		}
	}

	return missing
}

func (l *Ledger) Add(entry RegisteredSection) {
	l.RegisteredSections = append(l.RegisteredSections, entry)
}

// Remove drops the entry with the given section id and reports whether
// an entry was removed.
func (l *Ledger) Remove(sectionID SectionID) bool {
	for i, entry := range l.RegisteredSections {
		if entry.SectionID == sectionID {
			l.RegisteredSections = append(l.RegisteredSections[:i], l.RegisteredSections[i+1:]...)
			return true
		}
	}

	return false
}

func (l *Ledger) MarkComplete(code CourseCode) {
	if l.HasCompleted(code) {
		return
	}

	l.CompletedCourses = append(l.CompletedCourses, code)
}

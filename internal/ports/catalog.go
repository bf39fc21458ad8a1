package ports

import (
	"context"

	"github.com/bnema/course-reg-cli/internal/domain"
)

// Catalog is the read-only view over the course dataset. Implementations
// load the dataset once; lookups never mutate it.
type Catalog interface {
	FindCourse(ctx context.Context, code domain.CourseCode) (domain.Course, error)
	FindSection(ctx context.Context, code domain.CourseCode, sectionID domain.SectionID) (domain.Course, domain.Section, error)
	Courses(ctx context.Context) ([]domain.Course, error)
}

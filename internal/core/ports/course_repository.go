package ports

import (
	"context"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

// CourseRepository defines the persistence interface for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindPublished(ctx context.Context) ([]domain.Course, error)
	FindByInstructor(ctx context.Context, instructorID string) ([]domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// LessonRepository reads lessons belonging to a course, ordered by their
// order index.
type LessonRepository interface {
	FindByCourse(ctx context.Context, courseID string) ([]domain.Lesson, error)
}

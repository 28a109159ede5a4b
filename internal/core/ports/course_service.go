package ports

import (
	"context"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

// CreateCourseInput carries the fields accepted when an instructor creates a
// course. Empty fields receive defaults.
type CreateCourseInput struct {
	Title        string
	Description  string
	Category     string
	Price        float64
	ThumbnailURL string
}

type CourseService interface {
	ListPublished(ctx context.Context) ([]domain.Course, error)
	// GetDetails returns a course together with its lessons sorted by order
	// index.
	GetDetails(ctx context.Context, id string) (*domain.Course, []domain.Lesson, error)
	Create(ctx context.Context, instructor domain.Identity, in CreateCourseInput) (*domain.Course, error)
	ListMine(ctx context.Context, instructor domain.Identity) ([]domain.Course, error)
	// Delete removes a course. Allowed for the course's creator or an admin.
	Delete(ctx context.Context, caller domain.Identity, id string) error
}

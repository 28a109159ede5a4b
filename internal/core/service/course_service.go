package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/painless-lms/lms-api/internal/core/domain"
	"github.com/painless-lms/lms-api/internal/core/ports"
)

const (
	defaultCourseTitle       = "New Course Title"
	defaultCourseDescription = "Brief description of the course."
	defaultCourseCategory    = "General"
	defaultThumbnailURL      = "/images/default-course.jpg"
)

// CourseService implements the course catalogue and instructor management
// operations.
type CourseService struct {
	courses ports.CourseRepository
	lessons ports.LessonRepository
	log     zerolog.Logger
}

func NewCourseService(courses ports.CourseRepository, lessons ports.LessonRepository, log zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, lessons: lessons, log: log}
}

func (s *CourseService) ListPublished(ctx context.Context) ([]domain.Course, error) {
	return s.courses.FindPublished(ctx)
}

func (s *CourseService) GetDetails(ctx context.Context, id string) (*domain.Course, []domain.Lesson, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	lessons, err := s.lessons.FindByCourse(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return course, lessons, nil
}

func (s *CourseService) Create(ctx context.Context, instructor domain.Identity, in ports.CreateCourseInput) (*domain.Course, error) {
	now := time.Now().UTC()
	course := &domain.Course{
		Title:        withDefault(in.Title, defaultCourseTitle),
		Description:  withDefault(in.Description, defaultCourseDescription),
		Category:     withDefault(in.Category, defaultCourseCategory),
		ThumbnailURL: withDefault(in.ThumbnailURL, defaultThumbnailURL),
		Price:        in.Price,
		InstructorID: instructor.ID,
		IsPublished:  false, // must be explicitly published later
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("course_id", created.ID).Str("instructor_id", instructor.ID).Msg("course created")
	return created, nil
}

func (s *CourseService) ListMine(ctx context.Context, instructor domain.Identity) ([]domain.Course, error) {
	return s.courses.FindByInstructor(ctx, instructor.ID)
}

func (s *CourseService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDeleteResource(caller, course.InstructorID) {
		return domain.ErrForbidden
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("course_id", id).Str("caller_id", caller.ID).Msg("course deleted")
	return nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

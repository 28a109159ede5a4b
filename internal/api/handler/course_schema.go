package handler

import (
	"time"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

type createCourseRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price" validate:"gte=0"`
	ThumbnailURL string  `json:"thumbnail_url"`
}

type courseResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	InstructorID string    `json:"instructor_id"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type lessonResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	ContentURL string `json:"content_url,omitempty"`
	OrderIndex int    `json:"order_index"`
}

type courseDetailsResponse struct {
	Course  courseResponse   `json:"course"`
	Lessons []lessonResponse `json:"lessons"`
}

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		ThumbnailURL: c.ThumbnailURL,
		InstructorID: c.InstructorID,
		Category:     c.Category,
		Price:        c.Price,
		IsPublished:  c.IsPublished,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCourseList(courses []domain.Course) []courseResponse {
	out := make([]courseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return out
}

func toLessonList(lessons []domain.Lesson) []lessonResponse {
	out := make([]lessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, lessonResponse{
			ID:         l.ID,
			Title:      l.Title,
			Type:       string(l.Type),
			ContentURL: l.ContentURL,
			OrderIndex: l.OrderIndex,
		})
	}
	return out
}

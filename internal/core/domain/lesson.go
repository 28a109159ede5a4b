package domain

import "time"

// LessonType enumerates the supported lesson content kinds.
type LessonType string

const (
	LessonVideo    LessonType = "video"
	LessonDocument LessonType = "document"
	LessonQuiz     LessonType = "quiz"
)

// Lesson belongs to a course. OrderIndex determines the sequence of lessons
// within the course.
type Lesson struct {
	ID         string     `json:"id"`
	CourseID   string     `json:"course_id"`
	Title      string     `json:"title"`
	Type       LessonType `json:"type"`
	ContentURL string     `json:"content_url,omitempty"`
	OrderIndex int        `json:"order_index"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

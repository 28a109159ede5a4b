package domain

import "time"

// Course is a unit of content owned by an instructor. Courses are created
// unpublished and only published ones appear in the public catalogue.
type Course struct {
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

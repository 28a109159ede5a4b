package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

const collectionLessons = "lessons"

// LessonRepository implements ports.LessonRepository using MongoDB.
type LessonRepository struct {
	col *mongo.Collection
}

func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{col: db.Collection(collectionLessons)}
}

type mongoLesson struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CourseID   string             `bson:"course_id"`
	Title      string             `bson:"title"`
	Type       string             `bson:"type"`
	ContentURL string             `bson:"content_url,omitempty"`
	OrderIndex int                `bson:"order_index"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// FindByCourse returns the course's lessons sorted by order index.
func (r *LessonRepository) FindByCourse(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoLesson
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", err)
	}

	lessons := make([]domain.Lesson, 0, len(docs))
	for _, ml := range docs {
		lessons = append(lessons, domain.Lesson{
			ID:         ml.ID.Hex(),
			CourseID:   ml.CourseID,
			Title:      ml.Title,
			Type:       domain.LessonType(ml.Type),
			ContentURL: ml.ContentURL,
			OrderIndex: ml.OrderIndex,
			CreatedAt:  ml.CreatedAt,
			UpdatedAt:  ml.UpdatedAt,
		})
	}
	return lessons, nil
}

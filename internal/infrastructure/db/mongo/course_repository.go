package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

const collectionCourses = "courses"

// CourseRepository implements ports.CourseRepository using MongoDB.
type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(collectionCourses)}
}

type mongoCourse struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	ThumbnailURL string             `bson:"thumbnail_url"`
	InstructorID string             `bson:"instructor_id"`
	Category     string             `bson:"category"`
	Price        float64            `bson:"price"`
	IsPublished  bool               `bson:"is_published"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCourse{
		Title:        course.Title,
		Description:  course.Description,
		ThumbnailURL: course.ThumbnailURL,
		InstructorID: course.InstructorID,
		Category:     course.Category,
		Price:        course.Price,
		IsPublished:  course.IsPublished,
		CreatedAt:    course.CreatedAt,
		UpdatedAt:    course.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *course
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	var mc mongoCourse
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CourseRepository) FindPublished(ctx context.Context) ([]domain.Course, error) {
	return r.findAll(ctx, bson.M{"is_published": true})
}

func (r *CourseRepository) FindByInstructor(ctx context.Context, instructorID string) ([]domain.Course, error) {
	return r.findAll(ctx, bson.M{"instructor_id": instructorID})
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) findAll(ctx context.Context, filter bson.M) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoCourse
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}

	courses := make([]domain.Course, 0, len(docs))
	for _, mc := range docs {
		courses = append(courses, *mc.toDomain())
	}
	return courses, nil
}

func (mc mongoCourse) toDomain() *domain.Course {
	return &domain.Course{
		ID:           mc.ID.Hex(),
		Title:        mc.Title,
		Description:  mc.Description,
		ThumbnailURL: mc.ThumbnailURL,
		InstructorID: mc.InstructorID,
		Category:     mc.Category,
		Price:        mc.Price,
		IsPublished:  mc.IsPublished,
		CreatedAt:    mc.CreatedAt,
		UpdatedAt:    mc.UpdatedAt,
	}
}

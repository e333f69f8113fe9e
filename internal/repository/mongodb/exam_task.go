package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type examTaskDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TeacherName string             `bson:"teacherName"`
	Subject     string             `bson:"subject"`
	Class       string             `bson:"class"`
	DateOfExam  time.Time          `bson:"dateOfExam"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d examTaskDoc) model() models.ExamTask {
	return models.ExamTask{
		ID:          d.ID.Hex(),
		TeacherName: d.TeacherName,
		Subject:     d.Subject,
		Class:       d.Class,
		DateOfExam:  d.DateOfExam,
		Status:      models.ExamTaskStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

// ExamTaskRepository persists exam tasks in the examtasks collection.
type ExamTaskRepository struct {
	coll *mongo.Collection
}

// NewExamTaskRepository constructs an ExamTaskRepository.
func NewExamTaskRepository(db *mongo.Database) *ExamTaskRepository {
	return &ExamTaskRepository{coll: db.Collection(ExamTasksCollection)}
}

// Create inserts a task and assigns its ID.
func (r *ExamTaskRepository) Create(ctx context.Context, task *models.ExamTask) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	doc := examTaskDoc{
		ID:          primitive.NewObjectID(),
		TeacherName: task.TeacherName,
		Subject:     task.Subject,
		Class:       task.Class,
		DateOfExam:  task.DateOfExam,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return writeError("create exam task", err)
	}
	task.ID = doc.ID.Hex()
	return nil
}

// ListByExamDate returns every task, earliest exam first.
func (r *ExamTaskRepository) ListByExamDate(ctx context.Context) ([]models.ExamTask, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateOfExam", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list exam tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []examTaskDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode exam tasks: %w", err)
	}

	tasks := make([]models.ExamTask, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.model())
	}
	return tasks, nil
}

// UpdateStatus sets the status of a task and returns the updated document.
func (r *ExamTaskRepository) UpdateStatus(ctx context.Context, id string, status models.ExamTaskStatus) (*models.ExamTask, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, appErrors.ErrNoRecord
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc examTaskDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.ErrNoRecord
		}
		return nil, fmt.Errorf("update exam task status: %w", err)
	}
	task := doc.model()
	return &task, nil
}

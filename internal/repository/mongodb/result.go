package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/college-portal-api/internal/models"
)

var resultSortFields = map[string]string{
	models.ResultSortExamDate:  "examDate",
	models.ResultSortScore:     "score",
	models.ResultSortCreatedAt: "createdAt",
	models.ResultSortStudentID: "studentId",
	models.ResultSortClassName: "className",
	models.ResultSortSubject:   "subject",
	models.ResultSortGrade:     "grade",
}

type resultDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StudentID string             `bson:"studentId"`
	ClassName string             `bson:"className"`
	Subject   string             `bson:"subject"`
	ExamID    string             `bson:"examId"`
	TeacherID string             `bson:"teacherId"`
	Score     float64            `bson:"score"`
	Grade     string             `bson:"grade"`
	Status    string             `bson:"status"`
	ExamDate  time.Time          `bson:"examDate"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d resultDoc) model() models.Result {
	return models.Result{
		ID:        d.ID.Hex(),
		StudentID: d.StudentID,
		ClassName: d.ClassName,
		Subject:   d.Subject,
		ExamID:    d.ExamID,
		TeacherID: d.TeacherID,
		Score:     d.Score,
		Grade:     d.Grade,
		Status:    d.Status,
		ExamDate:  d.ExamDate,
		CreatedAt: d.CreatedAt,
	}
}

// ResultRepository persists exam results in the results collection.
type ResultRepository struct {
	coll *mongo.Collection
}

// NewResultRepository constructs a ResultRepository.
func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{coll: db.Collection(ResultsCollection)}
}

// Create inserts a result and assigns its ID.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	doc := resultDoc{
		ID:        primitive.NewObjectID(),
		StudentID: result.StudentID,
		ClassName: result.ClassName,
		Subject:   result.Subject,
		ExamID:    result.ExamID,
		TeacherID: result.TeacherID,
		Score:     result.Score,
		Grade:     result.Grade,
		Status:    result.Status,
		ExamDate:  result.ExamDate,
		CreatedAt: result.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return writeError("create result", err)
	}
	result.ID = doc.ID.Hex()
	return nil
}

// Query returns one page of results matching q and the total match count.
func (r *ResultRepository) Query(ctx context.Context, q models.ResultQuery) ([]models.Result, int64, error) {
	filter := resultFilter(q.Filter)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count results: %w", err)
	}

	field, ok := resultSortFields[q.SortField]
	if !ok {
		field = "examDate"
	}
	direction := 1
	if q.SortDesc {
		direction = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: field, Value: direction}, {Key: "_id", Value: direction}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit)).SetSkip(int64(q.Offset()))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("query results: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []resultDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode results: %w", err)
	}

	results := make([]models.Result, 0, len(docs))
	for _, doc := range docs {
		results = append(results, doc.model())
	}
	return results, total, nil
}

func resultFilter(f models.ResultFilter) bson.D {
	filter := bson.D{}
	for _, match := range []struct {
		field  string
		values []string
	}{
		{"studentId", f.StudentIDs},
		{"className", f.ClassNames},
		{"subject", f.Subjects},
		{"examId", f.ExamIDs},
		{"teacherId", f.TeacherIDs},
	} {
		switch len(match.values) {
		case 0:
		case 1:
			filter = append(filter, bson.E{Key: match.field, Value: match.values[0]})
		default:
			filter = append(filter, bson.E{Key: match.field, Value: bson.M{"$in": match.values}})
		}
	}

	score := bson.M{}
	if f.MinScore != nil {
		score["$gte"] = *f.MinScore
	}
	if f.MaxScore != nil {
		score["$lte"] = *f.MaxScore
	}
	if len(score) > 0 {
		filter = append(filter, bson.E{Key: "score", Value: score})
	}

	date := bson.M{}
	if f.DateFrom != nil {
		date["$gte"] = *f.DateFrom
	}
	if f.DateTo != nil {
		date["$lte"] = *f.DateTo
	}
	if len(date) > 0 {
		filter = append(filter, bson.E{Key: "examDate", Value: date})
	}
	return filter
}

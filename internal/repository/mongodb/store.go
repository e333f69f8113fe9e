// Package mongodb implements the repositories on top of a MongoDB database.
package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

// Collection names.
const (
	CollegesCollection  = "colleges"
	StudentsCollection  = "students"
	TeachersCollection  = "teachers"
	ExamTasksCollection = "examtasks"
	ResultsCollection   = "results"
)

// Store bundles every repository over one database handle.
type Store struct {
	db        *mongo.Database
	Colleges  *CollegeRepository
	Students  *StudentRepository
	Teachers  *TeacherRepository
	ExamTasks *ExamTaskRepository
	Results   *ResultRepository
}

// NewStore wires the repositories to db.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		db:        db,
		Colleges:  NewCollegeRepository(db),
		Students:  NewStudentRepository(db),
		Teachers:  NewTeacherRepository(db),
		ExamTasks: NewExamTaskRepository(db),
		Results:   NewResultRepository(db),
	}
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes backing uniqueness rules and common sorts.
// It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
	}
	plain := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys}
	}

	specs := map[string][]mongo.IndexModel{
		CollegesCollection: {
			unique(bson.D{{Key: "email", Value: 1}}),
			unique(bson.D{{Key: "registrationNumber", Value: 1}}),
		},
		StudentsCollection: {
			unique(bson.D{{Key: "collegeId", Value: 1}, {Key: "email", Value: 1}}),
			unique(bson.D{{Key: "collegeId", Value: 1}, {Key: "username", Value: 1}}),
			plain(bson.D{{Key: "collegeId", Value: 1}, {Key: "year", Value: 1}, {Key: "division", Value: 1}}),
		},
		TeachersCollection: {
			unique(bson.D{{Key: "collegeId", Value: 1}, {Key: "email", Value: 1}}),
			unique(bson.D{{Key: "collegeId", Value: 1}, {Key: "employeeId", Value: 1}}),
		},
		ExamTasksCollection: {
			plain(bson.D{{Key: "dateOfExam", Value: 1}}),
		},
		ResultsCollection: {
			plain(bson.D{{Key: "studentId", Value: 1}}),
			plain(bson.D{{Key: "examDate", Value: -1}}),
		},
	}

	for _, name := range []string{CollegesCollection, StudentsCollection, TeachersCollection, ExamTasksCollection, ResultsCollection} {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, specs[name]); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	return nil
}

// refValue stores a reference as an ObjectID when it is one, otherwise as the
// raw string. Queries must use the same conversion.
func refValue(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func refString(v interface{}) string {
	switch ref := v.(type) {
	case primitive.ObjectID:
		return ref.Hex()
	case string:
		return ref
	case nil:
		return ""
	default:
		return fmt.Sprint(ref)
	}
}

func writeError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %v", op, appErrors.ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func containsPattern(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func pageOptions(page, limit int) (int64, int64) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return int64(limit), int64((models.ClampPage(page) - 1) * limit)
}

package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/college-portal-api/internal/models"
)

type studentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"firstName"`
	LastName    string             `bson:"lastName"`
	Email       string             `bson:"email"`
	RollNumber  string             `bson:"rollNumber"`
	Division    string             `bson:"division"`
	Year        string             `bson:"year"`
	Course      string             `bson:"course"`
	Department  string             `bson:"department"`
	Username    string             `bson:"username"`
	Password    string             `bson:"password"`
	CollegeID   interface{}        `bson:"collegeId"`
	CollegeName string             `bson:"collegeName"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	LastUpdated time.Time          `bson:"lastUpdated"`
}

func (d studentDoc) model() models.Student {
	return models.Student{
		ID:           d.ID.Hex(),
		CollegeID:    refString(d.CollegeID),
		CollegeName:  d.CollegeName,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		RollNumber:   d.RollNumber,
		Division:     d.Division,
		Year:         d.Year,
		Course:       d.Course,
		Department:   d.Department,
		Username:     d.Username,
		PasswordHash: d.Password,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		LastUpdated:  d.LastUpdated,
	}
}

// StudentRepository persists generated accounts in the students collection.
type StudentRepository struct {
	coll *mongo.Collection
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(StudentsCollection)}
}

// FindConflicts returns the batch emails and usernames already used by a
// student of the same college.
func (r *StudentRepository) FindConflicts(ctx context.Context, collegeID string, emails, usernames []string) (models.StudentConflicts, error) {
	var out models.StudentConflicts
	if len(emails) == 0 && len(usernames) == 0 {
		return out, nil
	}

	filter := bson.M{
		"collegeId": refValue(collegeID),
		"$or": bson.A{
			bson.M{"email": bson.M{"$in": emails}},
			bson.M{"username": bson.M{"$in": usernames}},
		},
	}
	opts := options.Find().SetProjection(bson.M{"email": 1, "username": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return out, fmt.Errorf("find student conflicts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []studentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return out, fmt.Errorf("decode student conflicts: %w", err)
	}

	emailSet, userSet := toSet(emails), toSet(usernames)
	for _, doc := range docs {
		if _, ok := emailSet[doc.Email]; ok {
			out.Emails = append(out.Emails, doc.Email)
		}
		if _, ok := userSet[doc.Username]; ok {
			out.Usernames = append(out.Usernames, doc.Username)
		}
	}
	return out, nil
}

// CreateMany inserts every student with one insert-many call and returns the
// new IDs in input order.
func (r *StudentRepository) CreateMany(ctx context.Context, students []*models.Student) ([]string, error) {
	if len(students) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(students))
	ids := make([]string, 0, len(students))
	for _, s := range students {
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		s.LastUpdated = now
		oid := primitive.NewObjectID()
		s.ID = oid.Hex()
		ids = append(ids, s.ID)
		docs = append(docs, studentDoc{
			ID:          oid,
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			Email:       s.Email,
			RollNumber:  s.RollNumber,
			Division:    s.Division,
			Year:        s.Year,
			Course:      s.Course,
			Department:  s.Department,
			Username:    s.Username,
			Password:    s.PasswordHash,
			CollegeID:   refValue(s.CollegeID),
			CollegeName: s.CollegeName,
			Status:      s.Status,
			CreatedAt:   s.CreatedAt,
			LastUpdated: s.LastUpdated,
		})
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, writeError("create students", err)
	}
	return ids, nil
}

// List returns one page of a college's students and the total match count.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int64, error) {
	query := bson.M{"collegeId": refValue(filter.CollegeID)}
	if filter.Year != "" {
		query["year"] = filter.Year
	}
	if filter.Division != "" {
		query["division"] = filter.Division
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		query["$or"] = bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
			bson.M{"email": pattern},
			bson.M{"username": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}

	limit, skip := pageOptions(filter.Page, filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "year", Value: 1}, {Key: "division", Value: 1}, {Key: "rollNumber", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []studentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode students: %w", err)
	}

	students := make([]models.Student, 0, len(docs))
	for _, doc := range docs {
		students = append(students, doc.model())
	}
	return students, total, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

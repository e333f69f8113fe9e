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

type teacherDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	FirstName      string             `bson:"firstName"`
	LastName       string             `bson:"lastName"`
	Email          string             `bson:"email"`
	PhoneNumber    string             `bson:"phoneNumber"`
	Department     string             `bson:"department"`
	Designation    string             `bson:"designation"`
	EmployeeID     string             `bson:"employeeId"`
	Specialization string             `bson:"specialization"`
	JoiningDate    string             `bson:"joiningDate"`
	Password       string             `bson:"password"`
	CollegeID      interface{}        `bson:"collegeId"`
	CollegeName    string             `bson:"collegeName"`
	Status         string             `bson:"status"`
	Roles          []string           `bson:"roles"`
	CreatedAt      time.Time          `bson:"createdAt"`
	LastUpdated    time.Time          `bson:"lastUpdated"`
}

func (d teacherDoc) model() models.Teacher {
	return models.Teacher{
		ID:             d.ID.Hex(),
		CollegeID:      refString(d.CollegeID),
		CollegeName:    d.CollegeName,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		PhoneNumber:    d.PhoneNumber,
		Department:     d.Department,
		Designation:    d.Designation,
		EmployeeID:     d.EmployeeID,
		Specialization: d.Specialization,
		JoiningDate:    d.JoiningDate,
		PasswordHash:   d.Password,
		Status:         d.Status,
		Roles:          d.Roles,
		CreatedAt:      d.CreatedAt,
		LastUpdated:    d.LastUpdated,
	}
}

// TeacherRepository persists teacher accounts in the teachers collection.
type TeacherRepository struct {
	coll *mongo.Collection
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{coll: db.Collection(TeachersCollection)}
}

// ExistsByEmailOrEmployeeID checks both uniqueness keys within one college.
func (r *TeacherRepository) ExistsByEmailOrEmployeeID(ctx context.Context, collegeID, email, employeeID string) (bool, error) {
	filter := bson.M{
		"collegeId": refValue(collegeID),
		"$or": bson.A{
			bson.M{"email": email},
			bson.M{"employeeId": employeeID},
		},
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check teacher identifiers: %w", err)
	}
	return n > 0, nil
}

// Create inserts a teacher and assigns its ID.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	doc := teacherDoc{
		ID:             primitive.NewObjectID(),
		FirstName:      teacher.FirstName,
		LastName:       teacher.LastName,
		Email:          teacher.Email,
		PhoneNumber:    teacher.PhoneNumber,
		Department:     teacher.Department,
		Designation:    teacher.Designation,
		EmployeeID:     teacher.EmployeeID,
		Specialization: teacher.Specialization,
		JoiningDate:    teacher.JoiningDate,
		Password:       teacher.PasswordHash,
		CollegeID:      refValue(teacher.CollegeID),
		CollegeName:    teacher.CollegeName,
		Status:         teacher.Status,
		Roles:          teacher.Roles,
		CreatedAt:      teacher.CreatedAt,
		LastUpdated:    teacher.LastUpdated,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return writeError("create teacher", err)
	}
	teacher.ID = doc.ID.Hex()
	return nil
}

// List returns one page of a college's teachers and the total match count.
func (r *TeacherRepository) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, int64, error) {
	query := bson.M{"collegeId": refValue(filter.CollegeID)}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		query["$or"] = bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
			bson.M{"email": pattern},
			bson.M{"employeeId": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count teachers: %w", err)
	}

	limit, skip := pageOptions(filter.Page, filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list teachers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []teacherDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode teachers: %w", err)
	}

	teachers := make([]models.Teacher, 0, len(docs))
	for _, doc := range docs {
		teachers = append(teachers, doc.model())
	}
	return teachers, total, nil
}

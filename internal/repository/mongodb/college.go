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

type collegeDoc struct {
	ID                 primitive.ObjectID        `bson:"_id,omitempty"`
	CollegeName        string                    `bson:"collegeName"`
	RegistrationNumber string                    `bson:"registrationNumber"`
	Email              string                    `bson:"email"`
	PhoneNumber        string                    `bson:"phoneNumber"`
	Address            models.Address            `bson:"address"`
	Principal          models.Contact            `bson:"principal"`
	Controller         models.Contact            `bson:"controller"`
	Password           string                    `bson:"password"`
	Status             string                    `bson:"status"`
	VerificationStatus models.VerificationStatus `bson:"verificationStatus"`
	RegistrationDate   time.Time                 `bson:"registrationDate"`
	LastUpdated        time.Time                 `bson:"lastUpdated"`
}

func (d collegeDoc) model() *models.College {
	return &models.College{
		ID:                 d.ID.Hex(),
		CollegeName:        d.CollegeName,
		RegistrationNumber: d.RegistrationNumber,
		Email:              d.Email,
		PhoneNumber:        d.PhoneNumber,
		Address:            d.Address,
		Principal:          d.Principal,
		Controller:         d.Controller,
		PasswordHash:       d.Password,
		Status:             models.CollegeStatus(d.Status),
		VerificationStatus: d.VerificationStatus,
		RegistrationDate:   d.RegistrationDate,
		LastUpdated:        d.LastUpdated,
	}
}

// CollegeRepository persists colleges in the colleges collection.
type CollegeRepository struct {
	coll *mongo.Collection
}

// NewCollegeRepository constructs a CollegeRepository.
func NewCollegeRepository(db *mongo.Database) *CollegeRepository {
	return &CollegeRepository{coll: db.Collection(CollegesCollection)}
}

// Create inserts a college and assigns its ID.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	doc := collegeDoc{
		ID:                 primitive.NewObjectID(),
		CollegeName:        college.CollegeName,
		RegistrationNumber: college.RegistrationNumber,
		Email:              college.Email,
		PhoneNumber:        college.PhoneNumber,
		Address:            college.Address,
		Principal:          college.Principal,
		Controller:         college.Controller,
		Password:           college.PasswordHash,
		Status:             string(college.Status),
		VerificationStatus: college.VerificationStatus,
		RegistrationDate:   college.RegistrationDate,
		LastUpdated:        college.LastUpdated,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return writeError("create college", err)
	}
	college.ID = doc.ID.Hex()
	return nil
}

// FindByID fetches a college by its hex ObjectID.
func (r *CollegeRepository) FindByID(ctx context.Context, id string) (*models.College, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, appErrors.ErrNoRecord
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail fetches a college by login email.
func (r *CollegeRepository) FindByEmail(ctx context.Context, email string) (*models.College, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CollegeRepository) findOne(ctx context.Context, filter bson.M) (*models.College, error) {
	var doc collegeDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.ErrNoRecord
		}
		return nil, fmt.Errorf("find college: %w", err)
	}
	return doc.model(), nil
}

// ExistsByEmailOrRegistration reports whether either identifier is taken.
func (r *CollegeRepository) ExistsByEmailOrRegistration(ctx context.Context, email, registrationNumber string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"registrationNumber": registrationNumber},
	}}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check college identifiers: %w", err)
	}
	return n > 0, nil
}

// UpdateStatus moves a college through the approval workflow.
func (r *CollegeRepository) UpdateStatus(ctx context.Context, id string, status models.CollegeStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return appErrors.ErrNoRecord
	}
	update := bson.M{"$set": bson.M{"status": string(status), "lastUpdated": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update college status: %w", err)
	}
	if res.MatchedCount == 0 {
		return appErrors.ErrNoRecord
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

const collegeColumns = `id, college_name, registration_number, email, phone_number,
	address_street, address_city, address_state, address_zip_code,
	principal_name, principal_email, principal_phone,
	controller_name, controller_email, controller_phone,
	password_hash, status, documents_verified, email_verified, phone_verified,
	registration_date, last_updated`

type collegeRow struct {
	ID                 string    `db:"id"`
	CollegeName        string    `db:"college_name"`
	RegistrationNumber string    `db:"registration_number"`
	Email              string    `db:"email"`
	PhoneNumber        string    `db:"phone_number"`
	AddressStreet      string    `db:"address_street"`
	AddressCity        string    `db:"address_city"`
	AddressState       string    `db:"address_state"`
	AddressZipCode     string    `db:"address_zip_code"`
	PrincipalName      string    `db:"principal_name"`
	PrincipalEmail     string    `db:"principal_email"`
	PrincipalPhone     string    `db:"principal_phone"`
	ControllerName     string    `db:"controller_name"`
	ControllerEmail    string    `db:"controller_email"`
	ControllerPhone    string    `db:"controller_phone"`
	PasswordHash       string    `db:"password_hash"`
	Status             string    `db:"status"`
	DocumentsVerified  bool      `db:"documents_verified"`
	EmailVerified      bool      `db:"email_verified"`
	PhoneVerified      bool      `db:"phone_verified"`
	RegistrationDate   time.Time `db:"registration_date"`
	LastUpdated        time.Time `db:"last_updated"`
}

func newCollegeRow(c *models.College) collegeRow {
	return collegeRow{
		ID:                 c.ID,
		CollegeName:        c.CollegeName,
		RegistrationNumber: c.RegistrationNumber,
		Email:              c.Email,
		PhoneNumber:        c.PhoneNumber,
		AddressStreet:      c.Address.Street,
		AddressCity:        c.Address.City,
		AddressState:       c.Address.State,
		AddressZipCode:     c.Address.ZipCode,
		PrincipalName:      c.Principal.Name,
		PrincipalEmail:     c.Principal.Email,
		PrincipalPhone:     c.Principal.Phone,
		ControllerName:     c.Controller.Name,
		ControllerEmail:    c.Controller.Email,
		ControllerPhone:    c.Controller.Phone,
		PasswordHash:       c.PasswordHash,
		Status:             string(c.Status),
		DocumentsVerified:  c.VerificationStatus.Documents,
		EmailVerified:      c.VerificationStatus.Email,
		PhoneVerified:      c.VerificationStatus.Phone,
		RegistrationDate:   c.RegistrationDate,
		LastUpdated:        c.LastUpdated,
	}
}

func (r collegeRow) model() *models.College {
	return &models.College{
		ID:                 r.ID,
		CollegeName:        r.CollegeName,
		RegistrationNumber: r.RegistrationNumber,
		Email:              r.Email,
		PhoneNumber:        r.PhoneNumber,
		Address:            models.Address{Street: r.AddressStreet, City: r.AddressCity, State: r.AddressState, ZipCode: r.AddressZipCode},
		Principal:          models.Contact{Name: r.PrincipalName, Email: r.PrincipalEmail, Phone: r.PrincipalPhone},
		Controller:         models.Contact{Name: r.ControllerName, Email: r.ControllerEmail, Phone: r.ControllerPhone},
		PasswordHash:       r.PasswordHash,
		Status:             models.CollegeStatus(r.Status),
		VerificationStatus: models.VerificationStatus{Documents: r.DocumentsVerified, Email: r.EmailVerified, Phone: r.PhoneVerified},
		RegistrationDate:   r.RegistrationDate,
		LastUpdated:        r.LastUpdated,
	}
}

// CollegeRepository persists colleges in PostgreSQL.
type CollegeRepository struct {
	db *sqlx.DB
}

// NewCollegeRepository constructs a CollegeRepository.
func NewCollegeRepository(db *sqlx.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create inserts a college, assigning its ID.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	if college.ID == "" {
		college.ID = uuid.NewString()
	}
	const query = `INSERT INTO colleges (` + collegeColumns + `)
		VALUES (:id, :college_name, :registration_number, :email, :phone_number,
		:address_street, :address_city, :address_state, :address_zip_code,
		:principal_name, :principal_email, :principal_phone,
		:controller_name, :controller_email, :controller_phone,
		:password_hash, :status, :documents_verified, :email_verified, :phone_verified,
		:registration_date, :last_updated)`
	if _, err := r.db.NamedExecContext(ctx, query, newCollegeRow(college)); err != nil {
		return pgError("create college", err)
	}
	return nil
}

// FindByID fetches a college by ID.
func (r *CollegeRepository) FindByID(ctx context.Context, id string) (*models.College, error) {
	if !validID(id) {
		return nil, appErrors.ErrNoRecord
	}
	return r.findOne(ctx, "find college", `SELECT `+collegeColumns+` FROM colleges WHERE id = $1`, id)
}

// FindByEmail fetches a college by login email.
func (r *CollegeRepository) FindByEmail(ctx context.Context, email string) (*models.College, error) {
	return r.findOne(ctx, "find college by email", `SELECT `+collegeColumns+` FROM colleges WHERE email = $1`, email)
}

func (r *CollegeRepository) findOne(ctx context.Context, op, query string, arg interface{}) (*models.College, error) {
	var row collegeRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNoRecord
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return row.model(), nil
}

// ExistsByEmailOrRegistration reports whether either identifier is taken.
func (r *CollegeRepository) ExistsByEmailOrRegistration(ctx context.Context, email, registrationNumber string) (bool, error) {
	const query = `SELECT 1 FROM colleges WHERE email = $1 OR registration_number = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email, registrationNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check college identifiers: %w", err)
	}
	return true, nil
}

// UpdateStatus moves a college through the approval workflow.
func (r *CollegeRepository) UpdateStatus(ctx context.Context, id string, status models.CollegeStatus) error {
	if !validID(id) {
		return appErrors.ErrNoRecord
	}
	const query = `UPDATE colleges SET status = $2, last_updated = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, string(status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update college status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.ErrNoRecord
	}
	return nil
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

const (
	msgCollegeFieldsRequired = "All fields are required"
	msgCollegeExists         = "College registration number or email already exists"
	msgLoginFieldsRequired   = "Email and password are required"
	msgCollegeUnavailable    = "College not found or not approved"
	msgCollegeNotFound       = "College not found"
)

// CollegeConfig toggles optional login policy.
type CollegeConfig struct {
	RequireApprovedLogin bool
}

// CollegeService handles college registration, login and approval.
type CollegeService struct {
	repo      CollegeRepository
	hasher    PasswordHasher
	tokens    *TokenService
	validator *validator.Validate
	logger    *zap.Logger
	config    CollegeConfig
	now       func() time.Time
}

// NewCollegeService constructs a CollegeService.
func NewCollegeService(repo CollegeRepository, hasher PasswordHasher, tokens *TokenService, validate *validator.Validate, logger *zap.Logger, config CollegeConfig) *CollegeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	return &CollegeService{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		validator: validate,
		logger:    logger,
		config:    config,
		now:       time.Now,
	}
}

// Register creates a pending college after checking email and registration number are free.
func (s *CollegeService) Register(ctx context.Context, req models.RegisterCollegeRequest) (*models.RegisterCollegeResponse, error) {
	req.Email = normalizeEmail(req.Email)
	req.RegistrationNumber = strings.TrimSpace(req.RegistrationNumber)
	req.CollegeName = strings.TrimSpace(req.CollegeName)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgCollegeFieldsRequired)
	}

	exists, err := s.repo.ExistsByEmailOrRegistration(ctx, req.Email, req.RegistrationNumber)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check college uniqueness")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, msgCollegeExists)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	now := s.now().UTC()
	college := &models.College{
		CollegeName:        req.CollegeName,
		RegistrationNumber: req.RegistrationNumber,
		Email:              req.Email,
		PhoneNumber:        strings.TrimSpace(req.PhoneNumber),
		Address:            req.Address,
		Principal:          req.Principal,
		Controller:         req.Controller,
		PasswordHash:       hash,
		Status:             models.CollegeStatusPending,
		RegistrationDate:   now,
		LastUpdated:        now,
	}
	if err := s.repo.Create(ctx, college); err != nil {
		if appErrors.IsDuplicate(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, msgCollegeExists)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register college")
	}

	s.logger.Info("college registered", zap.String("college_id", college.ID))
	return &models.RegisterCollegeResponse{
		CollegeID: college.ID,
		CollegeInfo: models.CollegeInfo{
			CollegeName:        college.CollegeName,
			RegistrationNumber: college.RegistrationNumber,
			Email:              college.Email,
			Status:             college.Status,
		},
	}, nil
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords produce the same error.
func (s *CollegeService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgLoginFieldsRequired)
	}

	college, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if appErrors.IsNoRecord(err) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch college")
	}

	if err := s.hasher.Compare(college.PasswordHash, req.Password); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	if s.config.RequireApprovedLogin && college.Status != models.CollegeStatusApproved {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "college account is not approved")
	}

	token, expiry, err := s.tokens.Issue(college)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	return &models.LoginResponse{
		CollegeID:   college.ID,
		CollegeName: college.CollegeName,
		Email:       college.Email,
		AccessToken: token,
		ExpiresIn:   int64(expiry.Seconds()),
	}, nil
}

// Get returns the college profile.
func (s *CollegeService) Get(ctx context.Context, id string) (*models.College, error) {
	college, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if appErrors.IsNoRecord(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "College not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch college")
	}
	return college, nil
}

// SetStatus moves a college through the approval workflow.
func (s *CollegeService) SetStatus(ctx context.Context, id string, status models.CollegeStatus) error {
	if !status.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "status must be one of: pending, approved, rejected")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if appErrors.IsNoRecord(err) {
			return appErrors.Clone(appErrors.ErrNotFound, msgCollegeNotFound)
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update college status")
	}
	s.logger.Info("college status changed", zap.String("college_id", id), zap.String("status", string(status)))
	return nil
}

// existingCollege loads the acting college whatever its approval status.
func existingCollege(ctx context.Context, repo CollegeRepository, id string) (*models.College, error) {
	college, err := repo.FindByID(ctx, id)
	if err != nil {
		if appErrors.IsNoRecord(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, msgCollegeNotFound)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch college")
	}
	return college, nil
}

// approvedCollege loads the acting college and requires it to be approved.
func approvedCollege(ctx context.Context, repo CollegeRepository, id string) (*models.College, error) {
	college, err := repo.FindByID(ctx, id)
	if err != nil {
		if appErrors.IsNoRecord(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, msgCollegeUnavailable)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch college")
	}
	if college.Status != models.CollegeStatusApproved {
		return nil, appErrors.Clone(appErrors.ErrNotFound, msgCollegeUnavailable)
	}
	return college, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

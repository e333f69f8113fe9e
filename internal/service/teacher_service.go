package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

const msgTeacherExists = "Teacher with this email or employee ID already exists"

// TeacherService onboards teachers for a college.
type TeacherService struct {
	colleges  CollegeRepository
	repo      TeacherRepository
	hasher    PasswordHasher
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(colleges CollegeRepository, repo TeacherRepository, hasher PasswordHasher, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	return &TeacherService{colleges: colleges, repo: repo, hasher: hasher, validator: validate, logger: logger}
}

// Create adds a teacher to an approved college.
func (s *TeacherService) Create(ctx context.Context, collegeID string, req models.CreateTeacherRequest) (*models.CreateTeacherResponse, error) {
	college, err := approvedCollege(ctx, s.colleges, collegeID)
	if err != nil {
		return nil, err
	}

	req.Email = normalizeEmail(req.Email)
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All required fields must be provided")
	}

	exists, err := s.repo.ExistsByEmailOrEmployeeID(ctx, college.ID, req.Email, req.EmployeeID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher uniqueness")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, msgTeacherExists)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	teacher := &models.Teacher{
		CollegeID:      college.ID,
		CollegeName:    college.CollegeName,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          req.Email,
		PhoneNumber:    strings.TrimSpace(req.PhoneNumber),
		Department:     strings.TrimSpace(req.Department),
		Designation:    strings.TrimSpace(req.Designation),
		EmployeeID:     req.EmployeeID,
		Specialization: strings.TrimSpace(req.Specialization),
		JoiningDate:    strings.TrimSpace(req.JoiningDate),
		PasswordHash:   hash,
		Status:         models.TeacherStatusActive,
		Roles:          []string{models.TeacherRole},
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		if appErrors.IsDuplicate(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, msgTeacherExists)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}

	s.logger.Info("teacher created", zap.String("college_id", college.ID), zap.String("teacher_id", teacher.ID))
	return &models.CreateTeacherResponse{
		TeacherID: teacher.ID,
		TeacherInfo: models.TeacherInfo{
			FirstName:   teacher.FirstName,
			LastName:    teacher.LastName,
			Email:       teacher.Email,
			Department:  teacher.Department,
			Designation: teacher.Designation,
		},
	}, nil
}

// List returns the teachers of a college.
func (s *TeacherService) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, *models.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	teachers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, models.NewPagination(filter.Page, filter.Limit, total), nil
}

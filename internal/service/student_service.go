package service

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/internal/roster"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

const msgStudentsExist = "Some students already exist"

// StudentService generates and persists student accounts in batches.
type StudentService struct {
	colleges    CollegeRepository
	repo        StudentRepository
	hasher      PasswordHasher
	metrics     *MetricsService
	logger      *zap.Logger
	emailDomain string
}

// NewStudentService constructs a StudentService. emailDomain is used for range
// generated addresses.
func NewStudentService(colleges CollegeRepository, repo StudentRepository, hasher PasswordHasher, metrics *MetricsService, logger *zap.Logger, emailDomain string) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	if emailDomain == "" {
		emailDomain = roster.DefaultEmailDomain
	}
	return &StudentService{
		colleges:    colleges,
		repo:        repo,
		hasher:      hasher,
		metrics:     metrics,
		logger:      logger,
		emailDomain: emailDomain,
	}
}

// BulkCreate persists an explicit roster for the college.
func (s *StudentService) BulkCreate(ctx context.Context, collegeID string, req models.BulkCreateStudentsRequest) (*models.StudentBatchResult, error) {
	college, accounts, err := s.prepareRoster(ctx, collegeID, req)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, college, accounts)
}

// PreviewBulk validates an explicit roster without persisting it.
func (s *StudentService) PreviewBulk(ctx context.Context, collegeID string, req models.BulkCreateStudentsRequest) (*models.StudentBatchPreview, error) {
	_, accounts, err := s.prepareRoster(ctx, collegeID, req)
	if err != nil {
		return nil, err
	}
	return preview(accounts), nil
}

// RangeCreate persists one account per roll number in the requested range.
func (s *StudentService) RangeCreate(ctx context.Context, collegeID string, req models.RangeCreateStudentsRequest) (*models.StudentBatchResult, error) {
	college, accounts, err := s.prepareRange(ctx, collegeID, req)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, college, accounts)
}

// PreviewRange validates a range without persisting it.
func (s *StudentService) PreviewRange(ctx context.Context, collegeID string, req models.RangeCreateStudentsRequest) (*models.StudentBatchPreview, error) {
	_, accounts, err := s.prepareRange(ctx, collegeID, req)
	if err != nil {
		return nil, err
	}
	return preview(accounts), nil
}

// List returns the students of a college.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	students, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, models.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *StudentService) prepareRoster(ctx context.Context, collegeID string, req models.BulkCreateStudentsRequest) (*models.College, []roster.Account, error) {
	accounts, err := roster.FromEntries(req.Students, req.Password)
	if err != nil {
		return nil, nil, s.rejectGenerated(err)
	}
	return s.checkBatch(ctx, collegeID, accounts)
}

func (s *StudentService) prepareRange(ctx context.Context, collegeID string, req models.RangeCreateStudentsRequest) (*models.College, []roster.Account, error) {
	accounts, err := roster.FromRange(roster.RangeSpec{
		Year:       req.Year,
		Division:   req.Division,
		Department: req.Department,
		StartRoll:  req.StartRollNumber.String(),
		EndRoll:    req.EndRollNumber.String(),
	}, req.Password, s.emailDomain)
	if err != nil {
		return nil, nil, s.rejectGenerated(err)
	}
	return s.checkBatch(ctx, collegeID, accounts)
}

func (s *StudentService) checkBatch(ctx context.Context, collegeID string, accounts []roster.Account) (*models.College, []roster.Account, error) {
	college, err := existingCollege(ctx, s.colleges, collegeID)
	if err != nil {
		s.metrics.BatchRejected(RejectCollege)
		return nil, nil, err
	}

	emails, usernames := roster.Keys(accounts)
	start := time.Now()
	conflicts, err := s.repo.FindConflicts(ctx, college.ID, emails, usernames)
	s.metrics.ObserveStore("students.find_conflicts", time.Since(start))
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing students")
	}
	if !conflicts.Empty() {
		s.metrics.BatchRejected(RejectDuplicate)
		return nil, nil, appErrors.WithDetails(appErrors.ErrDuplicate, msgStudentsExist, conflicts)
	}
	return college, accounts, nil
}

func (s *StudentService) persist(ctx context.Context, college *models.College, accounts []roster.Account) (*models.StudentBatchResult, error) {
	students, err := s.hashAccounts(ctx, college, accounts)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash passwords")
	}

	start := time.Now()
	ids, err := s.repo.CreateMany(ctx, students)
	s.metrics.ObserveStore("students.create_many", time.Since(start))
	if err != nil {
		if appErrors.IsDuplicate(err) {
			s.metrics.BatchRejected(RejectDuplicate)
			return nil, appErrors.Clone(appErrors.ErrDuplicate, msgStudentsExist)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create students")
	}

	s.metrics.StudentsCreated(len(ids))
	s.logger.Info("students created", zap.String("college_id", college.ID), zap.Int("count", len(ids)))
	return &models.StudentBatchResult{CreatedCount: len(ids), StudentIDs: ids}, nil
}

// hashAccounts hashes every password with a fresh salt. Hashing is bounded by
// GOMAXPROCS and the first failure cancels the remaining work.
func (s *StudentService) hashAccounts(ctx context.Context, college *models.College, accounts []roster.Account) ([]*models.Student, error) {
	students := make([]*models.Student, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hash, err := s.hasher.Hash(account.Password)
			if err != nil {
				return err
			}
			students[i] = &models.Student{
				CollegeID:    college.ID,
				CollegeName:  college.CollegeName,
				FirstName:    account.FirstName,
				LastName:     account.LastName,
				Email:        account.Email,
				RollNumber:   account.RollNumber,
				Division:     account.Division,
				Year:         account.Year,
				Course:       account.Course,
				Department:   account.Department,
				Username:     account.Username,
				PasswordHash: hash,
				Status:       models.StudentStatusActive,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return students, nil
}

// rejectGenerated maps generator errors onto client errors.
func (s *StudentService) rejectGenerated(err error) error {
	var fieldErr *roster.FieldError
	var dupErr *roster.DuplicateEntryError
	switch {
	case errors.Is(err, roster.ErrEmptyRoster):
		s.metrics.BatchRejected(RejectInvalid)
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "No student data provided")
	case errors.As(err, &fieldErr):
		s.metrics.BatchRejected(RejectInvalid)
		details := map[string]interface{}{"fields": fieldErr.Fields}
		if fieldErr.Index >= 0 {
			details["index"] = fieldErr.Index
		}
		return appErrors.WithDetails(appErrors.ErrValidation, capitalize(fieldErr.Error()), details)
	case errors.As(err, &dupErr):
		s.metrics.BatchRejected(RejectDuplicate)
		return appErrors.WithDetails(appErrors.ErrDuplicate, "Batch contains duplicate students", models.StudentConflicts{
			Emails:    dupErr.Emails,
			Usernames: dupErr.Usernames,
		})
	default:
		s.metrics.BatchRejected(RejectInvalid)
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, capitalize(err.Error()))
	}
}

func preview(accounts []roster.Account) *models.StudentBatchPreview {
	out := &models.StudentBatchPreview{DryRun: true, Count: len(accounts), Students: make([]models.StudentPreview, 0, len(accounts))}
	for _, a := range accounts {
		out.Students = append(out.Students, a.Preview())
	}
	return out
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func normalizePage(page, limit int) (int, int) {
	page = models.ClampPage(page)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

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
	msgTaskFieldsRequired = "Missing required fields: teacherName, subject, class, dateOfExam."
	msgTaskUpdateRequired = "Task ID and status are required."
	msgTaskInvalidStatus  = "Invalid status. Must be one of: Pending, In Progress, Completed, Cancelled"
	msgTaskNotFound       = "Exam task not found"
	examDateLayout        = "2006-01-02"
)

// ExamTaskService schedules exam tasks and tracks their status.
type ExamTaskService struct {
	repo      ExamTaskRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewExamTaskService constructs an ExamTaskService.
func NewExamTaskService(repo ExamTaskRepository, validate *validator.Validate, logger *zap.Logger) *ExamTaskService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamTaskService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// Create schedules a task. The status defaults to Pending.
func (s *ExamTaskService) Create(ctx context.Context, req models.CreateExamTaskRequest) (*models.ExamTask, error) {
	req.TeacherName = strings.TrimSpace(req.TeacherName)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Class = strings.TrimSpace(req.Class)
	req.DateOfExam = strings.TrimSpace(req.DateOfExam)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgTaskFieldsRequired)
	}

	date, err := parseDate(req.DateOfExam)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dateOfExam must be a date (YYYY-MM-DD or RFC 3339)")
	}

	status := models.ExamTaskPending
	if raw := strings.TrimSpace(req.Status); raw != "" {
		status = models.ExamTaskStatus(raw)
		if !status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, msgTaskInvalidStatus)
		}
	}

	task := &models.ExamTask{
		TeacherName: req.TeacherName,
		Subject:     req.Subject,
		Class:       req.Class,
		DateOfExam:  date,
		Status:      status,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exam task")
	}
	return task, nil
}

// List returns every task ordered by exam date, earliest first.
func (s *ExamTaskService) List(ctx context.Context) ([]models.ExamTask, error) {
	tasks, err := s.repo.ListByExamDate(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exam tasks")
	}
	return tasks, nil
}

// UpdateStatus transitions a task to any of the known statuses.
func (s *ExamTaskService) UpdateStatus(ctx context.Context, req models.UpdateExamTaskStatusRequest) (*models.ExamTask, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Status = strings.TrimSpace(req.Status)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgTaskUpdateRequired)
	}
	status := models.ExamTaskStatus(req.Status)
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, msgTaskInvalidStatus)
	}

	task, err := s.repo.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		if appErrors.IsNoRecord(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, msgTaskNotFound)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update exam task")
	}
	s.logger.Info("exam task status updated", zap.String("task_id", task.ID), zap.String("status", string(task.Status)))
	return task, nil
}

// parseDate accepts RFC 3339 timestamps or plain calendar dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(examDateLayout, raw)
}

package service

import (
	"context"

	"github.com/noah-isme/college-portal-api/internal/models"
)

// CollegeRepository stores colleges. Lookups that match nothing return
// appErrors.ErrNoRecord; unique violations wrap appErrors.ErrDuplicate.
type CollegeRepository interface {
	Create(ctx context.Context, college *models.College) error
	FindByID(ctx context.Context, id string) (*models.College, error)
	FindByEmail(ctx context.Context, email string) (*models.College, error)
	ExistsByEmailOrRegistration(ctx context.Context, email, registrationNumber string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status models.CollegeStatus) error
}

// StudentRepository stores generated student accounts.
type StudentRepository interface {
	FindConflicts(ctx context.Context, collegeID string, emails, usernames []string) (models.StudentConflicts, error)
	CreateMany(ctx context.Context, students []*models.Student) ([]string, error)
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int64, error)
}

// TeacherRepository stores teacher accounts.
type TeacherRepository interface {
	ExistsByEmailOrEmployeeID(ctx context.Context, collegeID, email, employeeID string) (bool, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, int64, error)
}

// ExamTaskRepository stores exam tasks.
type ExamTaskRepository interface {
	Create(ctx context.Context, task *models.ExamTask) error
	ListByExamDate(ctx context.Context) ([]models.ExamTask, error)
	UpdateStatus(ctx context.Context, id string, status models.ExamTaskStatus) (*models.ExamTask, error)
}

// ResultRepository stores exam results.
type ResultRepository interface {
	Create(ctx context.Context, result *models.Result) error
	Query(ctx context.Context, q models.ResultQuery) ([]models.Result, int64, error)
}

// Repositories bundles one backend's repositories.
type Repositories struct {
	Colleges  CollegeRepository
	Students  StudentRepository
	Teachers  TeacherRepository
	ExamTasks ExamTaskRepository
	Results   ResultRepository
}

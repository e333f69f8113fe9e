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

const examTaskColumns = `id, teacher_name, subject, class_name, date_of_exam, status, created_at`

// ExamTaskRepository persists exam tasks in PostgreSQL.
type ExamTaskRepository struct {
	db *sqlx.DB
}

// NewExamTaskRepository constructs an ExamTaskRepository.
func NewExamTaskRepository(db *sqlx.DB) *ExamTaskRepository {
	return &ExamTaskRepository{db: db}
}

// Create inserts a task, assigning its ID.
func (r *ExamTaskRepository) Create(ctx context.Context, task *models.ExamTask) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO exam_tasks (` + examTaskColumns + `)
		VALUES (:id, :teacher_name, :subject, :class_name, :date_of_exam, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return pgError("create exam task", err)
	}
	return nil
}

// ListByExamDate returns every task, earliest exam first.
func (r *ExamTaskRepository) ListByExamDate(ctx context.Context) ([]models.ExamTask, error) {
	const query = `SELECT ` + examTaskColumns + ` FROM exam_tasks ORDER BY date_of_exam ASC, created_at ASC`
	var tasks []models.ExamTask
	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, fmt.Errorf("list exam tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus sets the status of a task and returns the updated row.
func (r *ExamTaskRepository) UpdateStatus(ctx context.Context, id string, status models.ExamTaskStatus) (*models.ExamTask, error) {
	if !validID(id) {
		return nil, appErrors.ErrNoRecord
	}
	const query = `UPDATE exam_tasks SET status = $2 WHERE id = $1 RETURNING ` + examTaskColumns
	var task models.ExamTask
	if err := r.db.GetContext(ctx, &task, query, id, string(status)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNoRecord
		}
		return nil, fmt.Errorf("update exam task status: %w", err)
	}
	return &task, nil
}

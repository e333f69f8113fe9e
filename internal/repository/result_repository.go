package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-portal-api/internal/models"
)

const resultColumns = `id, student_id, class_name, subject, exam_id, teacher_id, score, grade, status, exam_date, created_at`

var resultSortColumns = map[string]string{
	models.ResultSortExamDate:  "exam_date",
	models.ResultSortScore:     "score",
	models.ResultSortCreatedAt: "created_at",
	models.ResultSortStudentID: "student_id",
	models.ResultSortClassName: "class_name",
	models.ResultSortSubject:   "subject",
	models.ResultSortGrade:     "grade",
}

// ResultRepository persists exam results in PostgreSQL.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository constructs a ResultRepository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create inserts a result, assigning its ID.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO results (` + resultColumns + `)
		VALUES (:id, :student_id, :class_name, :subject, :exam_id, :teacher_id, :score, :grade, :status, :exam_date, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, result); err != nil {
		return pgError("create result", err)
	}
	return nil
}

// Query returns one page of results matching q and the total match count.
func (r *ResultRepository) Query(ctx context.Context, q models.ResultQuery) ([]models.Result, int64, error) {
	where := resultConditions(q.Filter)

	column, ok := resultSortColumns[q.SortField]
	if !ok {
		column = "exam_date"
	}
	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	builder := psql.Select(resultColumns).
		From("results").
		Where(where).
		OrderBy(column+" "+direction, "id "+direction)
	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit)).Offset(uint64(q.Offset()))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build result query: %w", err)
	}

	var results []models.Result
	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, 0, fmt.Errorf("query results: %w", err)
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("results").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build result count: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count results: %w", err)
	}

	return results, total, nil
}

func resultConditions(f models.ResultFilter) squirrel.And {
	where := squirrel.And{}
	for _, match := range []struct {
		column string
		values []string
	}{
		{"student_id", f.StudentIDs},
		{"class_name", f.ClassNames},
		{"subject", f.Subjects},
		{"exam_id", f.ExamIDs},
		{"teacher_id", f.TeacherIDs},
	} {
		if len(match.values) > 0 {
			where = append(where, squirrel.Eq{match.column: match.values})
		}
	}
	if f.MinScore != nil {
		where = append(where, squirrel.GtOrEq{"score": *f.MinScore})
	}
	if f.MaxScore != nil {
		where = append(where, squirrel.LtOrEq{"score": *f.MaxScore})
	}
	if f.DateFrom != nil {
		where = append(where, squirrel.GtOrEq{"exam_date": *f.DateFrom})
	}
	if f.DateTo != nil {
		where = append(where, squirrel.LtOrEq{"exam_date": *f.DateTo})
	}
	return where
}

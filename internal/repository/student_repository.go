package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-portal-api/internal/models"
)

var studentColumns = []string{
	"id", "college_id", "college_name", "first_name", "last_name", "email", "roll_number",
	"division", "academic_year", "course", "department", "username", "password_hash",
	"status", "created_at", "last_updated",
}

// StudentRepository persists generated student accounts in PostgreSQL.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindConflicts returns the batch emails and usernames that already belong
// to a student of the same college.
func (r *StudentRepository) FindConflicts(ctx context.Context, collegeID string, emails, usernames []string) (models.StudentConflicts, error) {
	var out models.StudentConflicts
	if len(emails) == 0 && len(usernames) == 0 {
		return out, nil
	}

	query, args, err := psql.Select("email", "username").
		From("students").
		Where(squirrel.Eq{"college_id": collegeID}).
		Where(squirrel.Or{squirrel.Eq{"email": emails}, squirrel.Eq{"username": usernames}}).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("build conflict query: %w", err)
	}

	var rows []struct {
		Email    string `db:"email"`
		Username string `db:"username"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return out, fmt.Errorf("find student conflicts: %w", err)
	}

	emailSet, userSet := inSet(emails), inSet(usernames)
	for _, row := range rows {
		if _, ok := emailSet[row.Email]; ok {
			out.Emails = append(out.Emails, row.Email)
		}
		if _, ok := userSet[row.Username]; ok {
			out.Usernames = append(out.Usernames, row.Username)
		}
	}
	return out, nil
}

// CreateMany inserts every student with a single statement and returns the
// assigned IDs in input order.
func (r *StudentRepository) CreateMany(ctx context.Context, students []*models.Student) ([]string, error) {
	if len(students) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	rows := make([]models.Student, 0, len(students))
	ids := make([]string, 0, len(students))
	for _, s := range students {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		s.LastUpdated = now
		rows = append(rows, *s)
		ids = append(ids, s.ID)
	}

	query := fmt.Sprintf("INSERT INTO students (%s) VALUES (:%s)",
		strings.Join(studentColumns, ", "), strings.Join(studentColumns, ", :"))
	if _, err := r.db.NamedExecContext(ctx, query, rows); err != nil {
		return nil, pgError("create students", err)
	}
	return ids, nil
}

// List returns one page of a college's students and the total match count.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int64, error) {
	where := squirrel.And{squirrel.Eq{"college_id": filter.CollegeID}}
	if filter.Year != "" {
		where = append(where, squirrel.Eq{"academic_year": filter.Year})
	}
	if filter.Division != "" {
		where = append(where, squirrel.Eq{"division": filter.Division})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"first_name": like},
			squirrel.ILike{"last_name": like},
			squirrel.ILike{"email": like},
			squirrel.ILike{"username": like},
		})
	}

	limit, offset := pageBounds(filter.Page, filter.Limit)
	query, args, err := psql.Select(studentColumns...).
		From("students").
		Where(where).
		OrderBy("academic_year", "division", "roll_number").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build student list: %w", err)
	}

	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("students").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build student count: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}

	return students, total, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/college-portal-api/internal/models"
)

var teacherColumns = []string{
	"id", "college_id", "college_name", "first_name", "last_name", "email", "phone_number",
	"department", "designation", "employee_id", "specialization", "joining_date",
	"password_hash", "status", "roles", "created_at", "last_updated",
}

type teacherRow struct {
	ID             string         `db:"id"`
	CollegeID      string         `db:"college_id"`
	CollegeName    string         `db:"college_name"`
	FirstName      string         `db:"first_name"`
	LastName       string         `db:"last_name"`
	Email          string         `db:"email"`
	PhoneNumber    string         `db:"phone_number"`
	Department     string         `db:"department"`
	Designation    string         `db:"designation"`
	EmployeeID     string         `db:"employee_id"`
	Specialization string         `db:"specialization"`
	JoiningDate    string         `db:"joining_date"`
	PasswordHash   string         `db:"password_hash"`
	Status         string         `db:"status"`
	Roles          pq.StringArray `db:"roles"`
	CreatedAt      time.Time      `db:"created_at"`
	LastUpdated    time.Time      `db:"last_updated"`
}

func (r teacherRow) model() models.Teacher {
	return models.Teacher{
		ID:             r.ID,
		CollegeID:      r.CollegeID,
		CollegeName:    r.CollegeName,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		Department:     r.Department,
		Designation:    r.Designation,
		EmployeeID:     r.EmployeeID,
		Specialization: r.Specialization,
		JoiningDate:    r.JoiningDate,
		PasswordHash:   r.PasswordHash,
		Status:         r.Status,
		Roles:          []string(r.Roles),
		CreatedAt:      r.CreatedAt,
		LastUpdated:    r.LastUpdated,
	}
}

// TeacherRepository persists teacher accounts in PostgreSQL.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// ExistsByEmailOrEmployeeID checks both uniqueness keys within one college.
func (r *TeacherRepository) ExistsByEmailOrEmployeeID(ctx context.Context, collegeID, email, employeeID string) (bool, error) {
	const query = `SELECT 1 FROM teachers WHERE college_id = $1 AND (email = $2 OR employee_id = $3) LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, collegeID, email, employeeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check teacher identifiers: %w", err)
	}
	return true, nil
}

// Create inserts a new teacher record.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	row := teacherRow{
		ID:             teacher.ID,
		CollegeID:      teacher.CollegeID,
		CollegeName:    teacher.CollegeName,
		FirstName:      teacher.FirstName,
		LastName:       teacher.LastName,
		Email:          teacher.Email,
		PhoneNumber:    teacher.PhoneNumber,
		Department:     teacher.Department,
		Designation:    teacher.Designation,
		EmployeeID:     teacher.EmployeeID,
		Specialization: teacher.Specialization,
		JoiningDate:    teacher.JoiningDate,
		PasswordHash:   teacher.PasswordHash,
		Status:         teacher.Status,
		Roles:          pq.StringArray(teacher.Roles),
		CreatedAt:      teacher.CreatedAt,
		LastUpdated:    teacher.LastUpdated,
	}

	query := fmt.Sprintf("INSERT INTO teachers (%s) VALUES (:%s)",
		strings.Join(teacherColumns, ", "), strings.Join(teacherColumns, ", :"))
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return pgError("create teacher", err)
	}
	return nil
}

// List returns one page of a college's teachers and the total match count.
func (r *TeacherRepository) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, int64, error) {
	where := squirrel.And{squirrel.Eq{"college_id": filter.CollegeID}}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"first_name": like},
			squirrel.ILike{"last_name": like},
			squirrel.ILike{"email": like},
			squirrel.ILike{"employee_id": like},
		})
	}

	limit, offset := pageBounds(filter.Page, filter.Limit)
	query, args, err := psql.Select(teacherColumns...).
		From("teachers").
		Where(where).
		OrderBy("last_name", "first_name").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build teacher list: %w", err)
	}

	var rows []teacherRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list teachers: %w", err)
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("teachers").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build teacher count: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count teachers: %w", err)
	}

	teachers := make([]models.Teacher, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, row.model())
	}
	return teachers, total, nil
}

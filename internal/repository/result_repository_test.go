package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/models"
)

var resultColumnList = []string{"id", "student_id", "class_name", "subject", "exam_id", "teacher_id", "score", "grade", "status", "exam_date", "created_at"}

func TestResultRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectExec("INSERT INTO results").
		WithArgs(sqlmock.AnyArg(), "s1", "FY-A", "Math", "mid-1", "", 0.0, "F", "fail", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	result := &models.Result{StudentID: "s1", ClassName: "FY-A", Subject: "Math", ExamID: "mid-1", Grade: "F", Status: "fail", ExamDate: time.Now()}
	require.NoError(t, repo.Create(context.Background(), result))
	assert.NotEmpty(t, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryQueryScoreRange(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	lo, hi := 50.0, 80.0
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+resultColumns+" FROM results WHERE (score >= $1 AND score <= $2) ORDER BY exam_date DESC, id DESC LIMIT 20 OFFSET 20")).
		WithArgs(lo, hi).
		WillReturnRows(sqlmock.NewRows(resultColumnList).
			AddRow("r1", "s1", "FY-A", "Math", "mid-1", "t1", 55.0, "C", "pass", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM results WHERE (score >= $1 AND score <= $2)")).
		WithArgs(lo, hi).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

	results, total, err := repo.Query(context.Background(), models.ResultQuery{
		Filter:    models.ResultFilter{MinScore: &lo, MaxScore: &hi},
		Page:      2,
		Limit:     20,
		SortField: models.ResultSortExamDate,
		SortDesc:  true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 55.0, results[0].Score)
	assert.Equal(t, int64(21), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryQueryListsAndUnknownSort(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM results WHERE (student_id IN ($1,$2) AND subject IN ($3)) ORDER BY exam_date ASC, id ASC LIMIT 10 OFFSET 0")).
		WithArgs("s1", "s2", "Math").
		WillReturnRows(sqlmock.NewRows(resultColumnList))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	results, total, err := repo.Query(context.Background(), models.ResultQuery{
		Filter:    models.ResultFilter{StudentIDs: []string{"s1", "s2"}, Subjects: []string{"Math"}},
		Page:      1,
		Limit:     10,
		SortField: "password",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

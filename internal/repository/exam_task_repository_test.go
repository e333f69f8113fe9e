package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

var examTaskColumnList = []string{"id", "teacher_name", "subject", "class_name", "date_of_exam", "status", "created_at"}

func TestExamTaskRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewExamTaskRepository(db)

	mock.ExpectExec("INSERT INTO exam_tasks").
		WithArgs(sqlmock.AnyArg(), "Ms. Hoover", "Math", "FY-A", sqlmock.AnyArg(), "Pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	task := &models.ExamTask{TeacherName: "Ms. Hoover", Subject: "Math", Class: "FY-A", DateOfExam: time.Now(), Status: models.ExamTaskPending}
	require.NoError(t, repo.Create(context.Background(), task))
	assert.NotEmpty(t, task.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamTaskRepositoryListByExamDate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewExamTaskRepository(db)

	early := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 0, 7)
	mock.ExpectQuery("FROM exam_tasks ORDER BY date_of_exam ASC").
		WillReturnRows(sqlmock.NewRows(examTaskColumnList).
			AddRow("t1", "A", "Math", "FY", early, "Pending", early).
			AddRow("t2", "B", "Physics", "SY", late, "Completed", early))

	tasks, err := repo.ListByExamDate(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, models.ExamTaskCompleted, tasks[1].Status)
	assert.Equal(t, "SY", tasks[1].Class)
}

func TestExamTaskRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewExamTaskRepository(db)

	id := "0f8fad5b-d9cb-469f-a165-70867728950e"
	now := time.Now()
	mock.ExpectQuery("UPDATE exam_tasks SET status = \\$2 WHERE id = \\$1 RETURNING").
		WithArgs(id, "In Progress").
		WillReturnRows(sqlmock.NewRows(examTaskColumnList).AddRow(id, "A", "Math", "FY", now, "In Progress", now))
	mock.ExpectQuery("UPDATE exam_tasks SET status").
		WithArgs(id, "Completed").
		WillReturnRows(sqlmock.NewRows(examTaskColumnList))

	task, err := repo.UpdateStatus(context.Background(), id, models.ExamTaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.ExamTaskInProgress, task.Status)

	_, err = repo.UpdateStatus(context.Background(), id, models.ExamTaskCompleted)
	assert.True(t, appErrors.IsNoRecord(err))

	_, err = repo.UpdateStatus(context.Background(), "bogus", models.ExamTaskCompleted)
	assert.True(t, appErrors.IsNoRecord(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

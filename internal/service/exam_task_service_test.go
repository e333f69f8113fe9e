package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
)

func TestExamTaskServiceCreateDefaultsToPending(t *testing.T) {
	repo := &mockExamTaskRepo{}
	svc := NewExamTaskService(repo, nil, zap.NewNop())

	task, err := svc.Create(context.Background(), models.CreateExamTaskRequest{
		TeacherName: "Ms. Iyer", Subject: "Physics", Class: "FY-A", DateOfExam: "2026-03-14",
	})
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, models.ExamTaskPending, task.Status)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), task.DateOfExam)
}

func TestExamTaskServiceCreateAcceptsRFC3339(t *testing.T) {
	svc := NewExamTaskService(&mockExamTaskRepo{}, nil, nil)

	task, err := svc.Create(context.Background(), models.CreateExamTaskRequest{
		TeacherName: "Ms. Iyer", Subject: "Physics", Class: "FY-A",
		DateOfExam: "2026-03-14T09:30:00+05:30", Status: "In Progress",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExamTaskInProgress, task.Status)
	assert.Equal(t, time.Date(2026, 3, 14, 4, 0, 0, 0, time.UTC), task.DateOfExam)
}

func TestExamTaskServiceCreateValidation(t *testing.T) {
	svc := NewExamTaskService(&mockExamTaskRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), models.CreateExamTaskRequest{TeacherName: "Ms. Iyer", Subject: "Physics"})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Missing required fields: teacherName, subject, class, dateOfExam.", appErr.Message)

	_, err = svc.Create(context.Background(), models.CreateExamTaskRequest{
		TeacherName: "Ms. Iyer", Subject: "Physics", Class: "FY-A", DateOfExam: "14/03/2026",
	})
	requireAppError(t, err, http.StatusBadRequest)

	_, err = svc.Create(context.Background(), models.CreateExamTaskRequest{
		TeacherName: "Ms. Iyer", Subject: "Physics", Class: "FY-A", DateOfExam: "2026-03-14", Status: "Done",
	})
	appErr = requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Message, "Invalid status")
}

func TestExamTaskServiceUpdateStatus(t *testing.T) {
	repo := &mockExamTaskRepo{items: map[string]*models.ExamTask{"t1": {ID: "t1", Status: models.ExamTaskPending}}}
	svc := NewExamTaskService(repo, nil, nil)

	task, err := svc.UpdateStatus(context.Background(), models.UpdateExamTaskStatusRequest{ID: "t1", Status: "Completed"})
	require.NoError(t, err)
	assert.Equal(t, models.ExamTaskCompleted, task.Status)

	// Any known status is reachable from any other.
	task, err = svc.UpdateStatus(context.Background(), models.UpdateExamTaskStatusRequest{ID: "t1", Status: "Pending"})
	require.NoError(t, err)
	assert.Equal(t, models.ExamTaskPending, task.Status)
}

func TestExamTaskServiceUpdateStatusErrors(t *testing.T) {
	repo := &mockExamTaskRepo{items: map[string]*models.ExamTask{"t1": {ID: "t1"}}}
	svc := NewExamTaskService(repo, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), models.UpdateExamTaskStatusRequest{ID: "t1"})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Task ID and status are required.", appErr.Message)

	_, err = svc.UpdateStatus(context.Background(), models.UpdateExamTaskStatusRequest{ID: "t1", Status: "completed"})
	requireAppError(t, err, http.StatusBadRequest)

	_, err = svc.UpdateStatus(context.Background(), models.UpdateExamTaskStatusRequest{ID: "t9", Status: "Completed"})
	appErr = requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Exam task not found", appErr.Message)
}

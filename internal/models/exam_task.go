package models

import "time"

// ExamTaskStatus is the lifecycle state of an exam task.
type ExamTaskStatus string

const (
	ExamTaskPending    ExamTaskStatus = "Pending"
	ExamTaskInProgress ExamTaskStatus = "In Progress"
	ExamTaskCompleted  ExamTaskStatus = "Completed"
	ExamTaskCancelled  ExamTaskStatus = "Cancelled"
)

// ExamTaskStatuses lists every accepted status in display order.
var ExamTaskStatuses = []ExamTaskStatus{ExamTaskPending, ExamTaskInProgress, ExamTaskCompleted, ExamTaskCancelled}

// Valid reports whether s is one of ExamTaskStatuses.
func (s ExamTaskStatus) Valid() bool {
	for _, known := range ExamTaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ExamTask is a scheduled exam assignment.
type ExamTask struct {
	ID          string         `db:"id" json:"id"`
	TeacherName string         `db:"teacher_name" json:"teacherName"`
	Subject     string         `db:"subject" json:"subject"`
	Class       string         `db:"class_name" json:"class"`
	DateOfExam  time.Time      `db:"date_of_exam" json:"dateOfExam"`
	Status      ExamTaskStatus `db:"status" json:"status"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
}

// CreateExamTaskRequest schedules a task. DateOfExam accepts RFC 3339 or YYYY-MM-DD.
type CreateExamTaskRequest struct {
	TeacherName string `json:"teacherName" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Class       string `json:"class" validate:"required"`
	DateOfExam  string `json:"dateOfExam" validate:"required"`
	Status      string `json:"status"`
}

// UpdateExamTaskStatusRequest transitions a task.
type UpdateExamTaskStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

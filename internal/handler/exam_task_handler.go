package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type examTaskService interface {
	Create(ctx context.Context, req models.CreateExamTaskRequest) (*models.ExamTask, error)
	List(ctx context.Context) ([]models.ExamTask, error)
	UpdateStatus(ctx context.Context, req models.UpdateExamTaskStatusRequest) (*models.ExamTask, error)
}

// ExamTaskHandler exposes the exam task board.
type ExamTaskHandler struct {
	tasks examTaskService
}

// NewExamTaskHandler constructs ExamTaskHandler.
func NewExamTaskHandler(tasks examTaskService) *ExamTaskHandler {
	return &ExamTaskHandler{tasks: tasks}
}

// Create godoc
// @Summary Schedule an exam task
// @Tags ExamTasks
// @Accept json
// @Produce json
// @Param payload body models.CreateExamTaskRequest true "Task"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /task [post]
func (h *ExamTaskHandler) Create(c *gin.Context) {
	var req models.CreateExamTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Missing required fields: teacherName, subject, class, dateOfExam."))
		return
	}
	task, err := h.tasks.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"taskId": task.ID}, nil, map[string]interface{}{"message": "Exam task created successfully"})
}

// List godoc
// @Summary List exam tasks by exam date
// @Tags ExamTasks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /task [get]
func (h *ExamTaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks, nil, map[string]interface{}{"count": len(tasks)})
}

// UpdateStatus godoc
// @Summary Change an exam task status
// @Tags ExamTasks
// @Accept json
// @Produce json
// @Param payload body models.UpdateExamTaskStatusRequest true "Status change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /task [patch]
func (h *ExamTaskHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateExamTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Task ID and status are required."))
		return
	}
	task, err := h.tasks.UpdateStatus(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, task, nil)
}

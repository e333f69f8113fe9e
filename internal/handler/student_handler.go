package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/middleware"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type studentService interface {
	BulkCreate(ctx context.Context, collegeID string, req models.BulkCreateStudentsRequest) (*models.StudentBatchResult, error)
	PreviewBulk(ctx context.Context, collegeID string, req models.BulkCreateStudentsRequest) (*models.StudentBatchPreview, error)
	RangeCreate(ctx context.Context, collegeID string, req models.RangeCreateStudentsRequest) (*models.StudentBatchResult, error)
	PreviewRange(ctx context.Context, collegeID string, req models.RangeCreateStudentsRequest) (*models.StudentBatchPreview, error)
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error)
}

// StudentHandler exposes student account endpoints.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// BulkCreate godoc
// @Summary Create students from an explicit roster
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dryRun query bool false "Validate and preview without saving"
// @Param payload body models.BulkCreateStudentsRequest true "Roster"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope "dry run preview"
// @Failure 400 {object} response.Envelope
// @Router /students/bulk-create [post]
func (h *StudentHandler) BulkCreate(c *gin.Context) {
	var req models.BulkCreateStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	collegeID := middleware.CollegeID(c)

	if dryRun(c) {
		preview, err := h.students.PreviewBulk(c.Request.Context(), collegeID, req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, preview, nil)
		return
	}

	result, err := h.students.BulkCreate(c.Request.Context(), collegeID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// RangeCreate godoc
// @Summary Create students for a range of roll numbers
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dryRun query bool false "Validate and preview without saving"
// @Param payload body models.RangeCreateStudentsRequest true "Range"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students/range-create [post]
func (h *StudentHandler) RangeCreate(c *gin.Context) {
	var req models.RangeCreateStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	collegeID := middleware.CollegeID(c)

	if dryRun(c) {
		preview, err := h.students.PreviewRange(c.Request.Context(), collegeID, req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, preview, nil)
		return
	}

	result, err := h.students.RangeCreate(c.Request.Context(), collegeID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List godoc
// @Summary List students of the current college
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param year query string false "Academic year"
// @Param division query string false "Division"
// @Param search query string false "Name, email or username"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	filter := models.StudentFilter{
		CollegeID: middleware.CollegeID(c),
		Year:      strings.TrimSpace(c.Query("year")),
		Division:  strings.TrimSpace(c.Query("division")),
		Search:    strings.TrimSpace(c.Query("search")),
	}
	filter.Page, filter.Limit = pageParams(c)

	students, pagination, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, pagination)
}

func dryRun(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.Query("dryRun"))
	return err == nil && v
}

// pageParams ignores malformed values; the services apply defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}

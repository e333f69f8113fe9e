package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/internal/service"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/export"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

const maxResultBody = 1 << 20

// insertKeys select the insert variant of POST /results.
var insertKeys = []string{"Student", "Class", "Subject", "Exam", "Score", "Grade", "Status"}

// insertAllowed are the only keys allowed in the insert variant.
var insertAllowed = map[string]struct{}{
	"Student": {}, "Class": {}, "Subject": {}, "Exam": {}, "Score": {}, "Grade": {}, "Status": {},
	"TeacherId": {}, "ExamDate": {},
}

// queryKeys are the only keys allowed in the query variant.
var queryKeys = map[string]struct{}{"filters": {}, "pagination": {}, "sort": {}}

type resultService interface {
	Create(ctx context.Context, req models.CreateResultRequest) (*models.Result, error)
	NormalizeQuery(req models.ResultQueryRequest) (models.ResultQuery, error)
	Query(ctx context.Context, q models.ResultQuery) (*service.ResultPage, error)
	Export(ctx context.Context, q models.ResultQuery, format export.Format) (*service.ExportFile, error)
}

// ResultHandler exposes exam result endpoints.
type ResultHandler struct {
	results resultService
}

// NewResultHandler constructs ResultHandler.
func NewResultHandler(results resultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// Post godoc
// @Summary Insert a result or run an advanced query
// @Description A body carrying any of Student, Class, Subject, Exam, Score, Grade, Status inserts a result.
// @Description A body limited to filters, pagination and sort runs a query.
// @Tags Results
// @Accept json
// @Produce json
// @Param payload body models.ResultQueryRequest true "Query, or a CreateResultRequest"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results [post]
func (h *ResultHandler) Post(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxResultBody))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	var keys map[string]json.RawMessage
	if len(bytes.TrimSpace(raw)) == 0 {
		keys = map[string]json.RawMessage{}
	} else if err := json.Unmarshal(raw, &keys); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "request body must be a JSON object"))
		return
	}

	switch {
	case isInsertBody(keys):
		if extra := keysOutside(keys, insertAllowed); len(extra) > 0 {
			rejectBody(c, extra)
			return
		}
		var req models.CreateResultRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid result payload"))
			return
		}
		result, err := h.results.Create(c.Request.Context(), req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, gin.H{"id": result.ID})
	case len(keysOutside(keys, queryKeys)) == 0:
		var req models.ResultQueryRequest
		if len(keys) > 0 {
			if err := json.Unmarshal(raw, &req); err != nil {
				response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query payload"))
				return
			}
		}
		h.query(c, req)
	default:
		rejectBody(c, keysOutside(keys, queryKeys))
	}
}

// List godoc
// @Summary Query results
// @Tags Results
// @Produce json
// @Param studentId query string false "Student id"
// @Param className query string false "Class"
// @Param subject query string false "Subject"
// @Param examId query string false "Exam id"
// @Param teacherId query string false "Teacher id"
// @Param minScore query number false "Minimum score (inclusive)"
// @Param maxScore query number false "Maximum score (inclusive)"
// @Param dateFrom query string false "Earliest exam date"
// @Param dateTo query string false "Latest exam date"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param sortBy query string false "examDate, score, createdAt, studentId, className, subject or grade"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results [get]
func (h *ResultHandler) List(c *gin.Context) {
	req, err := queryFromParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.query(c, req)
}

// Export godoc
// @Summary Export results
// @Tags Results
// @Produce octet-stream
// @Param format query string false "csv, pdf or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /results/export [get]
func (h *ResultHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "format must be one of: csv, pdf, xlsx"))
		return
	}
	req, err := queryFromParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	q, err := h.results.NormalizeQuery(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.results.Export(c.Request.Context(), q, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

func (h *ResultHandler) query(c *gin.Context, req models.ResultQueryRequest) {
	q, err := h.results.NormalizeQuery(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, err := h.results.Query(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Items, page.Pagination, map[string]interface{}{"cacheHit": page.CacheHit})
}

func isInsertBody(keys map[string]json.RawMessage) bool {
	for _, k := range insertKeys {
		if _, ok := keys[k]; ok {
			return true
		}
	}
	return false
}

// keysOutside lists the body keys missing from allowed, sorted.
func keysOutside(keys map[string]json.RawMessage, allowed map[string]struct{}) []string {
	var out []string
	for k := range keys {
		if _, ok := allowed[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func rejectBody(c *gin.Context, unexpected []string) {
	response.Error(c, appErrors.WithDetails(appErrors.ErrValidation,
		"body must be a result insert or a query with filters, pagination and sort",
		map[string]interface{}{"unexpectedKeys": unexpected}))
}

// queryFromParams maps GET parameters onto the advanced query shape.
func queryFromParams(c *gin.Context) (models.ResultQueryRequest, error) {
	req := models.ResultQueryRequest{
		Filters: models.ResultFilterInput{
			StudentID: single(c.Query("studentId")),
			ClassName: single(c.Query("className")),
			Subject:   single(c.Query("subject")),
			ExamID:    single(c.Query("examId")),
			TeacherID: single(c.Query("teacherId")),
			DateFrom:  c.Query("dateFrom"),
			DateTo:    c.Query("dateTo"),
		},
		Sort: models.ResultSortInput{Field: c.Query("sortBy"), Order: c.Query("sortOrder")},
	}

	var err error
	if req.Filters.MinScore, err = floatParam(c, "minScore"); err != nil {
		return req, err
	}
	if req.Filters.MaxScore, err = floatParam(c, "maxScore"); err != nil {
		return req, err
	}
	if req.Pagination.Page, err = intParam(c, "page"); err != nil {
		return req, err
	}
	if req.Pagination.Limit, err = intParam(c, "limit"); err != nil {
		return req, err
	}
	return req, nil
}

func single(v string) models.StringList {
	if v = strings.TrimSpace(v); v == "" {
		return nil
	}
	return models.StringList{v}
}

func floatParam(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, name+" must be a number")
	}
	return &v, nil
}

func intParam(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, name+" must be an integer")
	}
	return v, nil
}

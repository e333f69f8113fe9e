package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/export"
)

const (
	resultCachePrefix  = "results:"
	defaultExportLimit = 5000
)

var resultSortFields = map[string]struct{}{
	models.ResultSortExamDate:  {},
	models.ResultSortScore:     {},
	models.ResultSortCreatedAt: {},
	models.ResultSortStudentID: {},
	models.ResultSortClassName: {},
	models.ResultSortSubject:   {},
	models.ResultSortGrade:     {},
}

var resultExportHeaders = []string{"Student", "Class", "Subject", "Exam", "Teacher", "Score", "Grade", "Status", "Exam Date"}

// ResultConfig tunes result exports.
type ResultConfig struct {
	CacheTTL      time.Duration
	ExportMaxRows int
}

// ResultPage is one page of a result query.
type ResultPage struct {
	Items      []models.Result    `json:"items"`
	Pagination *models.Pagination `json:"pagination"`
	CacheHit   bool               `json:"-"`
}

// ExportFile is a rendered result export.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ResultService records exam results and answers filtered queries.
type ResultService struct {
	repo    ResultRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	config  ResultConfig
	now     func() time.Time
}

// NewResultService constructs a ResultService. cache may be nil.
func NewResultService(repo ResultRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger, config ResultConfig) *ResultService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.ExportMaxRows <= 0 {
		config.ExportMaxRows = defaultExportLimit
	}
	return &ResultService{repo: repo, cache: cache, metrics: metrics, logger: logger, config: config, now: time.Now}
}

// Create stores a result posted with the legacy field names.
func (s *ResultService) Create(ctx context.Context, req models.CreateResultRequest) (*models.Result, error) {
	result := &models.Result{
		StudentID: strings.TrimSpace(req.Student),
		ClassName: strings.TrimSpace(req.Class),
		Subject:   strings.TrimSpace(req.Subject),
		ExamID:    strings.TrimSpace(req.Exam),
		TeacherID: strings.TrimSpace(req.TeacherID),
		Grade:     strings.TrimSpace(req.Grade),
		Status:    strings.TrimSpace(req.Status),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"Student", result.StudentID},
		{"Class", result.ClassName},
		{"Subject", result.Subject},
		{"Exam", result.ExamID},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if req.Score == nil {
		missing = append(missing, "Score")
	}
	if result.Grade == "" {
		missing = append(missing, "Grade")
	}
	if result.Status == "" {
		missing = append(missing, "Status")
	}
	if len(missing) > 0 {
		return nil, appErrors.WithDetails(appErrors.ErrValidation, "Missing required fields: "+strings.Join(missing, ", "), map[string]interface{}{"fields": missing})
	}
	result.Score = *req.Score

	now := s.now().UTC()
	result.ExamDate = now
	if raw := strings.TrimSpace(req.ExamDate); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "ExamDate must be a date (YYYY-MM-DD or RFC 3339)")
		}
		result.ExamDate = date
	}
	result.CreatedAt = now

	start := time.Now()
	err := s.repo.Create(ctx, result)
	s.metrics.ObserveStore("results.create", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create result")
	}

	s.cache.Invalidate(ctx, resultCachePrefix+"*")
	return result, nil
}

// NormalizeQuery applies paging and sort defaults and parses date bounds.
func (s *ResultService) NormalizeQuery(req models.ResultQueryRequest) (models.ResultQuery, error) {
	f := req.Filters
	q := models.ResultQuery{
		Filter: models.ResultFilter{
			StudentIDs: f.StudentID,
			ClassNames: f.ClassName,
			Subjects:   f.Subject,
			ExamIDs:    f.ExamID,
			TeacherIDs: f.TeacherID,
			MinScore:   f.MinScore,
			MaxScore:   f.MaxScore,
		},
	}
	q.Page, q.Limit = normalizePage(req.Pagination.Page, req.Pagination.Limit)

	q.SortField = strings.TrimSpace(req.Sort.Field)
	if _, ok := resultSortFields[q.SortField]; !ok {
		q.SortField = models.ResultSortExamDate
	}
	q.SortDesc = !strings.EqualFold(strings.TrimSpace(req.Sort.Order), "asc")

	if raw := strings.TrimSpace(f.DateFrom); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return q, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dateFrom must be a date (YYYY-MM-DD or RFC 3339)")
		}
		q.Filter.DateFrom = &from
	}
	if raw := strings.TrimSpace(f.DateTo); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return q, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dateTo must be a date (YYYY-MM-DD or RFC 3339)")
		}
		// A bare date includes the whole day.
		if len(raw) == len(examDateLayout) {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		q.Filter.DateTo = &to
	}
	return q, nil
}

// Query returns one page of results, served from the cache when enabled.
func (s *ResultService) Query(ctx context.Context, q models.ResultQuery) (*ResultPage, error) {
	key, keyErr := resultCacheKey(q)
	if keyErr == nil {
		var cached ResultPage
		if s.cache.Get(ctx, key, &cached) {
			cached.CacheHit = true
			return &cached, nil
		}
	}

	start := time.Now()
	items, total, err := s.repo.Query(ctx, q)
	s.metrics.ObserveStore("results.query", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to query results")
	}
	if items == nil {
		items = []models.Result{}
	}

	page := &ResultPage{Items: items, Pagination: models.NewPagination(q.Page, q.Limit, total)}
	if keyErr == nil {
		s.cache.Set(ctx, key, page, s.config.CacheTTL)
	}
	return page, nil
}

// Export renders every result matching q, up to the configured row limit.
func (s *ResultService) Export(ctx context.Context, q models.ResultQuery, format export.Format) (*ExportFile, error) {
	renderer, err := export.RendererFor(format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be one of: csv, pdf, xlsx")
	}

	q.Page = 1
	q.Limit = s.config.ExportMaxRows
	start := time.Now()
	items, total, err := s.repo.Query(ctx, q)
	s.metrics.ObserveStore("results.export", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to query results")
	}
	if total > int64(len(items)) {
		s.logger.Warn("result export truncated", zap.Int64("total", total), zap.Int("rows", len(items)))
	}

	dataset := export.Dataset{Title: "Exam Results", Headers: resultExportHeaders, Rows: make([]map[string]string, 0, len(items))}
	for _, r := range items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student":   r.StudentID,
			"Class":     r.ClassName,
			"Subject":   r.Subject,
			"Exam":      r.ExamID,
			"Teacher":   r.TeacherID,
			"Score":     strconv.FormatFloat(r.Score, 'f', -1, 64),
			"Grade":     r.Grade,
			"Status":    r.Status,
			"Exam Date": r.ExamDate.UTC().Format(examDateLayout),
		})
	}

	body, err := renderer.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("results-%s.%s", s.now().UTC().Format("20060102-150405"), format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func resultCacheKey(q models.ResultQuery) (string, error) {
	raw, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return resultCachePrefix + hex.EncodeToString(sum[:]), nil
}

package service

import (
	"context"
	"math"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/pkg/export"
)

func floatPtr(v float64) *float64 { return &v }

func newResultServiceForTest(repo *mockResultRepo, cacheRepo CacheRepository) (*ResultService, *MetricsService) {
	metrics := NewMetricsService()
	var cache *CacheService
	if cacheRepo != nil {
		cache = NewCacheService(cacheRepo, metrics, time.Minute, zap.NewNop(), true)
	}
	return NewResultService(repo, cache, metrics, zap.NewNop(), ResultConfig{ExportMaxRows: 50}), metrics
}

func TestResultServiceCreateMapsLegacyFields(t *testing.T) {
	repo := &mockResultRepo{}
	svc, _ := newResultServiceForTest(repo, nil)

	res, err := svc.Create(context.Background(), models.CreateResultRequest{
		Student: "s1", Class: "FY-A", Subject: "Physics", Exam: "mid-term",
		Score: floatPtr(0), Grade: "F", Status: "Fail", ExamDate: "2026-03-14",
	})
	require.NoError(t, err)
	assert.Equal(t, "result-1", res.ID)
	assert.Equal(t, "s1", res.StudentID)
	assert.Equal(t, "FY-A", res.ClassName)
	assert.Equal(t, "mid-term", res.ExamID)
	assert.Zero(t, res.Score)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), res.ExamDate)
}

func TestResultServiceCreateDefaultsExamDate(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc, _ := newResultServiceForTest(&mockResultRepo{}, nil)
	svc.now = func() time.Time { return fixed }

	res, err := svc.Create(context.Background(), models.CreateResultRequest{
		Student: "s1", Class: "FY-A", Subject: "Physics", Exam: "mid-term", Score: floatPtr(71), Grade: "B", Status: "Pass",
	})
	require.NoError(t, err)
	assert.Equal(t, fixed, res.ExamDate)
	assert.Equal(t, fixed, res.CreatedAt)
}

func TestResultServiceCreateRequiresAllFields(t *testing.T) {
	repo := &mockResultRepo{}
	svc, _ := newResultServiceForTest(repo, nil)

	_, err := svc.Create(context.Background(), models.CreateResultRequest{Student: "s1", Class: "FY-A", Grade: "A"})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Missing required fields: Subject, Exam, Score, Status", appErr.Message)
	assert.Empty(t, repo.created)
}

func TestResultServiceNormalizeQueryDefaults(t *testing.T) {
	svc, _ := newResultServiceForTest(&mockResultRepo{}, nil)

	q, err := svc.NormalizeQuery(models.ResultQueryRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, models.ResultSortExamDate, q.SortField)
	assert.True(t, q.SortDesc)

	q, err = svc.NormalizeQuery(models.ResultQueryRequest{
		Pagination: models.ResultPageInput{Page: 3, Limit: 1000},
		Sort:       models.ResultSortInput{Field: "password", Order: "ASC"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, models.ResultSortExamDate, q.SortField)
	assert.False(t, q.SortDesc)
}

func TestResultServiceNormalizeQueryClampsHugePage(t *testing.T) {
	svc, _ := newResultServiceForTest(&mockResultRepo{}, nil)

	q, err := svc.NormalizeQuery(models.ResultQueryRequest{Pagination: models.ResultPageInput{Page: math.MaxInt, Limit: 100}})
	require.NoError(t, err)
	assert.Equal(t, models.MaxPage, q.Page)
	assert.GreaterOrEqual(t, q.Offset(), 0)
}

func TestResultServiceNormalizeQueryDates(t *testing.T) {
	svc, _ := newResultServiceForTest(&mockResultRepo{}, nil)

	q, err := svc.NormalizeQuery(models.ResultQueryRequest{Filters: models.ResultFilterInput{
		DateFrom: "2026-03-01",
		DateTo:   "2026-03-31",
		MinScore: floatPtr(50),
		MaxScore: floatPtr(80),
		Subject:  models.StringList{"Physics", "Maths"},
	}})
	require.NoError(t, err)
	require.NotNil(t, q.Filter.DateFrom)
	require.NotNil(t, q.Filter.DateTo)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *q.Filter.DateFrom)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC), *q.Filter.DateTo)
	assert.Equal(t, 50.0, *q.Filter.MinScore)
	assert.Equal(t, []string{"Physics", "Maths"}, q.Filter.Subjects)

	_, err = svc.NormalizeQuery(models.ResultQueryRequest{Filters: models.ResultFilterInput{DateTo: "last week"}})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestResultServiceQueryPagination(t *testing.T) {
	repo := &mockResultRepo{items: []models.Result{{ID: "r1"}}, total: 41}
	svc, _ := newResultServiceForTest(repo, nil)

	page, err := svc.Query(context.Background(), models.ResultQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, int64(41), page.Pagination.Total)
	assert.False(t, page.CacheHit)
}

func TestResultServiceQueryUsesCacheAndInsertInvalidates(t *testing.T) {
	repo := &mockResultRepo{items: []models.Result{{ID: "r1", Score: 64}}, total: 1}
	cache := newMemoryCacheRepo()
	svc, metrics := newResultServiceForTest(repo, cache)
	q := models.ResultQuery{Page: 1, Limit: 20, SortField: models.ResultSortScore}

	first, err := svc.Query(context.Background(), q)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := svc.Query(context.Background(), q)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Items, second.Items)
	assert.Len(t, repo.queries, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheLookups.WithLabelValues("hit")))

	_, err = svc.Create(context.Background(), models.CreateResultRequest{
		Student: "s1", Class: "FY-A", Subject: "Physics", Exam: "mid", Score: floatPtr(90), Grade: "A", Status: "Pass",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"results:*"}, cache.deleted)

	third, err := svc.Query(context.Background(), q)
	require.NoError(t, err)
	assert.False(t, third.CacheHit)
	assert.Len(t, repo.queries, 2)
}

func TestResultServiceExportCSV(t *testing.T) {
	repo := &mockResultRepo{items: []models.Result{{
		StudentID: "s1", ClassName: "FY-A", Subject: "Physics", ExamID: "mid", TeacherID: "t1",
		Score: 72.5, Grade: "B", Status: "Pass", ExamDate: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}}, total: 1}
	svc, _ := newResultServiceForTest(repo, nil)

	file, err := svc.Export(context.Background(), models.ResultQuery{Page: 4, Limit: 10}, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

	lines := strings.Split(strings.TrimSpace(string(file.Body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Student,Class,Subject,Exam,Teacher,Score,Grade,Status,Exam Date", lines[0])
	assert.Equal(t, "s1,FY-A,Physics,mid,t1,72.5,B,Pass,2026-03-14", lines[1])

	require.Len(t, repo.queries, 1)
	assert.Equal(t, 1, repo.queries[0].Page)
	assert.Equal(t, 50, repo.queries[0].Limit)
}

func TestResultServiceExportUnknownFormat(t *testing.T) {
	svc, _ := newResultServiceForTest(&mockResultRepo{}, nil)

	_, err := svc.Export(context.Background(), models.ResultQuery{}, export.Format("docx"))
	requireAppError(t, err, http.StatusBadRequest)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type studentFixture struct {
	svc      *StudentService
	students *mockStudentRepo
	hasher   *plainHasher
	metrics  *MetricsService
}

func newStudentFixture(colleges ...*models.College) *studentFixture {
	f := &studentFixture{
		students: &mockStudentRepo{existing: make(map[string][]models.Student)},
		hasher:   &plainHasher{},
		metrics:  NewMetricsService(),
	}
	f.svc = NewStudentService(newMockCollegeRepo(colleges...), f.students, f.hasher, f.metrics, zap.NewNop(), "student.college.edu")
	return f
}

func fyRange(start, end interface{}) models.RangeCreateStudentsRequest {
	return models.RangeCreateStudentsRequest{
		Year:            "FY",
		Division:        "A",
		Department:      "Science",
		StartRollNumber: models.FlexString(fmt.Sprint(start)),
		EndRollNumber:   models.FlexString(fmt.Sprint(end)),
		Password:        "welcome",
	}
}

func TestStudentServiceRangeCreate(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))

	res, err := f.svc.RangeCreate(context.Background(), "c1", fyRange(1, 5))
	require.NoError(t, err)
	assert.Equal(t, 5, res.CreatedCount)
	assert.Len(t, res.StudentIDs, 5)
	require.Len(t, f.students.created, 5)

	for i, s := range f.students.created {
		want := fmt.Sprintf("FYA%d", i+1)
		assert.Equal(t, want, s.Username)
		assert.Equal(t, fmt.Sprintf("fya%d@student.college.edu", i+1), s.Email)
		assert.Equal(t, "c1", s.CollegeID)
		assert.Equal(t, "Riverside", s.CollegeName)
		assert.Equal(t, models.StudentStatusActive, s.Status)
		assert.Equal(t, "hashed:welcome", s.PasswordHash)
	}
	assert.Equal(t, 5, f.hasher.calls)
	assert.Equal(t, float64(5), testutil.ToFloat64(f.metrics.studentsCreated))
}

func TestStudentServiceRangeCreatePadsFromStartText(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))

	_, err := f.svc.RangeCreate(context.Background(), "c1", fyRange("001", "010"))
	require.NoError(t, err)
	require.Len(t, f.students.created, 10)
	assert.Equal(t, "FYA001", f.students.created[0].Username)
	assert.Equal(t, "FYA010", f.students.created[9].Username)
}

func TestStudentServiceRangeRejections(t *testing.T) {
	cases := map[string]models.RangeCreateStudentsRequest{
		"inverted":    fyRange(10, 1),
		"too large":   fyRange(1, 502),
		"non numeric": fyRange("1a", 5),
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			f := newStudentFixture(approved("c1", "Riverside"))
			_, err := f.svc.RangeCreate(context.Background(), "c1", req)
			requireAppError(t, err, http.StatusBadRequest)
			assert.Empty(t, f.students.created)
			assert.Zero(t, f.hasher.calls)
		})
	}
}

func TestStudentServiceConflictsAreScopedToCollege(t *testing.T) {
	f := newStudentFixture(approved("x", "College X"), approved("y", "College Y"))
	f.students.existing["x"] = []models.Student{{CollegeID: "x", Username: "FYA001", Email: "fya001@student.college.edu"}}

	_, err := f.svc.RangeCreate(context.Background(), "x", fyRange("001", "003"))
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErr.Code)
	assert.Equal(t, "Some students already exist", appErr.Message)
	conflicts, ok := appErr.Details.(models.StudentConflicts)
	require.True(t, ok)
	assert.Equal(t, []string{"fya001@student.college.edu"}, conflicts.Emails)
	assert.Equal(t, []string{"FYA001"}, conflicts.Usernames)
	assert.Empty(t, f.students.created)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.batchesRejected.WithLabelValues(RejectDuplicate)))

	res, err := f.svc.RangeCreate(context.Background(), "y", fyRange("001", "003"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.CreatedCount)
}

func TestStudentServiceAcceptsPendingCollege(t *testing.T) {
	pending := approved("c1", "Riverside")
	pending.Status = models.CollegeStatusPending
	f := newStudentFixture(pending)

	res, err := f.svc.RangeCreate(context.Background(), "c1", fyRange(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.CreatedCount)
	require.Len(t, f.students.created, 2)
	assert.Equal(t, "c1", f.students.created[0].CollegeID)
}

func TestStudentServiceRejectsUnknownCollege(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))

	_, err := f.svc.RangeCreate(context.Background(), "unknown", fyRange(1, 2))
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "College not found", appErr.Message)
	assert.Empty(t, f.students.created)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.batchesRejected.WithLabelValues(RejectCollege)))

	_, err = f.svc.BulkCreate(context.Background(), "unknown", models.BulkCreateStudentsRequest{
		Password: "pw",
		Students: []models.StudentEntry{{FirstName: "A", LastName: "B", Email: "a@x.edu", RollNumber: "1", Division: "A", Year: "FY", Course: "BSc"}},
	})
	requireAppError(t, err, http.StatusNotFound)
}

func TestStudentServiceBulkCreate(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))
	req := models.BulkCreateStudentsRequest{
		Password: "shared",
		Students: []models.StudentEntry{
			{FirstName: "Asha", LastName: "K", Email: "asha@x.edu", RollNumber: "1", Division: "A", Year: "SY", Course: "BSc"},
			{FirstName: "Ben", LastName: "L", Email: "ben@x.edu", RollNumber: "2", Division: "A", Year: "SY", Course: "BSc", Password: "ignored"},
		},
	}

	res, err := f.svc.BulkCreate(context.Background(), "c1", req)
	require.NoError(t, err)
	assert.Equal(t, []string{"student-1", "student-2"}, res.StudentIDs)
	assert.Equal(t, "SYA1", f.students.created[0].Username)
	assert.Equal(t, "hashed:shared", f.students.created[1].PasswordHash)
}

func TestStudentServiceBulkCreateValidation(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))

	_, err := f.svc.BulkCreate(context.Background(), "c1", models.BulkCreateStudentsRequest{Password: "x"})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "No student data provided", appErr.Message)

	_, err = f.svc.BulkCreate(context.Background(), "c1", models.BulkCreateStudentsRequest{
		Password: "x",
		Students: []models.StudentEntry{{FirstName: "Asha", LastName: "K", Email: "asha@x.edu", Course: "BSc"}},
	})
	appErr = requireAppError(t, err, http.StatusBadRequest)
	details, ok := appErr.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []string{"rollNumber", "division", "year"}, details["fields"])
	assert.Equal(t, 0, details["index"])
	assert.Equal(t, float64(2), testutil.ToFloat64(f.metrics.batchesRejected.WithLabelValues(RejectInvalid)))
}

func TestStudentServicePreviewPersistsNothing(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))

	preview, err := f.svc.PreviewRange(context.Background(), "c1", fyRange(1, 3))
	require.NoError(t, err)
	assert.True(t, preview.DryRun)
	assert.Equal(t, 3, preview.Count)
	assert.Equal(t, "FYA3", preview.Students[2].Username)
	assert.Empty(t, f.students.created)
	assert.Zero(t, f.hasher.calls)
}

func TestStudentServiceHashFailureAbortsInsert(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))
	f.hasher.fail = errors.New("entropy exhausted")

	_, err := f.svc.RangeCreate(context.Background(), "c1", fyRange(1, 20))
	requireAppError(t, err, http.StatusInternalServerError)
	assert.Empty(t, f.students.created)
}

func TestStudentServiceInsertDuplicateRace(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))
	f.students.createErr = fmt.Errorf("students.create_many: %w", appErrors.ErrDuplicate)

	_, err := f.svc.RangeCreate(context.Background(), "c1", fyRange(1, 2))
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErr.Code)
}

func TestStudentServiceListNormalisesPaging(t *testing.T) {
	f := newStudentFixture(approved("c1", "Riverside"))
	f.students.existing["c1"] = []models.Student{{ID: "s1"}}

	items, page, err := f.svc.List(context.Background(), models.StudentFilter{CollegeID: "c1", Limit: 500})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 100, f.students.listed.Limit)
}

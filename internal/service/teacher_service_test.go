package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

func validTeacher() models.CreateTeacherRequest {
	return models.CreateTeacherRequest{
		FirstName:   "Meera",
		LastName:    "Iyer",
		Email:       "Meera@Riverside.edu",
		PhoneNumber: "555-0111",
		Department:  "Physics",
		Designation: "Lecturer",
		EmployeeID:  "EMP-7",
		JoiningDate: "2024-06-01",
		Password:    "teach",
	}
}

func TestTeacherServiceCreate(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewTeacherService(newMockCollegeRepo(approved("c1", "Riverside")), repo, &plainHasher{}, validator.New(), zap.NewNop())

	resp, err := svc.Create(context.Background(), "c1", validTeacher())
	require.NoError(t, err)
	assert.Equal(t, "teacher-1", resp.TeacherID)
	assert.Equal(t, "meera@riverside.edu", resp.TeacherInfo.Email)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "Riverside", created.CollegeName)
	assert.Equal(t, []string{models.TeacherRole}, created.Roles)
	assert.Equal(t, models.TeacherStatusActive, created.Status)
	assert.Equal(t, "hashed:teach", created.PasswordHash)
}

func TestTeacherServiceCreateFailures(t *testing.T) {
	colleges := newMockCollegeRepo(approved("c1", "Riverside"))

	svc := NewTeacherService(colleges, &mockTeacherRepo{}, &plainHasher{}, nil, nil)
	_, err := svc.Create(context.Background(), "nope", validTeacher())
	requireAppError(t, err, http.StatusNotFound)

	missing := validTeacher()
	missing.Designation = ""
	_, err = svc.Create(context.Background(), "c1", missing)
	requireAppError(t, err, http.StatusBadRequest)

	dup := NewTeacherService(colleges, &mockTeacherRepo{exists: true}, &plainHasher{}, nil, nil)
	_, err = dup.Create(context.Background(), "c1", validTeacher())
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Teacher with this email or employee ID already exists", appErr.Message)

	race := NewTeacherService(colleges, &mockTeacherRepo{createErr: appErrors.ErrDuplicate}, &plainHasher{}, nil, nil)
	_, err = race.Create(context.Background(), "c1", validTeacher())
	appErr = requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErr.Code)
}

func TestTeacherServiceList(t *testing.T) {
	svc := NewTeacherService(newMockCollegeRepo(), &mockTeacherRepo{}, &plainHasher{}, nil, nil)

	items, page, err := svc.List(context.Background(), models.TeacherFilter{CollegeID: "c1", Page: 2, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(41), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

func validRegistration() models.RegisterCollegeRequest {
	contact := models.Contact{Name: "Dr. Rao", Email: "rao@example.edu", Phone: "555-0100"}
	return models.RegisterCollegeRequest{
		CollegeName:        "Riverside College",
		RegistrationNumber: "REG-001",
		Email:              " Admin@Riverside.edu ",
		PhoneNumber:        "555-0199",
		Address:            models.Address{Street: "1 Main", City: "Pune", State: "MH", ZipCode: "411001"},
		Principal:          contact,
		Controller:         contact,
		Password:           "s3cret",
	}
}

func newCollegeServiceForTest(repo *mockCollegeRepo, cfg CollegeConfig) *CollegeService {
	return NewCollegeService(repo, &plainHasher{}, NewTokenService("secret", time.Hour), validator.New(), zap.NewNop(), cfg)
}

func TestCollegeServiceRegister(t *testing.T) {
	repo := newMockCollegeRepo()
	svc := newCollegeServiceForTest(repo, CollegeConfig{})

	resp, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.CollegeID)
	assert.Equal(t, models.CollegeStatusPending, resp.CollegeInfo.Status)
	assert.Equal(t, "admin@riverside.edu", resp.CollegeInfo.Email)

	stored := repo.items[resp.CollegeID]
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:s3cret", stored.PasswordHash)
	assert.Equal(t, models.VerificationStatus{}, stored.VerificationStatus)
	assert.False(t, stored.RegistrationDate.IsZero())
}

func TestCollegeServiceRegisterMissingFields(t *testing.T) {
	svc := newCollegeServiceForTest(newMockCollegeRepo(), CollegeConfig{})
	req := validRegistration()
	req.Principal.Phone = ""

	_, err := svc.Register(context.Background(), req)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "All fields are required", appErr.Message)
}

func TestCollegeServiceRegisterDuplicate(t *testing.T) {
	repo := newMockCollegeRepo(&models.College{ID: "c1", Email: "admin@riverside.edu", RegistrationNumber: "OTHER"})
	svc := newCollegeServiceForTest(repo, CollegeConfig{})

	_, err := svc.Register(context.Background(), validRegistration())
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErr.Code)
	assert.Equal(t, "College registration number or email already exists", appErr.Message)
}

func TestCollegeServiceRegisterRaceSurfacesAsDuplicate(t *testing.T) {
	repo := newMockCollegeRepo()
	repo.createErr = appErrors.Wrap(assert.AnError, appErrors.ErrDuplicate.Code, appErrors.ErrDuplicate.Status, "colleges.create")
	svc := newCollegeServiceForTest(repo, CollegeConfig{})

	_, err := svc.Register(context.Background(), validRegistration())
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErr.Code)
}

func TestCollegeServiceLogin(t *testing.T) {
	repo := newMockCollegeRepo(&models.College{
		ID: "c1", CollegeName: "Riverside", Email: "admin@riverside.edu",
		PasswordHash: "hashed:s3cret", Status: models.CollegeStatusPending,
	})
	svc := newCollegeServiceForTest(repo, CollegeConfig{})

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "ADMIN@riverside.edu", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.CollegeID)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := svc.tokens.Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "c1", claims.CollegeID)
}

func TestCollegeServiceLoginFailuresShareMessage(t *testing.T) {
	repo := newMockCollegeRepo(&models.College{ID: "c1", Email: "admin@riverside.edu", PasswordHash: "hashed:s3cret"})
	svc := newCollegeServiceForTest(repo, CollegeConfig{})

	_, wrongPassword := svc.Login(context.Background(), models.LoginRequest{Email: "admin@riverside.edu", Password: "nope"})
	_, unknownEmail := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@riverside.edu", Password: "s3cret"})

	a := requireAppError(t, wrongPassword, http.StatusUnauthorized)
	b := requireAppError(t, unknownEmail, http.StatusUnauthorized)
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, a.Code, b.Code)
}

func TestCollegeServiceLoginMissingFields(t *testing.T) {
	svc := newCollegeServiceForTest(newMockCollegeRepo(), CollegeConfig{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@riverside.edu"})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Email and password are required", appErr.Message)
}

func TestCollegeServiceLoginRequiresApproval(t *testing.T) {
	repo := newMockCollegeRepo(&models.College{ID: "c1", Email: "admin@riverside.edu", PasswordHash: "hashed:s3cret", Status: models.CollegeStatusPending})
	svc := newCollegeServiceForTest(repo, CollegeConfig{RequireApprovedLogin: true})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@riverside.edu", Password: "s3cret"})
	requireAppError(t, err, http.StatusForbidden)

	repo.items["c1"].Status = models.CollegeStatusApproved
	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "admin@riverside.edu", Password: "s3cret"})
	require.NoError(t, err)
}

func TestCollegeServiceSetStatus(t *testing.T) {
	repo := newMockCollegeRepo(&models.College{ID: "c1", Status: models.CollegeStatusPending})
	svc := newCollegeServiceForTest(repo, CollegeConfig{})

	require.NoError(t, svc.SetStatus(context.Background(), "c1", models.CollegeStatusApproved))
	assert.Equal(t, models.CollegeStatusApproved, repo.items["c1"].Status)

	requireAppError(t, svc.SetStatus(context.Background(), "c1", "archived"), http.StatusBadRequest)
	requireAppError(t, svc.SetStatus(context.Background(), "missing", models.CollegeStatusRejected), http.StatusNotFound)
}

func TestCollegeServiceGet(t *testing.T) {
	svc := newCollegeServiceForTest(newMockCollegeRepo(approved("c1", "Riverside")), CollegeConfig{})

	college, err := svc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Riverside", college.CollegeName)

	_, err = svc.Get(context.Background(), "c2")
	requireAppError(t, err, http.StatusNotFound)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type plainHasher struct {
	mu    sync.Mutex
	calls int
	fail  error
}

func (h *plainHasher) Hash(password string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if h.fail != nil {
		return "", h.fail
	}
	return "hashed:" + password, nil
}

func (h *plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockCollegeRepo struct {
	items     map[string]*models.College
	exists    bool
	createErr error
	findErr   error
}

func newMockCollegeRepo(colleges ...*models.College) *mockCollegeRepo {
	repo := &mockCollegeRepo{items: make(map[string]*models.College)}
	for _, c := range colleges {
		repo.items[c.ID] = c
	}
	return repo
}

func (m *mockCollegeRepo) Create(ctx context.Context, college *models.College) error {
	if m.createErr != nil {
		return m.createErr
	}
	if college.ID == "" {
		college.ID = fmt.Sprintf("college-%d", len(m.items)+1)
	}
	cp := *college
	m.items[college.ID] = &cp
	return nil
}

func (m *mockCollegeRepo) FindByID(ctx context.Context, id string) (*models.College, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if c, ok := m.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, appErrors.ErrNoRecord
}

func (m *mockCollegeRepo) FindByEmail(ctx context.Context, email string) (*models.College, error) {
	for _, c := range m.items {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, appErrors.ErrNoRecord
}

func (m *mockCollegeRepo) ExistsByEmailOrRegistration(ctx context.Context, email, registrationNumber string) (bool, error) {
	if m.exists {
		return true, nil
	}
	for _, c := range m.items {
		if c.Email == email || c.RegistrationNumber == registrationNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCollegeRepo) UpdateStatus(ctx context.Context, id string, status models.CollegeStatus) error {
	c, ok := m.items[id]
	if !ok {
		return appErrors.ErrNoRecord
	}
	c.Status = status
	return nil
}

// mockStudentRepo keeps students per college, keyed by email and username.
type mockStudentRepo struct {
	existing  map[string][]models.Student
	created   []*models.Student
	createErr error
	listed    models.StudentFilter
}

func (m *mockStudentRepo) FindConflicts(ctx context.Context, collegeID string, emails, usernames []string) (models.StudentConflicts, error) {
	var out models.StudentConflicts
	for _, s := range m.existing[collegeID] {
		for _, e := range emails {
			if strings.EqualFold(e, s.Email) {
				out.Emails = append(out.Emails, e)
			}
		}
		for _, u := range usernames {
			if u == s.Username {
				out.Usernames = append(out.Usernames, u)
			}
		}
	}
	return out, nil
}

func (m *mockStudentRepo) CreateMany(ctx context.Context, students []*models.Student) ([]string, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	ids := make([]string, 0, len(students))
	for i, s := range students {
		s.ID = fmt.Sprintf("student-%d", len(m.created)+i+1)
		ids = append(ids, s.ID)
	}
	m.created = append(m.created, students...)
	return ids, nil
}

func (m *mockStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int64, error) {
	m.listed = filter
	return m.existing[filter.CollegeID], int64(len(m.existing[filter.CollegeID])), nil
}

type mockTeacherRepo struct {
	exists    bool
	created   []*models.Teacher
	createErr error
}

func (m *mockTeacherRepo) ExistsByEmailOrEmployeeID(ctx context.Context, collegeID, email, employeeID string) (bool, error) {
	return m.exists, nil
}

func (m *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	if m.createErr != nil {
		return m.createErr
	}
	teacher.ID = "teacher-1"
	m.created = append(m.created, teacher)
	return nil
}

func (m *mockTeacherRepo) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, int64, error) {
	return []models.Teacher{{ID: "teacher-1", CollegeID: filter.CollegeID}}, 41, nil
}

type mockExamTaskRepo struct {
	items   map[string]*models.ExamTask
	created []*models.ExamTask
}

func (m *mockExamTaskRepo) Create(ctx context.Context, task *models.ExamTask) error {
	task.ID = "task-1"
	m.created = append(m.created, task)
	return nil
}

func (m *mockExamTaskRepo) ListByExamDate(ctx context.Context) ([]models.ExamTask, error) {
	out := make([]models.ExamTask, 0, len(m.created))
	for _, t := range m.created {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockExamTaskRepo) UpdateStatus(ctx context.Context, id string, status models.ExamTaskStatus) (*models.ExamTask, error) {
	task, ok := m.items[id]
	if !ok {
		return nil, appErrors.ErrNoRecord
	}
	task.Status = status
	cp := *task
	return &cp, nil
}

type mockResultRepo struct {
	created []*models.Result
	items   []models.Result
	total   int64
	queries []models.ResultQuery
	err     error
}

func (m *mockResultRepo) Create(ctx context.Context, result *models.Result) error {
	if m.err != nil {
		return m.err
	}
	result.ID = "result-1"
	m.created = append(m.created, result)
	return nil
}

func (m *mockResultRepo) Query(ctx context.Context, q models.ResultQuery) ([]models.Result, int64, error) {
	m.queries = append(m.queries, q)
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.items, m.total, nil
}

type memoryCacheRepo struct {
	values  map[string][]byte
	deleted []string
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{values: make(map[string][]byte)}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			delete(m.values, k)
		}
	}
	return nil
}

func approved(id, name string) *models.College {
	return &models.College{ID: id, CollegeName: name, Email: id + "@college.edu", Status: models.CollegeStatusApproved}
}

func requireAppError(t *testing.T, err error, status int) *appErrors.Error {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, status, appErr.Status, appErr.Message)
	return appErr
}

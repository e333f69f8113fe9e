package models

import "time"

const (
	TeacherStatusActive = "active"
	TeacherRole         = "teacher"
)

// Teacher is a staff account owned by a college.
type Teacher struct {
	ID             string    `json:"id"`
	CollegeID      string    `json:"collegeId"`
	CollegeName    string    `json:"collegeName"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	Department     string    `json:"department"`
	Designation    string    `json:"designation"`
	EmployeeID     string    `json:"employeeId"`
	Specialization string    `json:"specialization"`
	JoiningDate    string    `json:"joiningDate"`
	PasswordHash   string    `json:"-"`
	Status         string    `json:"status"`
	Roles          []string  `json:"roles"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// CreateTeacherRequest is the teacher onboarding payload.
type CreateTeacherRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	Department     string `json:"department" validate:"required"`
	Designation    string `json:"designation" validate:"required"`
	EmployeeID     string `json:"employeeId" validate:"required"`
	Specialization string `json:"specialization"`
	JoiningDate    string `json:"joiningDate" validate:"required"`
	Password       string `json:"password" validate:"required"`
}

// TeacherInfo summarises a created teacher.
type TeacherInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

// CreateTeacherResponse is returned by POST /teachers/create.
type CreateTeacherResponse struct {
	TeacherID   string      `json:"teacherId"`
	TeacherInfo TeacherInfo `json:"teacherInfo"`
}

// TeacherFilter narrows a teacher listing.
type TeacherFilter struct {
	CollegeID string
	Search    string
	Page      int
	Limit     int
}

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CollegeStatus tracks the approval workflow of a registered college.
type CollegeStatus string

const (
	CollegeStatusPending  CollegeStatus = "pending"
	CollegeStatusApproved CollegeStatus = "approved"
	CollegeStatusRejected CollegeStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s CollegeStatus) Valid() bool {
	switch s {
	case CollegeStatusPending, CollegeStatusApproved, CollegeStatusRejected:
		return true
	}
	return false
}

// Address is a postal address.
type Address struct {
	Street  string `json:"street" bson:"street" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
	State   string `json:"state" bson:"state" validate:"required"`
	ZipCode string `json:"zipCode" bson:"zipCode" validate:"required"`
}

// Contact identifies a named college official.
type Contact struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Email string `json:"email" bson:"email" validate:"required,email"`
	Phone string `json:"phone" bson:"phone" validate:"required"`
}

// VerificationStatus records which registration details were verified.
type VerificationStatus struct {
	Documents bool `json:"documents" bson:"documents"`
	Email     bool `json:"email" bson:"email"`
	Phone     bool `json:"phone" bson:"phone"`
}

// College is the tenant that owns students, teachers and exam data.
type College struct {
	ID                 string             `json:"id"`
	CollegeName        string             `json:"collegeName"`
	RegistrationNumber string             `json:"registrationNumber"`
	Email              string             `json:"email"`
	PhoneNumber        string             `json:"phoneNumber"`
	Address            Address            `json:"address"`
	Principal          Contact            `json:"principal"`
	Controller         Contact            `json:"controller"`
	PasswordHash       string             `json:"-"`
	Status             CollegeStatus      `json:"status"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	RegistrationDate   time.Time          `json:"registrationDate"`
	LastUpdated        time.Time          `json:"lastUpdated"`
}

// RegisterCollegeRequest is the self-registration payload.
type RegisterCollegeRequest struct {
	CollegeName        string  `json:"collegeName" validate:"required"`
	RegistrationNumber string  `json:"registrationNumber" validate:"required"`
	Email              string  `json:"email" validate:"required,email"`
	PhoneNumber        string  `json:"phoneNumber" validate:"required"`
	Address            Address `json:"address" validate:"required"`
	Principal          Contact `json:"principal" validate:"required"`
	Controller         Contact `json:"controller" validate:"required"`
	Password           string  `json:"password" validate:"required"`
}

// CollegeInfo is the public summary returned after registration.
type CollegeInfo struct {
	CollegeName        string        `json:"collegeName"`
	RegistrationNumber string        `json:"registrationNumber"`
	Email              string        `json:"email"`
	Status             CollegeStatus `json:"status"`
}

// RegisterCollegeResponse is returned by POST /register.
type RegisterCollegeResponse struct {
	CollegeID   string      `json:"collegeId"`
	CollegeInfo CollegeInfo `json:"collegeInfo"`
}

// LoginRequest holds college credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the college identity and its access token.
type LoginResponse struct {
	CollegeID   string `json:"collegeId"`
	CollegeName string `json:"collegeName"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// CollegeClaims is the JWT payload identifying a logged in college.
type CollegeClaims struct {
	CollegeID   string `json:"collegeId"`
	CollegeName string `json:"collegeName"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

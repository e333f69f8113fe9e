package models

import "time"

// StudentStatusActive is assigned to every generated account.
const StudentStatusActive = "active"

// Student is a generated student login account.
type Student struct {
	ID           string    `db:"id" json:"id"`
	CollegeID    string    `db:"college_id" json:"collegeId"`
	CollegeName  string    `db:"college_name" json:"collegeName"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Email        string    `db:"email" json:"email"`
	RollNumber   string    `db:"roll_number" json:"rollNumber"`
	Division     string    `db:"division" json:"division"`
	Year         string    `db:"academic_year" json:"year"`
	Course       string    `db:"course" json:"course"`
	Department   string    `db:"department" json:"department"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	LastUpdated  time.Time `db:"last_updated" json:"lastUpdated"`
}

// StudentEntry is one row of an explicit roster upload. Password is only read
// from legacy clients that do not send a shared batch password.
type StudentEntry struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
	Division   string `json:"division"`
	Year       string `json:"year"`
	Course     string `json:"course"`
	Department string `json:"department"`
	Password   string `json:"password,omitempty"`
}

// BulkCreateStudentsRequest is the explicit roster payload.
type BulkCreateStudentsRequest struct {
	Students []StudentEntry `json:"students"`
	Password string         `json:"password"`
}

// RangeCreateStudentsRequest generates one account per roll number in
// [StartRollNumber, EndRollNumber].
type RangeCreateStudentsRequest struct {
	Year            string     `json:"year"`
	Division        string     `json:"division"`
	Department      string     `json:"department"`
	StartRollNumber FlexString `json:"startRollNumber"`
	EndRollNumber   FlexString `json:"endRollNumber"`
	Password        string     `json:"password"`
}

// StudentBatchResult is returned after a batch is persisted.
type StudentBatchResult struct {
	CreatedCount int      `json:"createdCount"`
	StudentIDs   []string `json:"studentIds"`
}

// StudentPreview is a generated account shown by dry runs.
type StudentPreview struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
	Division   string `json:"division"`
	Year       string `json:"year"`
	Course     string `json:"course,omitempty"`
	Department string `json:"department,omitempty"`
	Username   string `json:"username"`
}

// StudentBatchPreview is returned when a batch is validated without persisting.
type StudentBatchPreview struct {
	DryRun   bool             `json:"dryRun"`
	Count    int              `json:"count"`
	Students []StudentPreview `json:"students"`
}

// StudentConflicts lists batch values that already exist for the college.
type StudentConflicts struct {
	Emails    []string `json:"emails"`
	Usernames []string `json:"usernames"`
}

// Empty reports whether no conflict was found.
func (c StudentConflicts) Empty() bool {
	return len(c.Emails) == 0 && len(c.Usernames) == 0
}

// StudentFilter narrows a student listing.
type StudentFilter struct {
	CollegeID string
	Year      string
	Division  string
	Search    string
	Page      int
	Limit     int
}

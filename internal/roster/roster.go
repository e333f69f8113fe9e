// Package roster generates student login accounts from an explicit roster or
// from a contiguous range of roll numbers. It performs no I/O.
package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/noah-isme/college-portal-api/internal/models"
)

// MaxRangeSpan is the largest allowed endRoll - startRoll.
const MaxRangeSpan = 500

// DefaultEmailDomain is used by range mode when no domain is configured.
const DefaultEmailDomain = "student.college.edu"

var (
	ErrEmptyRoster     = errors.New("no students provided")
	ErrMissingPassword = errors.New("password is required")
	ErrNonNumericRoll  = errors.New("roll numbers must be non-negative integers")
	ErrInvertedRange   = errors.New("start roll number must not exceed end roll number")
	ErrRangeTooLarge   = fmt.Errorf("range cannot exceed %d students", MaxRangeSpan)
)

// FieldError reports required fields missing from the input. Index is the
// roster position, or -1 for range parameters.
type FieldError struct {
	Index  int
	Fields []string
}

func (e *FieldError) Error() string {
	if e.Index < 0 {
		return "missing required fields: " + strings.Join(e.Fields, ", ")
	}
	return fmt.Sprintf("student %d is missing required fields: %s", e.Index+1, strings.Join(e.Fields, ", "))
}

// DuplicateEntryError reports values repeated inside a single batch.
type DuplicateEntryError struct {
	Emails    []string
	Usernames []string
}

func (e *DuplicateEntryError) Error() string {
	var parts []string
	if len(e.Emails) > 0 {
		parts = append(parts, "emails "+strings.Join(e.Emails, ", "))
	}
	if len(e.Usernames) > 0 {
		parts = append(parts, "usernames "+strings.Join(e.Usernames, ", "))
	}
	return "batch repeats " + strings.Join(parts, " and ")
}

// Account is a generated account with its password still in clear text.
type Account struct {
	FirstName  string
	LastName   string
	Email      string
	RollNumber string
	Division   string
	Year       string
	Course     string
	Department string
	Username   string
	Password   string
}

// Preview drops the password.
func (a Account) Preview() models.StudentPreview {
	return models.StudentPreview{
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Email:      a.Email,
		RollNumber: a.RollNumber,
		Division:   a.Division,
		Year:       a.Year,
		Course:     a.Course,
		Department: a.Department,
		Username:   a.Username,
	}
}

// Username concatenates year, division and roll number without separators.
// It returns "" when any part is empty.
func Username(year, division, roll string) string {
	if year == "" || division == "" || roll == "" {
		return ""
	}
	return year + division + roll
}

// FromEntries validates an explicit roster. sharedPassword wins over the
// per-entry password, which only legacy clients send.
func FromEntries(entries []models.StudentEntry, sharedPassword string) ([]Account, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRoster
	}

	accounts := make([]Account, 0, len(entries))
	for i, entry := range entries {
		e := trimEntry(entry)
		if missing := missingEntryFields(e); len(missing) > 0 {
			return nil, &FieldError{Index: i, Fields: missing}
		}

		password := sharedPassword
		if password == "" {
			password = e.Password
		}
		if password == "" {
			return nil, ErrMissingPassword
		}

		accounts = append(accounts, Account{
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Email:      e.Email,
			RollNumber: e.RollNumber,
			Division:   e.Division,
			Year:       e.Year,
			Course:     e.Course,
			Department: e.Department,
			Username:   Username(e.Year, e.Division, e.RollNumber),
			Password:   password,
		})
	}

	if err := checkRepeats(accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// RangeSpec describes a contiguous block of roll numbers.
type RangeSpec struct {
	Year       string
	Division   string
	Department string
	StartRoll  string
	EndRoll    string
}

// FromRange generates one account per roll number in [StartRoll, EndRoll].
// Roll numbers are zero padded to the length of the StartRoll text, so "001"
// yields 001, 002 and so on while "1" yields no padding.
func FromRange(spec RangeSpec, sharedPassword, emailDomain string) ([]Account, error) {
	year := strings.TrimSpace(spec.Year)
	division := strings.TrimSpace(spec.Division)
	department := strings.TrimSpace(spec.Department)
	startText := strings.TrimSpace(spec.StartRoll)
	endText := strings.TrimSpace(spec.EndRoll)

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"year", year},
		{"division", division},
		{"department", department},
		{"startRollNumber", startText},
		{"endRollNumber", endText},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &FieldError{Index: -1, Fields: missing}
	}
	if sharedPassword == "" {
		return nil, ErrMissingPassword
	}

	start, err := parseRoll(startText)
	if err != nil {
		return nil, err
	}
	end, err := parseRoll(endText)
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, ErrInvertedRange
	}
	if end-start > MaxRangeSpan {
		return nil, ErrRangeTooLarge
	}

	if emailDomain == "" {
		emailDomain = DefaultEmailDomain
	}
	width := len(startText)

	span := end - start
	accounts := make([]Account, 0, span+1)
	// Counting by offset keeps a range ending at the integer maximum from wrapping.
	for i := 0; i <= span; i++ {
		padded := fmt.Sprintf("%0*d", width, start+i)
		username := Username(year, division, padded)
		accounts = append(accounts, Account{
			FirstName:  "Student",
			LastName:   padded,
			Email:      strings.ToLower(username) + "@" + emailDomain,
			RollNumber: padded,
			Division:   division,
			Year:       year,
			Department: department,
			Username:   username,
			Password:   sharedPassword,
		})
	}
	return accounts, nil
}

// Keys returns the emails and usernames of a batch, in batch order.
func Keys(accounts []Account) (emails, usernames []string) {
	emails = make([]string, 0, len(accounts))
	usernames = make([]string, 0, len(accounts))
	for _, a := range accounts {
		emails = append(emails, a.Email)
		usernames = append(usernames, a.Username)
	}
	return emails, usernames
}

func parseRoll(text string) (int, error) {
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, ErrNonNumericRoll
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrNonNumericRoll
	}
	return n, nil
}

func trimEntry(e models.StudentEntry) models.StudentEntry {
	return models.StudentEntry{
		FirstName:  strings.TrimSpace(e.FirstName),
		LastName:   strings.TrimSpace(e.LastName),
		Email:      strings.ToLower(strings.TrimSpace(e.Email)),
		RollNumber: strings.TrimSpace(e.RollNumber),
		Division:   strings.TrimSpace(e.Division),
		Year:       strings.TrimSpace(e.Year),
		Course:     strings.TrimSpace(e.Course),
		Department: strings.TrimSpace(e.Department),
		Password:   e.Password,
	}
}

func missingEntryFields(e models.StudentEntry) []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"firstName", e.FirstName},
		{"lastName", e.LastName},
		{"email", e.Email},
		{"rollNumber", e.RollNumber},
		{"division", e.Division},
		{"year", e.Year},
		{"course", e.Course},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func checkRepeats(accounts []Account) error {
	seenEmail := make(map[string]struct{}, len(accounts))
	seenUser := make(map[string]struct{}, len(accounts))
	dup := &DuplicateEntryError{}
	for _, a := range accounts {
		if _, ok := seenEmail[a.Email]; ok {
			dup.Emails = appendOnce(dup.Emails, a.Email)
		}
		seenEmail[a.Email] = struct{}{}

		if _, ok := seenUser[a.Username]; ok {
			dup.Usernames = appendOnce(dup.Usernames, a.Username)
		}
		seenUser[a.Username] = struct{}{}
	}
	if len(dup.Emails) == 0 && len(dup.Usernames) == 0 {
		return nil
	}
	return dup
}

func appendOnce(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

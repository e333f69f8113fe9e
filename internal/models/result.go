package models

import "time"

// Result is one student's outcome for one exam.
type Result struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"studentId"`
	ClassName string    `db:"class_name" json:"className"`
	Subject   string    `db:"subject" json:"subject"`
	ExamID    string    `db:"exam_id" json:"examId"`
	TeacherID string    `db:"teacher_id" json:"teacherId"`
	Score     float64   `db:"score" json:"score"`
	Grade     string    `db:"grade" json:"grade"`
	Status    string    `db:"status" json:"status"`
	ExamDate  time.Time `db:"exam_date" json:"examDate"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CreateResultRequest keeps the field names older clients post. Score is a
// pointer so that an explicit zero is distinguishable from a missing value.
type CreateResultRequest struct {
	Student   string   `json:"Student"`
	Class     string   `json:"Class"`
	Subject   string   `json:"Subject"`
	Exam      string   `json:"Exam"`
	Score     *float64 `json:"Score"`
	Grade     string   `json:"Grade"`
	Status    string   `json:"Status"`
	TeacherID string   `json:"TeacherId,omitempty"`
	ExamDate  string   `json:"ExamDate,omitempty"`
}

// ResultFilter narrows a result query. Empty lists and nil bounds impose nothing.
type ResultFilter struct {
	StudentIDs []string   `json:"studentId,omitempty"`
	ClassNames []string   `json:"className,omitempty"`
	Subjects   []string   `json:"subject,omitempty"`
	ExamIDs    []string   `json:"examId,omitempty"`
	TeacherIDs []string   `json:"teacherId,omitempty"`
	MinScore   *float64   `json:"minScore,omitempty"`
	MaxScore   *float64   `json:"maxScore,omitempty"`
	DateFrom   *time.Time `json:"dateFrom,omitempty"`
	DateTo     *time.Time `json:"dateTo,omitempty"`
}

// Result sort fields accepted from clients.
const (
	ResultSortExamDate  = "examDate"
	ResultSortScore     = "score"
	ResultSortCreatedAt = "createdAt"
	ResultSortStudentID = "studentId"
	ResultSortClassName = "className"
	ResultSortSubject   = "subject"
	ResultSortGrade     = "grade"
)

// ResultQuery is a normalised filter, page and sort request.
type ResultQuery struct {
	Filter    ResultFilter `json:"filter"`
	Page      int          `json:"page"`
	Limit     int          `json:"limit"`
	SortField string       `json:"sortField"`
	SortDesc  bool         `json:"sortDesc"`
}

// Offset returns the number of rows skipped before the page.
func (q ResultQuery) Offset() int {
	return (ClampPage(q.Page) - 1) * q.Limit
}

// ResultFilterInput is the filters object of the advanced query body.
type ResultFilterInput struct {
	StudentID StringList `json:"studentId"`
	ClassName StringList `json:"className"`
	Subject   StringList `json:"subject"`
	ExamID    StringList `json:"examId"`
	TeacherID StringList `json:"teacherId"`
	MinScore  *float64   `json:"minScore"`
	MaxScore  *float64   `json:"maxScore"`
	DateFrom  string     `json:"dateFrom"`
	DateTo    string     `json:"dateTo"`
}

// ResultPageInput is the pagination object of the advanced query body.
type ResultPageInput struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ResultSortInput is the sort object of the advanced query body.
type ResultSortInput struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// ResultQueryRequest is the advanced query variant of POST /results.
type ResultQueryRequest struct {
	Filters    ResultFilterInput `json:"filters"`
	Pagination ResultPageInput   `json:"pagination"`
	Sort       ResultSortInput   `json:"sort"`
}

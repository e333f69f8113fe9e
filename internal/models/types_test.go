package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListAcceptsScalarAndArray(t *testing.T) {
	var in ResultFilterInput
	require.NoError(t, json.Unmarshal([]byte(`{"studentId":"s1","subject":["Math"," ","Physics"]}`), &in))
	assert.Equal(t, StringList{"s1"}, in.StudentID)
	assert.Equal(t, StringList{"Math", "Physics"}, in.Subject)
	assert.Nil(t, in.ClassName)

	assert.Error(t, json.Unmarshal([]byte(`{"studentId":12}`), &in))
}

func TestFlexStringKeepsLiteral(t *testing.T) {
	var req RangeCreateStudentsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"startRollNumber":"001","endRollNumber":10}`), &req))
	assert.Equal(t, "001", req.StartRollNumber.String())
	assert.Equal(t, "10", req.EndRollNumber.String())

	assert.Error(t, json.Unmarshal([]byte(`{"startRollNumber":true}`), &req))
}

func TestNewPaginationRoundsUp(t *testing.T) {
	assert.Equal(t, 3, NewPagination(1, 20, 41).TotalPages)
	assert.Equal(t, 2, NewPagination(1, 20, 40).TotalPages)
	assert.Equal(t, 0, NewPagination(1, 20, 0).TotalPages)
}

func TestClampPageBoundsOffset(t *testing.T) {
	assert.Equal(t, 1, ClampPage(-4))
	assert.Equal(t, 7, ClampPage(7))
	assert.Equal(t, MaxPage, ClampPage(math.MaxInt))

	q := ResultQuery{Page: math.MaxInt, Limit: 100}
	assert.Equal(t, (MaxPage-1)*100, q.Offset())
	assert.Zero(t, ResultQuery{Page: 0, Limit: 100}.Offset())
}

func TestExamTaskStatusValid(t *testing.T) {
	assert.True(t, ExamTaskStatus("In Progress").Valid())
	assert.False(t, ExamTaskStatus("in progress").Valid())
	assert.True(t, CollegeStatusApproved.Valid())
	assert.False(t, CollegeStatus("archived").Valid())
}

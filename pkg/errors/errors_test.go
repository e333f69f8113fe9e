package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("boom")
	got := FromError(cause)

	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.ErrorIs(t, got, cause)
	assert.Nil(t, FromError(nil))
}

func TestWithDetailsLeavesSentinelUntouched(t *testing.T) {
	got := WithDetails(ErrDuplicate, "Some students already exist", map[string]int{"emails": 2})

	assert.Equal(t, "Some students already exist", got.Message)
	assert.NotNil(t, got.Details)
	assert.Equal(t, "duplicate record", ErrDuplicate.Message)
	assert.Nil(t, ErrDuplicate.Details)
}

func TestSentinelMatching(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", Wrap(ErrDuplicate, ErrDuplicate.Code, ErrDuplicate.Status, "students_email_key"))
	assert.True(t, IsDuplicate(wrapped))
	assert.False(t, IsNoRecord(wrapped))
	assert.True(t, IsNoRecord(fmt.Errorf("find: %w", ErrNoRecord)))
}

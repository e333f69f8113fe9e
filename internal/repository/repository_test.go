package repository

import (
	"math"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestPageBoundsClampsPage(t *testing.T) {
	limit, offset := pageBounds(math.MaxInt, 100)
	assert.Equal(t, uint64(100), limit)
	assert.Equal(t, uint64((models.MaxPage-1)*100), offset)

	limit, offset = pageBounds(0, 0)
	assert.Equal(t, uint64(20), limit)
	assert.Zero(t, offset)
}

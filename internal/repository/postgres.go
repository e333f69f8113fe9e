package repository

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

const pqUniqueViolation = "23505"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// pgError wraps err with op, mapping unique violations onto ErrDuplicate so
// services can report them like a pre-insert duplicate check.
func pgError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return fmt.Errorf("%s: %w (%s)", op, appErrors.ErrDuplicate, pqErr.Constraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// validID reports whether id can match a UUID primary key. Lookups with a
// malformed id are treated as misses instead of round-tripping a cast error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func pageBounds(page, limit int) (uint64, uint64) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uint64(limit), uint64((models.ClampPage(page) - 1) * limit)
}

func inSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

const (
	// ContextCollegeKey is the gin context key holding the acting college id.
	ContextCollegeKey = "college_id"
	// ContextClaimsKey holds token claims when the caller used a bearer token.
	ContextClaimsKey = "college_claims"
	// CollegeHeader carries the college id from legacy browser clients.
	CollegeHeader = "X-College-ID"
)

// TokenParser validates college access tokens.
type TokenParser interface {
	Parse(token string) (*models.CollegeClaims, error)
}

// CollegeIdentity resolves the acting college. A bearer token wins; the
// X-College-ID header is only honoured when trustHeader is set.
func CollegeIdentity(tokens TokenParser, trustHeader bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
				return
			}
			claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				response.Error(c, err)
				return
			}
			c.Set(ContextClaimsKey, claims)
			c.Set(ContextCollegeKey, claims.CollegeID)
			c.Next()
			return
		}

		if trustHeader {
			if id := strings.TrimSpace(c.GetHeader(CollegeHeader)); id != "" {
				c.Set(ContextCollegeKey, id)
				c.Next()
				return
			}
		}

		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized - College authentication required"))
	}
}

// CollegeID returns the college resolved by CollegeIdentity.
func CollegeID(c *gin.Context) string {
	return c.GetString(ContextCollegeKey)
}

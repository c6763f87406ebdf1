package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

const userIDKey = "user_id"

const bearerPrefix = "Bearer "

// AuthRequired validates the bearer token and stores the authenticated
// caller id on the request context.
func AuthRequired(tokens ports.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		subject, err := tokens.Subject(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userIDKey, subject)
		c.Next()
	}
}

// CurrentUserID returns the caller id set by AuthRequired, or "" when the
// request was not authenticated.
func CurrentUserID(c *gin.Context) string {
	if value, exists := c.Get(userIDKey); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

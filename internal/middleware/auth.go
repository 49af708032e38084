package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"helperbee_backend/internal/identity"
	"helperbee_backend/internal/logger"
	"helperbee_backend/pkg/apperrors"
	"helperbee_backend/pkg/contextkeys"
)

// Auth validates the bearer token and stores the caller identity on the
// request. Role and ownership checks happen in the services.
func Auth(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Missing Authorization header"))
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid Authorization header"))
			c.Abort()
			return
		}

		id, err := verifier.Verify(token)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(string(contextkeys.IdentityContextKey), id)

		// Enrich the request context so service logs carry the user id.
		ctx := logger.WithUserID(c.Request.Context(), id.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

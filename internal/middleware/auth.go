package middleware

import (
	"net/http"
	"strings"

	"referral-coordination-backend/pkg/auth"
	"referral-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates every business route behind a bearer token. The
// verifier decides what a valid token is; route wiring does not care.
func AuthMiddleware(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		principal, err := verifier.Verify(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized - Valid token required")
			c.Abort()
			return
		}

		// Inject principal into context
		c.Set("principal", principal)

		c.Next()
	}
}

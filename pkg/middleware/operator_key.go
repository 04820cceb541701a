package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"mindwijzer/pkg/utils"
)

// OperatorKeyMiddleware guards destructive admin endpoints with a second
// factor next to the admin role: a plaintext key checked against the
// bcrypt hash in ADMIN_OPERATOR_KEY_HASH.
func OperatorKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := os.Getenv("ADMIN_OPERATOR_KEY_HASH")
		if hash == "" {
			utils.RespondError(c, http.StatusServiceUnavailable, "Operator key not configured")
			c.Abort()
			return
		}

		key := c.GetHeader("X-Operator-Key")
		if key == "" || utils.CompareOperatorKey(hash, key) != nil {
			utils.RespondError(c, http.StatusForbidden, "Invalid operator key")
			c.Abort()
			return
		}

		c.Next()
	}
}

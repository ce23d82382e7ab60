package middleware

import (
	"crypto/subtle"

	"swingshift_backend/internal/config"
	"swingshift_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates admin routes on the static X-API-Key header. There is no
// account model; one shared secret covers all administrative access.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Admin.APIKey)) != 1 {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

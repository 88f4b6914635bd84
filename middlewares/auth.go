package middlewares

import (
	"github.com/TanthaiP001/spprosupply/pkg/resp"
	"github.com/TanthaiP001/spprosupply/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware ตรวจ access token จาก httpOnly cookie
// และ (ถ้ามี) บังคับ role
func AuthMiddleware(jwtSecret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetAccessTokenCookie(c)
		if token == "" {
			resp.Unauthorized(c, "Unauthorized - No token provided")
			c.Abort()
			return
		}

		payload := utils.VerifyAccessToken(token, jwtSecret)
		if payload == nil {
			resp.Unauthorized(c, "Unauthorized - Invalid token")
			c.Abort()
			return
		}

		c.Set("userId", payload.UserID)
		c.Set("email", payload.Email)
		c.Set("role", payload.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if payload.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "Forbidden - Admin access required")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

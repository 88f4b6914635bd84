package middlewares

import (
	"strconv"

	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VerifyAdmin เช็คว่า userId นี้มี role เป็น admin จริงจาก DB
func VerifyAdmin(db *gorm.DB, userID uint) bool {
	var user entity.User
	if err := db.Select("role").First(&user, userID).Error; err != nil {
		return false
	}
	return user.Role == "admin"
}

// RequireAdminHeader ใช้กับ API หลังบ้านทั้งหมด:
// อ่าน x-user-id header แล้วตรวจ role จาก DB
func RequireAdminHeader(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.GetHeader("X-User-Id")
		if idStr == "" {
			resp.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil || !VerifyAdmin(db, uint(id)) {
			resp.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set("userId", uint(id))
		c.Set("role", "admin")
		c.Next()
	}
}

package middlewares

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/TanthaiP001/spprosupply/pkg/resp"
	"github.com/TanthaiP001/spprosupply/utils"

	"github.com/gin-gonic/gin"
)

const CSRFHeader = "X-Csrf-Token"

// GenerateCSRFToken สร้าง token รูปแบบ <random32bytes-hex>.<hmac-sha256-hex>
func GenerateCSRFToken(secret string) string {
	buf := make([]byte, 32)
	rand.Read(buf)
	token := hex.EncodeToString(buf)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	signature := hex.EncodeToString(mac.Sum(nil))

	return token + "." + signature
}

// VerifyCSRFToken ตรวจลายเซ็นด้วย HMAC เดิม เทียบแบบ constant-time
func VerifyCSRFToken(token, secret string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(parts[0]))
	expected := hex.EncodeToString(mac.Sum(nil))

	return timingSafeEqual(parts[1], expected)
}

// เทียบ string โดยไม่ short-circuit กัน timing side-channel
func timingSafeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := 0; i < len(a); i++ {
		result |= a[i] ^ b[i]
	}
	return result == 0
}

// CSRFProtection ใช้ double-submit cookie pattern:
// token ต้องอยู่ทั้งใน cookie (เซ็นแล้ว) และ header x-csrf-token ค่าตรงกันเป๊ะ
// GET/HEAD/OPTIONS ไม่ต้องตรวจ
func CSRFProtection(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
			return
		}

		cookieToken := utils.GetCSRFTokenCookie(c)
		if cookieToken == "" {
			resp.Forbidden(c, "CSRF token missing")
			c.Abort()
			return
		}

		if !VerifyCSRFToken(cookieToken, secret) {
			resp.Forbidden(c, "Invalid CSRF token")
			c.Abort()
			return
		}

		headerToken := c.GetHeader(CSRFHeader)
		if headerToken == "" {
			resp.Forbidden(c, "CSRF token required in header")
			c.Abort()
			return
		}

		if headerToken != cookieToken {
			resp.Forbidden(c, "CSRF token mismatch")
			c.Abort()
			return
		}

		c.Next()
	}
}

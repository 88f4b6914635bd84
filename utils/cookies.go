package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
	CSRFTokenCookie    = "csrf_token"
)

// cookie ทุกตัวเป็น httpOnly + SameSite=Strict
// Secure เปิดเฉพาะ release mode (โปรดักชัน)
func setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}

func SetAccessTokenCookie(c *gin.Context, token string, maxAge int) {
	setCookie(c, AccessTokenCookie, token, maxAge)
}

func SetRefreshTokenCookie(c *gin.Context, token string, maxAge int) {
	setCookie(c, RefreshTokenCookie, token, maxAge)
}

func SetCSRFTokenCookie(c *gin.Context, token string, maxAge int) {
	setCookie(c, CSRFTokenCookie, token, maxAge)
}

func GetAccessTokenCookie(c *gin.Context) string {
	v, _ := c.Cookie(AccessTokenCookie)
	return v
}

func GetRefreshTokenCookie(c *gin.Context) string {
	v, _ := c.Cookie(RefreshTokenCookie)
	return v
}

func GetCSRFTokenCookie(c *gin.Context) string {
	v, _ := c.Cookie(CSRFTokenCookie)
	return v
}

func ClearAuthCookies(c *gin.Context) {
	setCookie(c, AccessTokenCookie, "", -1)
	setCookie(c, RefreshTokenCookie, "", -1)
}

func ClearAllAuthCookies(c *gin.Context) {
	ClearAuthCookies(c)
	setCookie(c, CSRFTokenCookie, "", -1)
}

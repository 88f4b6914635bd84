package middlewares

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware(siteURL string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     []string{siteURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-CSRF-Token", "X-User-Id"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true, // ต้องเปิดเพราะ auth อยู่ใน cookie
		MaxAge:           12 * time.Hour,
	}
	return cors.New(cfg)
}

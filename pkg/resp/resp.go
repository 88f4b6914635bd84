package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON error envelope เดียวกันทุก endpoint: {"error": "..."}

func OK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// ServerError ซ่อนรายละเอียด error ตอน release mode
func ServerError(c *gin.Context, msg string, err error) {
	body := gin.H{"error": msg}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

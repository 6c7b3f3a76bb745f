package response

import "github.com/gin-gonic/gin"

// Сущности отдаются как есть, обёртка нужна только ошибкам.

// ErrorBody описывает тело ошибки для swagger-документации
type ErrorBody struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

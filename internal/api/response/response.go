package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the body of every 4xx/5xx answer that carries no result.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes data with the given status.
func JSON(c *gin.Context, httpStatus int, data any) {
	c.JSON(httpStatus, data)
}

// Error writes {"error": msg}.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, ErrorBody{Error: msg})
}

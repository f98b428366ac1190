package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope every failed request returns:
//
//	{"success": false, "error": 404, "message": "Not found"}
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// JSONError writes the standard error envelope and aborts the request.
func JSONError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorBody{
		Success: false,
		Error:   code,
		Message: message,
	})
}

// OK writes a success envelope with the given payload fields merged in.
// Every success body carries "success": true plus endpoint-specific keys
// ("list", "lists", "pick", "books", ...).
func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(204)
}

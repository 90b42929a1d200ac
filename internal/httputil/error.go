package httputil

import (
	"github.com/gin-gonic/gin"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid number"`
}

// NewError writes an HTTPError response for the error passed in.
func NewError(c *gin.Context, status int, err error) {
	e := HTTPError{
		Error: err.Error(),
	}
	c.JSON(status, e)
}

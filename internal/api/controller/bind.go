package controller

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes the body into req and turns binding failures into the
// message sent back with a 400.
func bindJSON(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := jsonFieldName(verrs[0])
		return fmt.Errorf("missing required key '%s' in the JSON body", field)
	}
	if errors.Is(err, io.EOF) {
		return errors.New("request body must be a JSON object")
	}
	return fmt.Errorf("invalid JSON body: %v", err)
}

// jsonFieldName maps the Go field name back to the request key. Only
// single-word fields carry a required tag.
func jsonFieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

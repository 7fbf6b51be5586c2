package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"talkscript/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateRequest binds the JSON body, checks struct tags and then domain
// rules. Every failure is a client error.
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
			fieldError := validationErrs[0]
			field := strings.ToLower(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				return errors.NewBadRequestError(fmt.Sprintf("missing %s", field))
			default:
				return errors.NewBadRequestError(fmt.Sprintf("invalid %s", field))
			}
		}
		return errors.NewBadRequestError("invalid JSON body")
	}

	// Then, perform domain validation if the struct implements Validator
	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Package apperror turns request validation failures into client-facing messages.
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	errRequired = errors.New("is required")
)

var tagErrors = map[string]error{
	"required": errRequired,
}

// FieldErrors lists one {field: message} pair per failed validation rule.
func FieldErrors(err error) []map[string]string {
	out := make([]map[string]string, 0)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}

	for _, e := range verrs {
		msg := fmt.Sprintf("%s is invalid", e.Field())
		if v, ok := tagErrors[e.Tag()]; ok {
			msg = v.Error()
		}
		out = append(out, map[string]string{e.Field(): msg})
	}
	return out
}

package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req)
// on the gateway's request payloads, rendering failures in pt-BR.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into the pt-BR message the
// screens display, matching the rest of the user-facing error surface.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("o campo %s é obrigatório", field)
	case "email":
		return fmt.Sprintf("o campo %s deve ser um email válido", field)
	case "gt":
		return fmt.Sprintf("o campo %s deve ser maior que %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("o campo %s deve ter no mínimo %s caracteres", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("o campo %s deve ser um destes valores: %s", field, fe.Param())
	default:
		return fmt.Sprintf("o campo %s é inválido", field)
	}
}

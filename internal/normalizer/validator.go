package normalizer

import (
	"errors"
	"fmt"

	"github.com/TDL-133/ai-weekly-fr/internal/validator"
)

// ErrValidationFailed is matched by every *ValidationError.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError carries the structural validation result of a rejected document.
type ValidationError struct {
	Result *validator.ValidationResult
}

func (e *ValidationError) Error() string {
	if e.Result == nil || len(e.Result.Errors) == 0 {
		return ErrValidationFailed.Error()
	}

	return fmt.Sprintf("%s: %d error(s), first: %s", ErrValidationFailed, len(e.Result.Errors), e.Result.Errors[0])
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// validate runs the structural validator over a loose document.
func (p *Processor) validate(doc any) *validator.ValidationResult {
	return p.validator.ValidateNewsletter(doc)
}

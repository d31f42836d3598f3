package validator

import (
	"fmt"
	"io"
)

// ValidationResult contains validation results.
// Valid is true exactly when Errors is empty; warnings never affect it.
type ValidationResult struct {
	Stats    *Stats   `json:"stats,omitempty"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Valid    bool     `json:"valid"`
}

// Stats contains validation statistics. It is nil when validation stopped early.
type Stats struct {
	Balance       BalanceResult `json:"balance"`
	TotalArticles int           `json:"totalArticles"`
}

func (r *ValidationResult) addError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *ValidationResult) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// String returns string representation of validation result.
func (r *ValidationResult) String() string {
	status := "✅ VALID"
	if !r.Valid {
		status = "❌ INVALID"
	}

	if r.Stats == nil {
		return fmt.Sprintf("%s | Errors: %d | Warnings: %d", status, len(r.Errors), len(r.Warnings))
	}

	return fmt.Sprintf(
		"%s | Articles: %d | Errors: %d | Warnings: %d | %s",
		status,
		r.Stats.TotalArticles,
		len(r.Errors),
		len(r.Warnings),
		r.Stats.Balance.Message,
	)
}

// PrintErrors prints validation errors in readable format.
func (r *ValidationResult) PrintErrors(w io.Writer) {
	if len(r.Errors) == 0 {
		return
	}

	fmt.Fprintln(w, "❌ Validation errors:")

	for _, e := range r.Errors {
		fmt.Fprintf(w, "   - %s\n", e)
	}
}

// PrintWarnings prints validation warnings.
func (r *ValidationResult) PrintWarnings(w io.Writer) {
	if len(r.Warnings) == 0 {
		return
	}

	fmt.Fprintln(w, "⚠️  Warnings:")

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "   - %s\n", warn)
	}
}

// PrintStats prints the article count and balance summary.
func (r *ValidationResult) PrintStats(w io.Writer) {
	if r.Stats == nil {
		return
	}

	fmt.Fprintln(w, "📊 Stats:")
	fmt.Fprintf(w, "   - Total articles: %d\n", r.Stats.TotalArticles)
	fmt.Fprintf(w, "   - Source balance: %s\n", r.Stats.Balance.Message)
}

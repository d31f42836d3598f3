package renderer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidWeekDate is returned when a week range matches the expected shape
// but names a date that does not exist.
var ErrInvalidWeekDate = errors.New("invalid date in week range")

var weekRegex = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})\s+to\s+(\d{4})-(\d{2})-(\d{2})`)

var frenchMonths = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces & < > " and ' with their entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// FormatDateRangeFrench turns "2026-01-11 to 2026-01-17" into "11-17 janvier 2026".
// Month and year come from the start date. Input that does not match is returned unchanged.
func FormatDateRangeFrench(week string) string {
	m := weekRegex.FindStringSubmatch(week)
	if m == nil {
		return week
	}

	month, err := strconv.Atoi(m[2])
	if err != nil || month < 1 || month > len(frenchMonths) {
		return week
	}

	return fmt.Sprintf("%s-%s %s %s", m[3], m[6], frenchMonths[month-1], m[1])
}

// ParseWeek returns the start and end dates of a week range. ok is false when
// the string holds no range.
func ParseWeek(week string) (start, end time.Time, ok bool, err error) {
	m := weekRegex.FindStringSubmatch(week)
	if m == nil {
		return time.Time{}, time.Time{}, false, nil
	}

	start, err = time.Parse(dateLayout, fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3]))
	if err != nil {
		return time.Time{}, time.Time{}, true, fmt.Errorf("%w: %w", ErrInvalidWeekDate, err)
	}

	end, err = time.Parse(dateLayout, fmt.Sprintf("%s-%s-%s", m[4], m[5], m[6]))
	if err != nil {
		return time.Time{}, time.Time{}, true, fmt.Errorf("%w: %w", ErrInvalidWeekDate, err)
	}

	return start, end, true, nil
}

// Filename returns the archive name AI_Weekly_<start>_to_<end>.html. When week
// holds no range, the seven days ending at now are used.
func Filename(week string, now time.Time) (string, error) {
	start, end, ok, err := ParseWeek(week)
	if err != nil {
		return "", err
	}

	if !ok {
		end = now.UTC()
		start = end.Add(-7 * 24 * time.Hour)
	}

	return fmt.Sprintf("AI_Weekly_%s_to_%s.html", start.Format(dateLayout), end.Format(dateLayout)), nil
}

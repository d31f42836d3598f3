package utils

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether raw is an absolute http or https URL with a host.
// Surrounding whitespace is ignored.
func IsValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}

package renderer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<b>", "&lt;b&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"l'IA", "l&#039;IA"},
		{"&amp;", "&amp;amp;"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHTML(tt.in), tt.in)
	}
}

func TestFormatDateRangeFrench(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"january", "2026-01-11 to 2026-01-17", "11-17 janvier 2026"},
		{"accented month", "2025-08-04 to 2025-08-10", "04-10 août 2025"},
		{"month of start date", "2025-12-29 to 2026-01-04", "29-04 décembre 2025"},
		{"embedded", "Semaine 2026-02-02 to 2026-02-08 !", "02-08 février 2026"},
		{"no match", "Week 3", "Week 3"},
		{"month out of range", "2026-13-01 to 2026-13-07", "2026-13-01 to 2026-13-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateRangeFrench(tt.in))
		})
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 1, 20, 15, 0, 0, 0, time.UTC)

	name, err := Filename("2026-01-11 to 2026-01-17", now)
	require.NoError(t, err)
	assert.Equal(t, "AI_Weekly_2026-01-11_to_2026-01-17.html", name)

	name, err = Filename("no dates here", now)
	require.NoError(t, err)
	assert.Equal(t, "AI_Weekly_2026-01-13_to_2026-01-20.html", name)

	_, err = Filename("2026-02-30 to 2026-03-05", now)
	assert.ErrorIs(t, err, ErrInvalidWeekDate)
}

func TestParseWeek(t *testing.T) {
	start, end, ok, err := ParseWeek("2026-01-11  to  2026-01-17")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC), end)

	_, _, ok, err = ParseWeek("2026-01-11")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "archive")

	path, err := Save("<html></html>", "index.html", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(content))

	// overwrites
	_, err = Save("second", "index.html", dir)
	require.NoError(t, err)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestCopyStylesheet(t *testing.T) {
	dist := t.TempDir()

	path, err := CopyStylesheet(dist)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dist, "src", "styles", "newsletter.css"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), ".text-red-500")
}

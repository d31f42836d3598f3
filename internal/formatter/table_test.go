package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTable(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:   "Basic table formatting",
			header: []string{"Header 1", "Header 2"},
			rows:   [][]string{{"val 1", "val 2"}},
			expected: `
| Header 1 | Header 2 |
| -------- | -------- |
| val 1    | val 2    |
`,
		},
		{
			name:   "Trim spaces in cells",
			header: []string{"  Col A  ", "Col B"},
			rows:   [][]string{{"  val A  ", "  val B"}},
			expected: `
| Col A | Col B |
| ----- | ----- |
| val A | val B |
`,
		},
		{
			name:   "Minimum column width",
			header: []string{"H1", "H2"},
			rows:   [][]string{{"v1", "v2"}},
			expected: `
| H1  | H2  |
| --- | --- |
| v1  | v2  |
`,
		},
		{
			name:   "Accented labels",
			header: []string{"Catégorie", "Articles"},
			rows:   [][]string{{"Bon à Savoir", "7"}, {"Critique", "9"}},
			expected: `
| Catégorie    | Articles |
| ------------ | -------- |
| Bon à Savoir | 7        |
| Critique     | 9        |
`,
		},
		{
			name:   "Wide characters",
			header: []string{"Date", "Event"},
			rows:   [][]string{{"2025-01-01", "消防處：增至83死。"}, {"2025-01-02", "Short text"}},
			expected: `
| Date       | Event              |
| ---------- | ------------------ |
| 2025-01-01 | 消防處：增至83死。 |
| 2025-01-02 | Short text         |
`,
		},
		{
			name:   "Ragged rows",
			header: []string{"A", "B", "C"},
			rows:   [][]string{{"x"}},
			expected: `
| A   | B   | C   |
| --- | --- | --- |
| x   |     |     |
`,
		},
		{
			name: "No header",
			rows: [][]string{{"✅", "TLDR AI", "3"}},
			expected: `
| ✅  | TLDR AI | 3   |
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTable(tt.header, tt.rows)

			assert.Equal(t, strings.TrimSpace(tt.expected), strings.TrimSpace(got))
		})
	}
}

func TestFormatTable_Empty(t *testing.T) {
	assert.Empty(t, FormatTable(nil, nil))
	assert.Nil(t, TableLines(nil, nil))
}

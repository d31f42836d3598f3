package renderer

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// StylesheetPath is where the stylesheet lives relative to the dist directory.
const StylesheetPath = "src/styles/newsletter.css"

//go:embed styles/newsletter.css
var stylesheet []byte

// Save writes html to dir/name, creating dir first when needed. It returns the written path.
func Save(html, name, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// CopyStylesheet writes the built-in stylesheet under distDir and returns its path.
func CopyStylesheet(distDir string) (string, error) {
	path := filepath.Join(distDir, StylesheetPath)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create stylesheet directory: %w", err)
	}

	if err := os.WriteFile(path, stylesheet, 0o644); err != nil {
		return "", fmt.Errorf("failed to write stylesheet: %w", err)
	}

	return path, nil
}

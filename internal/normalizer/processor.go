// Package normalizer loads newsletter data files and turns them into typed models.
//
// Data is decoded loosely first so the structural validator can report every
// problem in a malformed document; only a valid document is transformed.
package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/models"
	"github.com/TDL-133/ai-weekly-fr/internal/validator"
)

// Loading errors.
var (
	ErrDataFileNotFound = errors.New("data file not found")
	ErrInvalidJSON      = errors.New("invalid JSON")
)

// Result is the outcome of processing one data file.
type Result struct {
	Newsletter *models.Newsletter
	Validation *validator.ValidationResult
}

// Processor handles data processing and transformation.
type Processor struct {
	validator   *validator.Validator
	transformer *Transformer
}

// NewProcessor creates a new processor using the thresholds of cfg.
func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{
		validator:   validator.NewValidator(cfg),
		transformer: NewTransformer(),
	}
}

// LoadFile reads a data file.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataFileNotFound, path)
		}

		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}

// Parse decodes raw JSON into a loose document.
func Parse(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return doc, nil
}

// ProcessFile loads, validates and transforms the data file at path.
func (p *Processor) ProcessFile(path string) (*Result, error) {
	data, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return p.Process(data)
}

// Process validates and transforms raw JSON. A document that fails validation
// returns the partial Result alongside a *ValidationError so callers can print it.
func (p *Processor) Process(data []byte) (*Result, error) {
	// 1. Parse the input data
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// 2. Validate the document
	result := &Result{Validation: p.validate(doc)}
	if !result.Validation.Valid {
		return result, &ValidationError{Result: result.Validation}
	}

	// 3. Transform the data
	newsletter, err := p.transformer.Transform(doc)
	if err != nil {
		return result, fmt.Errorf("transformation failed: %w", err)
	}

	result.Newsletter = newsletter

	return result, nil
}

// Package config provides configuration management for the newsletter tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/TDL-133/ai-weekly-fr/internal/models"
)

// Configuration validation errors.
var (
	ErrNoSources                  = errors.New("at least one source is required")
	ErrEmptySourceName            = errors.New("source name must not be empty")
	ErrDuplicateSource            = errors.New("duplicate source name")
	ErrNoCategories               = errors.New("at least one category is required")
	ErrCategoryMissingKey         = errors.New("category key is required")
	ErrCategoryMissingLabel       = errors.New("category label is required")
	ErrCategoryRange              = errors.New("category min cannot exceed max")
	ErrInvalidMinArticles         = errors.New("validation.min_articles must be non-negative")
	ErrInvalidSourceDifference    = errors.New("validation.max_source_difference must be non-negative")
	ErrInvalidReportDifference    = errors.New("validation.max_report_difference must be non-negative")
	ErrInvalidMaxPerSource        = errors.New("validation.max_per_source must be at least 1")
	ErrRecommendedTotalExceedsMax = errors.New("validation.recommended_min_total cannot exceed validation.recommended_max_total")
	ErrMissingSourcePattern       = errors.New("extraction.source_pattern is required")
	ErrSourcePatternGroup         = errors.New("extraction.source_pattern must have one capture group")
	ErrMissingHeadingTag          = errors.New("extraction.heading_tag is required")
	ErrMissingArticleMarker       = errors.New("extraction.article_marker is required")
	ErrMissingSourceSelector      = errors.New("extraction.source_selector is required")
	ErrMissingArticleSelector     = errors.New("extraction.article_selector is required")
	ErrUnknownCategoryKey         = errors.New("category key must be one of: critique, important, goodToKnow")
	ErrDuplicateCategory          = errors.New("duplicate category key")
	ErrMissingDataFile            = errors.New("paths.data_file is required")
	ErrMissingDistDir             = errors.New("paths.dist_dir is required")
	ErrInvalidLogLevel            = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Environment variables that override file settings.
const (
	EnvDataFile = "NEWSLETTER_DATA_FILE"
	EnvDistDir  = "NEWSLETTER_DIST_DIR"
	EnvLogLevel = "NEWSLETTER_LOG_LEVEL"
	EnvLogFile  = "NEWSLETTER_LOG_FILE"
)

// DefaultConfigPath is where the commands look for a configuration file.
const DefaultConfigPath = "configs/newsletter.yaml"

// Config represents the complete newsletter configuration.
type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Sources    []string         `yaml:"sources"`
	Categories []CategoryConfig `yaml:"categories"`
	Validation ValidationConfig `yaml:"validation"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PathsConfig defines where data is read from and output written to.
type PathsConfig struct {
	DataFile     string `yaml:"data_file"`
	DistDir      string `yaml:"dist_dir"`
	ArchiveDir   string `yaml:"archive_dir"`
	LatestFile   string `yaml:"latest_file"`
	TemplatesDir string `yaml:"templates_dir"`
	CSSPath      string `yaml:"css_path"`
}

// CategoryConfig describes one newsletter section and its target article range.
type CategoryConfig struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
}

// ValidationConfig defines the thresholds of both validators.
type ValidationConfig struct {
	MinArticles         int `yaml:"min_articles"`
	MaxSourceDifference int `yaml:"max_source_difference"`
	MaxReportDifference int `yaml:"max_report_difference"`
	MaxPerSource        int `yaml:"max_per_source"`
	RecommendedMinTotal int `yaml:"recommended_min_total"`
	RecommendedMaxTotal int `yaml:"recommended_max_total"`
}

// ExtractionConfig defines the markers scanned for in rendered HTML.
// The selectors describe the same markers for the DOM cross-check and must
// agree with SourcePattern and ArticleMarker.
type ExtractionConfig struct {
	SourcePattern   string `yaml:"source_pattern"`
	HeadingTag      string `yaml:"heading_tag"`
	ArticleMarker   string `yaml:"article_marker"`
	SourceSelector  string `yaml:"source_selector"`
	ArticleSelector string `yaml:"article_selector"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultSources is the closed set of newsletter sources.
var DefaultSources = []string{
	"Alpha Signal",
	"Mozza Bytes",
	"Upmynt",
	"NLP Newsletter",
	"The AI Report",
	"TLDR AI",
	"AI Tidbits",
	"Superhuman",
	"IA Ethique Insider",
	"Human in the Loop",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			DataFile:   "data/newsletter-data.json",
			DistDir:    "dist",
			LatestFile: "index.html",
			CSSPath:    "dist/src/styles/newsletter.css",
		},
		Sources: append([]string(nil), DefaultSources...),
		Categories: []CategoryConfig{
			{Key: "critique", Label: "Critique", Color: "red", Min: 8, Max: 10},
			{Key: "important", Label: "Important", Color: "yellow", Min: 8, Max: 10},
			{Key: "goodToKnow", Label: "Bon à Savoir", Color: "green", Min: 7, Max: 10},
		},
		Validation: ValidationConfig{
			MinArticles:         25,
			MaxSourceDifference: 3,
			MaxReportDifference: 1,
			MaxPerSource:        3,
			RecommendedMinTotal: 25,
			RecommendedMaxTotal: 27,
		},
		Extraction: ExtractionConfig{
			SourcePattern:   `<span>([^<]+)</span>`,
			HeadingTag:      "h2",
			ArticleMarker:   "<article",
			SourceSelector:  "span",
			ArticleSelector: "article",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load resolves the configuration used by the commands: it loads a .env file if present,
// reads path (or the defaults when path is empty and DefaultConfigPath does not exist),
// then applies environment overrides.
func Load(path string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err == nil {
			path = DefaultConfigPath
		}
	}

	cfg := Default()

	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfig loads configuration from YAML file, on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.Paths.DataFile = v
	}

	if v := os.Getenv(EnvDistDir); v != "" {
		c.Paths.DistDir = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Paths.DataFile == "" {
		return ErrMissingDataFile
	}

	if c.Paths.DistDir == "" {
		return ErrMissingDistDir
	}

	if len(c.Sources) == 0 {
		return ErrNoSources
	}

	seen := make(map[string]bool, len(c.Sources))

	for i, name := range c.Sources {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: sources[%d]", ErrEmptySourceName, i)
		}

		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSource, name)
		}

		seen[name] = true
	}

	if len(c.Categories) == 0 {
		return ErrNoCategories
	}

	knownKeys := make(map[string]bool, len(models.CategoryKeys))
	for _, key := range models.CategoryKeys {
		knownKeys[key] = true
	}

	seenKeys := make(map[string]bool, len(c.Categories))

	for i, cat := range c.Categories {
		if cat.Key == "" {
			return fmt.Errorf("%w: categories[%d]", ErrCategoryMissingKey, i)
		}

		if !knownKeys[cat.Key] {
			return fmt.Errorf("%w: %q", ErrUnknownCategoryKey, cat.Key)
		}

		if seenKeys[cat.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.Key)
		}

		seenKeys[cat.Key] = true

		if cat.Label == "" {
			return fmt.Errorf("%w: categories[%d]", ErrCategoryMissingLabel, i)
		}

		if cat.Min > cat.Max {
			return fmt.Errorf("%w: %s", ErrCategoryRange, cat.Key)
		}
	}

	v := c.Validation
	if v.MinArticles < 0 {
		return ErrInvalidMinArticles
	}

	if v.MaxSourceDifference < 0 {
		return ErrInvalidSourceDifference
	}

	if v.MaxReportDifference < 0 {
		return ErrInvalidReportDifference
	}

	if v.MaxPerSource < 1 {
		return ErrInvalidMaxPerSource
	}

	if v.RecommendedMinTotal > v.RecommendedMaxTotal {
		return ErrRecommendedTotalExceedsMax
	}

	if c.Extraction.SourcePattern == "" {
		return ErrMissingSourcePattern
	}

	re, err := regexp.Compile(c.Extraction.SourcePattern)
	if err != nil {
		return fmt.Errorf("extraction.source_pattern is invalid regex: %w", err)
	}

	if re.NumSubexp() != 1 {
		return ErrSourcePatternGroup
	}

	if c.Extraction.HeadingTag == "" {
		return ErrMissingHeadingTag
	}

	if c.Extraction.ArticleMarker == "" {
		return ErrMissingArticleMarker
	}

	if c.Extraction.SourceSelector == "" {
		return ErrMissingSourceSelector
	}

	if c.Extraction.ArticleSelector == "" {
		return ErrMissingArticleSelector
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Category returns the category with the given key.
func (c *Config) Category(key string) (CategoryConfig, bool) {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return cat, true
		}
	}

	return CategoryConfig{}, false
}

// CategoryKeys returns the configured category keys in display order.
func (c *Config) CategoryKeys() []string {
	keys := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		keys = append(keys, cat.Key)
	}

	return keys
}

// ArchivePath returns the archive directory, defaulting to {dist_dir}/archive.
func (c *Config) ArchivePath() string {
	if c.Paths.ArchiveDir != "" {
		return c.Paths.ArchiveDir
	}

	return filepath.Join(c.Paths.DistDir, "archive")
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Sources: %d, Categories: %d, MinArticles: %d, Data: %s, Dist: %s}",
		len(c.Sources),
		len(c.Categories),
		c.Validation.MinArticles,
		c.Paths.DataFile,
		c.Paths.DistDir,
	)
}

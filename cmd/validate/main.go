// Package main provides the validate command, which checks a newsletter data file without rendering it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/logger"
	"github.com/TDL-133/ai-weekly-fr/internal/normalizer"
	"github.com/TDL-133/ai-weekly-fr/internal/validator"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	dataPath := flag.String("data", "", "Path to data file (default: paths.data_file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	path := cfg.Paths.DataFile
	if *dataPath != "" {
		path = *dataPath
	}

	log := logger.NewLoggerWithConfig(cfg.Logging)

	code := run(path, cfg, log)

	log.Close()
	os.Exit(code)
}

func run(path string, cfg *config.Config, log *logger.Logger) int {
	fmt.Printf("🔍 Validating %s...\n\n", path)

	data, err := normalizer.LoadFile(path)
	if err != nil {
		if errors.Is(err, normalizer.ErrDataFileNotFound) {
			fmt.Fprintf(os.Stderr, "❌ Error: Data file not found at %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		}

		return 1
	}

	doc, err := normalizer.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error parsing JSON: %v\n", err)
		return 1
	}

	result := validator.NewValidator(cfg).ValidateNewsletter(doc)
	log.Debug("validation finished", "result", result.String())

	result.PrintErrors(os.Stdout)

	if len(result.Errors) > 0 && len(result.Warnings) > 0 {
		fmt.Println()
	}

	result.PrintWarnings(os.Stdout)
	fmt.Println()
	result.PrintStats(os.Stdout)

	if !result.Valid {
		fmt.Println("\n❌ Validation failed")
		return 1
	}

	fmt.Println("\n✅ Validation passed")

	return 0
}

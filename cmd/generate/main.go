// Package main provides the generate command: data file to signed HTML newsletter.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/logger"
	"github.com/TDL-133/ai-weekly-fr/internal/normalizer"
	"github.com/TDL-133/ai-weekly-fr/internal/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (default: "+config.DefaultConfigPath+" if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithConfig(cfg.Logging)

	code := run(cfg, log)

	log.Close()
	os.Exit(code)
}

func run(cfg *config.Config, log *logger.Logger) int {
	startTime := time.Now()

	log.Info("🚀 Starting newsletter generation", "data", cfg.Paths.DataFile)

	// 1. Load, validate and transform
	// -------------------------------
	fmt.Println("📖 Loading newsletter data...")

	processor := normalizer.NewProcessor(cfg)

	result, err := processor.ProcessFile(cfg.Paths.DataFile)
	if err != nil {
		var vErr *normalizer.ValidationError

		switch {
		case errors.Is(err, normalizer.ErrDataFileNotFound):
			fmt.Fprintf(os.Stderr, "❌ Error: Data file not found at %s\n", cfg.Paths.DataFile)
			fmt.Fprintf(os.Stderr, "\n💡 Tip: Create %s\n", filepath.Base(cfg.Paths.DataFile))
		case errors.Is(err, normalizer.ErrInvalidJSON):
			fmt.Fprintf(os.Stderr, "❌ Error parsing JSON: %v\n", err)
		case errors.As(err, &vErr):
			fmt.Fprintln(os.Stderr)
			vErr.Result.PrintErrors(os.Stderr)

			if len(vErr.Result.Warnings) > 0 {
				fmt.Fprintln(os.Stderr)
				vErr.Result.PrintWarnings(os.Stderr)
			}
		default:
			fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		}

		log.Error("generation aborted", "error", err)

		return 1
	}

	fmt.Println("✅ Data validated")

	if len(result.Validation.Warnings) > 0 {
		fmt.Println()
		result.Validation.PrintWarnings(os.Stdout)
	}

	fmt.Println()
	result.Validation.PrintStats(os.Stdout)
	fmt.Println()

	// 2. Render
	// ---------
	fmt.Println("🎨 Generating HTML...")

	r, err := renderer.NewRenderer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading templates: %v\n", err)
		return 1
	}

	html, err := r.Render(result.Newsletter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error generating HTML: %v\n", err)
		return 1
	}

	filename, err := renderer.Filename(result.Newsletter.Week, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error generating filename: %v\n", err)
		return 1
	}

	log.Debug("rendered newsletter", "bytes", len(html), "filename", filename)

	// 3. Save
	// -------
	cssPath, err := renderer.CopyStylesheet(cfg.Paths.DistDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error copying stylesheet: %v\n", err)
		return 1
	}

	fmt.Printf("   ✓ CSS copied to %s\n", cssPath)
	fmt.Println("💾 Saving files...")

	archivePath, err := renderer.Save(html, filename, cfg.ArchivePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error saving archive: %v\n", err)
		return 1
	}

	fmt.Printf("   ✓ Saved to archive: %s\n", archivePath)

	latestPath, err := renderer.Save(html, cfg.Paths.LatestFile, cfg.Paths.DistDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error saving latest edition: %v\n", err)
		return 1
	}

	fmt.Printf("   ✓ Saved to index: %s\n", latestPath)

	log.Info("✨ Newsletter generated", "archive", archivePath, "latest", latestPath, "duration", time.Since(startTime))

	fmt.Println("\n✅ Newsletter generated successfully!")
	fmt.Println("\n📄 Files created:")
	fmt.Printf("   - %s\n", archivePath)
	fmt.Printf("   - %s\n", latestPath)

	return 0
}

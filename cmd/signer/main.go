// Package main provides the signer command-line tool for re-signing a hand-edited newsletter.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/extractor"
	"github.com/TDL-133/ai-weekly-fr/internal/logger"
	"github.com/TDL-133/ai-weekly-fr/internal/report"
	"github.com/TDL-133/ai-weekly-fr/pkg/metadata"
)

func main() {
	inputPath := flag.String("input", "", "Path to input file (e.g., dist/index.html)")
	configPath := flag.String("config", "", "Path to configuration file")
	write := flag.Bool("write", false, "Overwrite the input file instead of printing the result")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: signer -input <path> [-write]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithConfig(cfg.Logging)

	code := run(*inputPath, *write, cfg, log)

	log.Close()
	os.Exit(code)
}

func run(path string, write bool, cfg *config.Config, log *logger.Logger) int {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return 1
	}

	content := string(contentBytes)
	fmt.Fprintf(os.Stderr, "📂 Reading: %s (%d bytes)\n", path, len(content))

	ext, err := extractor.NewExtractor(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error creating extractor: %v\n", err)
		return 1
	}

	// The manifest describes the document as it is now, so counts come from the HTML.
	scan := ext.Extract(content)
	rep := report.Build(scan, cfg)

	manifest := &metadata.Metadata{
		Validation: rep.Passed(),
		Total:      rep.Stats.Total,
		Sources:    make(map[string]int),
		Categories: scan.Categories,
	}

	for name, count := range scan.Sources {
		if count > 0 {
			manifest.Sources[name] = count
		}
	}

	if previous, _ := metadata.Extract(content); previous != nil {
		manifest.EditionID = previous.EditionID
		manifest.Week = previous.Week
	}

	if manifest.EditionID == "" {
		manifest.EditionID = uuid.NewString()
	}

	if !rep.Passed() {
		fmt.Fprintf(os.Stderr, "⚠️  Balance check failed (%d error(s)). Signing with validation: false.\n", len(rep.Errors))
	}

	fmt.Fprintln(os.Stderr, "✍️  Signing file...")

	signed, err := metadata.Sign(content, manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error signing: %v\n", err)
		return 1
	}

	log.Info("signed newsletter", "path", path, "edition", manifest.EditionID, "total", manifest.Total)

	if !write {
		fmt.Print(signed)
		return 0
	}

	if err := os.WriteFile(path, []byte(signed), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "✅ Signed and saved to: %s\n", path)

	return 0
}

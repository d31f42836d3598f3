// Package main provides the validate-balance command, which re-checks a rendered newsletter.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TDL-133/ai-weekly-fr/internal/config"
	"github.com/TDL-133/ai-weekly-fr/internal/extractor"
	"github.com/TDL-133/ai-weekly-fr/internal/logger"
	"github.com/TDL-133/ai-weekly-fr/internal/report"
)

const defaultFile = "index.html"

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: validate-balance [-config path] [file.html]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	path := defaultFile
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithConfig(cfg.Logging)

	code := run(path, cfg, log)

	log.Close()
	os.Exit(code)
}

func run(path string, cfg *config.Config, log *logger.Logger) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Fichier introuvable : %s\n", path)
		log.Error("cannot read newsletter", "path", path, "error", err)

		return 1
	}

	html := string(content)
	fmt.Printf("🔍 Validation de %s\n\n", path)

	ext, err := extractor.NewExtractor(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		return 1
	}

	scan := ext.Extract(html)
	rep := report.Build(scan, cfg)

	if rep.CrossCheckManifest(html, scan) {
		log.Debug("manifest compared", "path", path)
	}

	dom, err := ext.ExtractDOM(html)
	if err != nil {
		log.Warn("DOM cross-check skipped", "error", err)
	} else {
		rep.CrossCheckDOM(scan, dom)
	}

	rep.Print(os.Stdout)

	log.Info("balance validation finished",
		"path", path, "errors", len(rep.Errors), "warnings", len(rep.Warnings), "total", rep.Stats.Total)

	return rep.ExitCode()
}

// Package main provides the validate command-line tool: it normalizes a user
// profile or query document and reports every validation issue found.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"smarttravel/internal/config"
	"smarttravel/internal/formatter"
	"smarttravel/internal/logger"
	"smarttravel/internal/models"
	"smarttravel/internal/normalizer"
	"smarttravel/internal/validator"
)

func main() {
	inputPath := flag.String("input", "", "Path to the profile or query JSON document")
	kind := flag.String("kind", "query", "Document kind: profile or query")
	profilePath := flag.String("profile", "", "Optional profile JSON supplying query defaults")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	flag.Parse()

	if *inputPath == "" || (*kind != "profile" && *kind != "query") {
		fmt.Println("Usage: validate -input <document.json> -kind <profile|query> [-profile <profile.json>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	log := logger.NewLogger(cfg.Logging.Level)

	tax := cfg.TaxonomyOrDefault()
	norm := normalizer.New(tax)
	val := validator.New(tax, cfg.CatalogOrDefault())

	record := readRecord(log, *inputPath)

	var (
		normalized models.Record
		issues     []validator.Issue
	)

	switch *kind {
	case "profile":
		normalized = norm.Profile(record)
		issues = val.ValidateProfile(normalized)
	case "query":
		var profile models.Record
		if *profilePath != "" {
			profile = norm.Profile(readRecord(log, *profilePath))
		}

		normalized = norm.Query(record, profile)
		issues = val.ValidateQuery(normalized)
	}

	output, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to render normalized document: %v", err))
		os.Exit(1)
	}

	fmt.Printf("📋 Normalized %s:\n%s\n\n", *kind, output)

	if len(issues) == 0 {
		fmt.Println("✅ Document is valid")

		return
	}

	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, []string{issue.Field, string(issue.Code), issue.Message, issue.Hint})
	}

	fmt.Printf("⚠️  Found %d issue(s):\n", len(issues))
	fmt.Print(formatter.Table([]string{"Field", "Code", "Message", "Hint"}, rows))
	os.Exit(1)
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	return cfg
}

func readRecord(log *logger.Logger, path string) models.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to read %s: %v", path, err))
		os.Exit(1)
	}

	var record models.Record
	if err := json.Unmarshal(data, &record); err != nil {
		log.Error(fmt.Sprintf("❌ Failed to parse %s: %v", path, err))
		os.Exit(1)
	}

	return record
}

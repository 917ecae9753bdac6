// Package main provides the decide command-line tool: it scores candidate
// itineraries under hard constraints and prints the selected one.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"smarttravel/internal/config"
	"smarttravel/internal/decision"
	"smarttravel/internal/formatter"
	"smarttravel/internal/insights"
	"smarttravel/internal/logger"
	"smarttravel/internal/models"
	"smarttravel/internal/places"
)

func main() {
	inputPath := flag.String("input", "", "Path to the candidate itineraries JSON file")
	alertsPath := flag.String("alerts", "", "Optional location->alert JSON map")
	placesPath := flag.String("places", "", "Optional places JSON used to derive weather alerts")
	weather := flag.String("weather", "", "Weather condition used with -places (rain, hot, cold, storm)")
	maxBudget := flag.Float64("max-budget", -1, "Maximum total cost (negative = unbounded)")
	maxTime := flag.Float64("max-time", -1, "Maximum total time (negative = unbounded)")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: decide -input <itineraries.json> [-alerts <alerts.json>] [-max-budget N] [-max-time N]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	log := logger.NewLogger(cfg.Logging.Level)

	candidates := readItineraries(log, *inputPath)
	log.Info("🚀 Starting decision run", "candidates", len(candidates))

	alerts := models.AlertMap{}
	if *alertsPath != "" {
		alerts = readAlerts(log, *alertsPath)
	}

	// Weather alerts derived from the places dataset merge over explicit ones.
	if *placesPath != "" && *weather != "" {
		pois, err := places.Load(*placesPath)
		if err != nil {
			log.Error(fmt.Sprintf("❌ Failed to load places: %v", err))
			os.Exit(1)
		}

		system := insights.NewSystem(cfg.Insights)
		for loc, alert := range system.LocationAlerts(pois, *weather) {
			alerts[loc] = alert
		}
	}

	constraints := models.Constraints{}
	if *maxBudget >= 0 {
		constraints.MaxBudget = maxBudget
	}

	if *maxTime >= 0 {
		constraints.MaxTime = maxTime
	}

	engine := decision.NewEngine(cfg.Decision.Weights, cfg.Decision.AlertPenalty, log)

	winner := engine.Select(candidates, constraints, alerts)
	if winner == nil {
		fmt.Println("⚠️  No itinerary satisfies the constraints")

		return
	}

	rows := make([][]string, 0, len(candidates))
	for _, it := range candidates {
		score := ""
		if it.FinalDecisionScore != nil {
			score = fmt.Sprintf("%.2f", *it.FinalDecisionScore)
		}

		rows = append(rows, []string{
			it.ID,
			fmt.Sprintf("%.0f", it.AvgRecScore),
			fmt.Sprintf("%.1f", it.TotalTime),
			fmt.Sprintf("%.0f", it.TotalCost),
			score,
		})
	}

	fmt.Print(formatter.Table([]string{"ID", "Rec score", "Time", "Cost", "Decision score"}, rows))
	fmt.Printf("\n✅ Selected itinerary: %s (score %.2f)\n", winner.ID, *winner.FinalDecisionScore)
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

func readItineraries(log *logger.Logger, path string) []*models.Itinerary {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to read %s: %v", path, err))
		os.Exit(1)
	}

	var out []*models.Itinerary
	if err := json.Unmarshal(data, &out); err != nil {
		log.Error(fmt.Sprintf("❌ Failed to parse %s: %v", path, err))
		os.Exit(1)
	}

	return out
}

func readAlerts(log *logger.Logger, path string) models.AlertMap {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to read %s: %v", path, err))
		os.Exit(1)
	}

	var out models.AlertMap
	if err := json.Unmarshal(data, &out); err != nil {
		log.Error(fmt.Sprintf("❌ Failed to parse %s: %v", path, err))
		os.Exit(1)
	}

	return out
}

// Package main provides the insights command-line tool: it prints the
// contextual alert and recommendation report for one place.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"smarttravel/internal/config"
	"smarttravel/internal/insights"
	"smarttravel/internal/logger"
	"smarttravel/internal/places"
)

func main() {
	placesPath := flag.String("places", "", "Path to the places JSON file")
	name := flag.String("name", "", "Name of the place to report on")
	weather := flag.String("weather", "", "Current weather condition (rain, hot, cold, storm)")
	visit := flag.String("visit", "", "Planned visit time, RFC 3339 (e.g. 2025-11-05T08:30:00Z)")
	interests := flag.String("interests", "", "Comma-separated traveler interests")
	travelTime := flag.String("travel-time", "", "Preferred time of day (e.g. morning)")
	budget := flag.Float64("budget", 0, "Total trip budget")
	spent := flag.Float64("spent", -1, "Amount already spent (negative = unknown)")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	flag.Parse()

	if *placesPath == "" || *name == "" {
		fmt.Println("Usage: insights -places <places.json> -name <place> [-weather rain] [-visit <time>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	log := logger.NewLogger(cfg.Logging.Level)

	pois, err := places.Load(*placesPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to load places: %v", err))
		os.Exit(1)
	}

	place, err := places.Find(pois, *name)
	if err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}

	traveler := insights.Traveler{
		TravelTime:  *travelTime,
		TotalBudget: *budget,
	}
	for _, tag := range strings.Split(*interests, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			traveler.Interests = append(traveler.Interests, tag)
		}
	}

	ctx := insights.Context{Weather: *weather}

	if *visit != "" {
		t, err := time.Parse(time.RFC3339, *visit)
		if err != nil {
			log.Error(fmt.Sprintf("❌ Invalid -visit time: %v", err))
			os.Exit(1)
		}

		ctx.VisitTime = t
	}

	if *spent >= 0 {
		ctx.CurrentSpending = spent
	}

	system := insights.NewSystem(cfg.Insights)
	report := system.Report(place, traveler, ctx)

	fmt.Printf("📍 %s (%s)\n", report.LocationName, report.LocationType)

	if report.HotTrend.IsHotTrend {
		fmt.Println("🔥 Hot trend:")

		for _, reason := range report.HotTrend.Reasons {
			fmt.Printf("   - %s\n", reason)
		}
	}

	if len(report.Alerts) > 0 {
		fmt.Println("⚠️  Alerts:")

		for _, alert := range report.Alerts {
			fmt.Printf("   [%s] %s\n", alert.Level, alert.Message)
		}
	}

	if report.BudgetStatus != nil && report.BudgetStatus.Status != "unknown" {
		fmt.Printf("💰 Budget: spent %.0f (%.1f%%), remaining %.0f [%s]\n",
			report.BudgetStatus.Spent,
			report.BudgetStatus.Percentage,
			report.BudgetStatus.Remaining,
			report.BudgetStatus.Status,
		)
	}

	if len(report.Tags) > 0 {
		fmt.Println("🏷️  Why recommended:")

		for _, tag := range report.Tags {
			fmt.Printf("   - %s\n", tag)
		}
	}

	for _, rec := range report.Recommendations {
		fmt.Printf("💡 %s\n", rec)
	}
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

// Package main provides the rank command-line tool: it orders points of
// interest by the composite preference score and prints the top picks.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"smarttravel/internal/config"
	"smarttravel/internal/formatter"
	"smarttravel/internal/logger"
	"smarttravel/internal/places"
	"smarttravel/internal/ranking"
)

func main() {
	placesPath := flag.String("places", "", "Path to the places JSON file")
	lat := flag.Float64("lat", 0, "Visitor latitude")
	lon := flag.Float64("lon", 0, "Visitor longitude")
	interests := flag.String("interests", "", "Comma-separated interest tags (e.g. museum,park)")
	top := flag.Int("top", 5, "Number of places to print")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	flag.Parse()

	if *placesPath == "" {
		fmt.Println("Usage: rank -places <places.json> -lat <lat> -lon <lon> [-interests a,b] [-top N]")
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

	visitor := ranking.Visitor{Lat: *lat, Lon: *lon}
	for _, tag := range strings.Split(*interests, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			visitor.Interests = append(visitor.Interests, tag)
		}
	}

	ranker := ranking.NewRanker(cfg.Ranking.Weights)
	scored := ranker.TopN(pois, visitor, *top)

	rows := make([][]string, 0, len(scored))
	for _, sp := range scored {
		rows = append(rows, []string{
			sp.Name,
			sp.Type,
			fmt.Sprintf("%.3f", sp.CompositeScore),
			strings.Join(sp.ExplainTags, "; "),
		})
	}

	fmt.Printf("🏆 Top %d of %d places:\n", len(scored), len(pois))
	fmt.Print(formatter.Table([]string{"Name", "Type", "Score", "Why"}, rows))
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

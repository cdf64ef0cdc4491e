// Package main provides the territory compute tool. It loads influence
// sources from a sqlite catalog or a JSON file, runs one full territory
// computation, and writes optional plot and HTML artifacts plus a
// per-faction summary to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/wardmap-data/influence.map/internal/config"
	"github.com/wardmap-data/influence.map/internal/influence"
	"github.com/wardmap-data/influence.map/internal/influence/catalog"
	"github.com/wardmap-data/influence.map/internal/influence/monitor"
)

// Config holds the command-line configuration.
type Config struct {
	CatalogPath string
	MapID       string
	SourcesFile string
	ConfigFile  string

	CellSize  float64
	Threshold float64
	Padding   float64
	Debug     bool

	PlotOut string
	HTMLOut string
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		log.Fatalf("territory: %v", err)
	}
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.CatalogPath, "catalog", "", "path to sqlite source catalog")
	flag.StringVar(&cfg.MapID, "map", "default", "map id within the catalog")
	flag.StringVar(&cfg.SourcesFile, "sources", "", "path to JSON source list (alternative to -catalog)")
	flag.StringVar(&cfg.ConfigFile, "config", "", "optional JSON tuning config overlay")
	flag.Float64Var(&cfg.CellSize, "cell-size", 0, "grid cell size in map units (0 = default)")
	flag.Float64Var(&cfg.Threshold, "threshold", 0, "contour threshold in (0,1) (0 = default)")
	flag.Float64Var(&cfg.Padding, "padding", -1, "boundary padding in map units (-1 = default)")
	flag.BoolVar(&cfg.Debug, "debug", false, "emit per-source radius circles as diagnostic shapes")
	flag.StringVar(&cfg.PlotOut, "plot", "", "write a territory plot (.png/.svg) to this path")
	flag.StringVar(&cfg.HTMLOut, "html", "", "write an interactive HTML view to this path")
	flag.Parse()
	return cfg
}

func run(cfg Config) error {
	opts := influence.DefaultOptions()

	if cfg.ConfigFile != "" {
		tuning, err := config.LoadTuningConfig(cfg.ConfigFile)
		if err != nil {
			return err
		}
		opts = tuning.Apply(opts)
	}

	// Flags win over the config file.
	if cfg.CellSize != 0 {
		opts.CellSize = cfg.CellSize
	}
	if cfg.Threshold != 0 {
		opts.ContourThreshold = cfg.Threshold
	}
	if cfg.Padding >= 0 {
		opts.BoundaryPadding = cfg.Padding
	}
	if cfg.Debug {
		opts.DebugMode = true
	}

	sources, err := loadSources(cfg, &opts)
	if err != nil {
		return err
	}
	log.Printf("loaded %d sources", len(sources))

	res, err := influence.Compute(context.Background(), sources, opts)
	if err != nil {
		return err
	}

	for _, faction := range res.Factions {
		holes := 0
		for _, shape := range faction.Shapes {
			holes += len(shape.Holes)
		}
		fmt.Printf("faction %-16s regions=%d holes=%d color=#%02x%02x%02x\n",
			faction.FactionID, len(faction.Shapes), holes,
			faction.Color.R, faction.Color.G, faction.Color.B)
	}
	if len(res.Factions) == 0 {
		fmt.Println("no territory (no effective sources)")
	}

	if cfg.PlotOut != "" {
		sp := &monitor.ShapePlotter{Title: fmt.Sprintf("Territories (%s)", cfg.MapID)}
		if err := sp.Save(res, cfg.PlotOut); err != nil {
			return err
		}
		log.Printf("wrote plot to %s", cfg.PlotOut)
	}
	if cfg.HTMLOut != "" {
		if err := monitor.RenderHTML(res, fmt.Sprintf("Territories (%s)", cfg.MapID), cfg.HTMLOut); err != nil {
			return err
		}
		log.Printf("wrote HTML view to %s", cfg.HTMLOut)
	}
	return nil
}

// loadSources reads the source set from whichever backend was configured.
// Catalog colour overrides are merged into opts unless the tuning config
// or an earlier override already claimed that faction.
func loadSources(cfg Config, opts *influence.Options) ([]influence.Source, error) {
	switch {
	case cfg.CatalogPath != "" && cfg.SourcesFile != "":
		return nil, fmt.Errorf("use either -catalog or -sources, not both")

	case cfg.CatalogPath != "":
		store, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		sources, err := store.MapSources(cfg.MapID)
		if err != nil {
			return nil, err
		}
		overrides, err := store.FactionColors(cfg.MapID)
		if err != nil {
			return nil, err
		}
		for faction, hex := range overrides {
			if _, taken := opts.ColorOverrides[faction]; taken {
				continue
			}
			rgba, err := config.ParseHexColor(hex)
			if err != nil {
				log.Printf("ignoring bad colour override for faction %s: %v", faction, err)
				continue
			}
			if opts.ColorOverrides == nil {
				opts.ColorOverrides = make(map[string]color.RGBA)
			}
			opts.ColorOverrides[faction] = rgba
		}
		return sources, nil

	case cfg.SourcesFile != "":
		data, err := os.ReadFile(cfg.SourcesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read sources file: %w", err)
		}
		var sources []influence.Source
		if err := json.Unmarshal(data, &sources); err != nil {
			return nil, fmt.Errorf("failed to parse sources file: %w", err)
		}
		return sources, nil

	default:
		return nil, fmt.Errorf("one of -catalog or -sources is required")
	}
}

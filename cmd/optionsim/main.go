package main

import (
	"flag"
	"fmt"
	"os"

	"frizo/optionsim/internal/chain"
	"frizo/optionsim/internal/config"
	"frizo/optionsim/internal/display"
	"frizo/optionsim/internal/logger"
	"frizo/optionsim/internal/option"
	"frizo/optionsim/internal/session"
	"frizo/optionsim/internal/version"
)

func main() {
	// Command line flags
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		logLevel    = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		seed        = flag.Int64("seed", 0, "Premium drift seed (0 = seed from clock)")
	)
	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Printf("Option Quote Simulator %s\n\n", version.Short())
		fmt.Println("Usage:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Command line overrides
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level)
	logger.SetDefault(log)

	log.Info("Starting Option Quote Simulator",
		"version", version.Short(),
		"environment", cfg.App.Env,
		"seed", cfg.Sim.Seed,
	)

	if err := run(cfg, log); err != nil {
		log.Error("Application error", "error", err)
		os.Exit(1)
	}

	log.Info("Option Quote Simulator stopped")
}

// run wires the chain, the starter contracts, the quote board and the
// interactive session, then blocks in the menu loop.
func run(cfg *config.Config, log *logger.Logger) error {
	ch := chain.New(cfg.Sim.Seed)

	// Starter contracts so the quote board has something to show.
	for _, seed := range []struct {
		tag     string
		strike  float64
		premium float64
		expiry  string
	}{
		{"Call", 100.0, 5.0, "2024-12-31"},
		{"Put", 100.0, 4.0, "2024-12-31"},
	} {
		c, err := option.New(seed.tag, seed.strike, seed.premium, seed.expiry)
		if err != nil {
			return fmt.Errorf("seed contract: %w", err)
		}
		ch.Add(c)
	}

	board := display.New(ch, os.Stdout)
	if cfg.Display.Plain {
		board.ForceANSI(false)
	}

	sess := session.New(ch, board, session.NewPrompter(), os.Stdout, log)
	sess.Run()
	return nil
}

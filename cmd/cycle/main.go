// One-shot runner: executes a single monitoring cycle and prints the
// result as JSON. Useful for cron jobs and local debugging.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"fedwatch/internal/fedsource"
	"fedwatch/internal/history"
	"fedwatch/internal/logger"
	"fedwatch/internal/monitor"
	"fedwatch/internal/store"
	"fedwatch/internal/trace"
	"fedwatch/internal/types"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	force := flag.Bool("force", false, "reprocess statements already in history")
	debug := flag.Bool("debug", false, "include cycle diagnostics in output")
	flag.Parse()

	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	ctx := context.Background()

	cfg, err := store.LoadConfig(*configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = store.DefaultConfig()
		} else {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	svc := monitor.New(
		fedsource.NewFetcher(cfg.FetchTimeout()),
		fedsource.NewDiscovery(cfg.Sources.BaseURL, cfg.Sources.CalendarURL, cfg.Sources.PressReleasesURL, cfg.FetchTimeout()),
		history.NewFileStore(cfg.HistoryPath),
	)

	result := svc.RunCycle(ctx, *force)
	if !*debug {
		result.DebugInfo = nil
	}

	b, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(b))

	_ = trace.Shutdown(ctx)

	if result.Status == types.StatusError {
		os.Exit(1)
	}
}

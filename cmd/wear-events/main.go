package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/closet/internal/wearload"
)

// Default configuration constants.
const (
	defaultNumEvents      = 10000
	defaultDuplicateRatio = 0.1
	defaultWorkers        = 2 // multiplier for runtime.NumCPU()
	defaultTimeout        = 30 * time.Second
	defaultSettleDelay    = 2 * time.Second
	defaultRunTimeout     = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numEvents  = flag.Int("events", defaultNumEvents, "Number of distinct wear events to submit")
		duplicates = flag.Float64("duplicates", defaultDuplicateRatio, "Share of events sent twice")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		settle     = flag.Duration("settle", defaultSettleDelay, "Wait before reading /stats")
		outputFile = flag.String("output", "", "Write generated events to this JSON file")
		logFile    = flag.String("log", "", "Also write logs to this file")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		wearload.ShowHelp(os.Stdout)
		return
	}

	if err := wearload.SetupLogging(*logFile, *verbose); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultRunTimeout)
	defer cancel()

	cfg := &wearload.Config{
		BaseURL:        *baseURL,
		NumEvents:      *numEvents,
		DuplicateRatio: *duplicates,
		Workers:        *workers,
		Timeout:        *timeout,
		SettleDelay:    *settle,
		OutputFile:     *outputFile,
		Verbose:        *verbose,
	}
	if _, err := wearload.Run(ctx, cfg); err != nil {
		_, _ = os.Stderr.WriteString("Load run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

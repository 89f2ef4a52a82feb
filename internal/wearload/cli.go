package wearload

import (
	"fmt"
	"io"
	"os"

	"github.com/okian/closet/pkg/logger"
)

// SetupLogging initializes the global logger, copying output to logFile when
// it is set.
func SetupLogging(logFile string, verbose bool) error {
	var out io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermission)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}
	if err := logger.Init(logger.WithOutput(out)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the wear-events tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Closet Wear Event Load Tool
===========================

Posts randomized wear events to a running closet service and reports how
many were accepted, deduplicated, rejected for backpressure or failed.

Usage:
  go run ./cmd/wear-events [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -events int
        Number of distinct wear events to submit (default 10000)
  -duplicates float
        Share of events sent twice to exercise deduplication (default 0.1)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -settle duration
        Wait before reading /stats (default 2s)
  -output string
        Write generated events to this JSON file
  -log string
        Also write logs to this file
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  go run ./cmd/wear-events -events 50000 -workers 16 -url http://localhost:8080
  go run ./cmd/wear-events -duplicates 0.5 -verbose
`)
}

package simulate

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/airisvision/chromascreen/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "screening_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the screening simulation tool.
func ShowHelp() {
	os.Stdout.WriteString(`ChromaScreen Simulation Tool
============================

A concurrent tool for exercising the screening service with simulated
observers.

Usage:
  go run cmd/screen-sim/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -panel string
        Panel to screen with: d15 or ld15 (default "d15")
  -subject string
        Observer model: normal, protan, deutan, tritan, random (default "normal")
  -sessions int
        Number of screening sessions to run (default 100)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for simulation output (default: screening_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Screen one hundred color-normal subjects
  go run cmd/screen-sim/main.go

  # Screen simulated deutans on the desaturated panel
  go run cmd/screen-sim/main.go -subject deutan -panel ld15

  # Stress the service with random arrangements
  go run cmd/screen-sim/main.go -subject random -sessions 10000 -workers 16
`)
}

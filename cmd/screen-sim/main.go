package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/airisvision/chromascreen/internal/simulate"
)

// Default configuration constants.
const (
	defaultNumSessions = 100
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultRunTimeout  = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL of the service")
		panelName   = flag.String("panel", "d15", "Panel to screen with: d15 or ld15")
		subject     = flag.String("subject", "normal", "Observer model: normal, protan, deutan, tritan, random")
		numSessions = flag.Int("sessions", defaultNumSessions, "Number of screening sessions to run")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile     = flag.String("log", "", "Log file for simulation output (default: screening_log_TIMESTAMP.log)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		simulate.ShowHelp()
		return
	}

	// Setup logging
	if err := simulate.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create simulation configuration
	config := &simulate.Config{
		BaseURL:     *baseURL,
		Panel:       *panelName,
		Subject:     *subject,
		NumSessions: *numSessions,
		Workers:     *workers,
		Timeout:     *timeout,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	// Run the simulation
	if err := simulate.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Simulation failed: " + err.Error() + "\n")
		return
	}
}

package simulate

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/airisvision/chromascreen/pkg/logger"
)

// Run executes the complete screening simulation.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime:       time.Now(),
		Classifications: make(map[string]int),
		Severities:      make(map[string]int),
	}

	logger.Get().Info(ctx, "starting screening simulation",
		logger.String("baseURL", config.BaseURL),
		logger.String("panel", config.Panel),
		logger.String("subject", config.Subject),
		logger.Int("sessions", config.NumSessions),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the panel table for the pilot cap
	client := newHTTPClient(config.Timeout)
	pilot, err := fetchPilot(ctx, client, config.BaseURL, config.Panel)
	if err != nil {
		return fmt.Errorf("panel table retrieval failed: %w", err)
	}

	// Step 3: Run screening sessions concurrently
	results, err := runSessions(ctx, config, pilot, stats)
	if err != nil {
		return fmt.Errorf("session run failed: %w", err)
	}

	// Step 4: Verify results against the subject model
	if err := verifyResults(ctx, config, results, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "simulation completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// runSessions runs the configured number of screening sessions using a
// worker pool. Each worker deals a session, lets the simulated subject
// arrange the presented caps, and submits the arrangement for scoring.
func runSessions(ctx context.Context, config *Config, pilot LabPoint, stats *Stats) ([]ResultResponse, error) {
	log.Printf("🧪 Running %d %s screenings with %d workers...", config.NumSessions, config.Subject, config.Workers)

	client := newHTTPClient(config.Timeout)

	results := make([]ResultResponse, config.NumSessions)
	scored := make([]bool, config.NumSessions)
	var (
		started int64
		done    int64
		failed  int64
	)

	indexChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			// Per-worker subject so the random model stays deterministic
			// per worker without sharing a rand source.
			subject, err := NewSubject(config.Subject, int64(workerID))
			if err != nil {
				return
			}

			for index := range indexChan {
				select {
				case <-ctx.Done():
					return
				default:
					result, err := runSingleSession(ctx, client, config, subject, pilot)
					atomic.AddInt64(&started, 1)
					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("⚠️  Session %d failed: %v", index, err)
						}
						continue
					}
					results[index] = result
					scored[index] = true
					atomic.AddInt64(&done, 1)
				}
			}
		}(w)
	}

	go func() {
		defer close(indexChan)
		for i := 0; i < config.NumSessions; i++ {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	wg.Wait()

	// Aggregate the scored outcomes.
	out := make([]ResultResponse, 0, config.NumSessions)
	for i, ok := range scored {
		if !ok {
			continue
		}
		r := results[i]
		out = append(out, r)
		stats.Classifications[r.Classification]++
		stats.Severities[r.Severity]++
		stats.TotalErrorSum += r.TotalError
		stats.ConfusionAngleSum += r.ConfusionAngleDegrees
	}

	stats.SessionsStarted = int(atomic.LoadInt64(&started))
	stats.SessionsScored = int(atomic.LoadInt64(&done))
	stats.SessionsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Screening run completed:
   Scored: %d
   Failed: %d
`, stats.SessionsScored, stats.SessionsFailed)

	return out, nil
}

// runSingleSession deals one session and scores the subject's arrangement.
func runSingleSession(ctx context.Context, client *HTTPClient, config *Config, subject *Subject, pilot LabPoint) (ResultResponse, error) {
	session, err := startSession(ctx, client, config.BaseURL, config.Panel)
	if err != nil {
		return ResultResponse{}, err
	}

	order := subject.Arrange(pilot, session.Caps)

	return submitArrangement(ctx, client, config.BaseURL, session.SessionID, order)
}

// displayFinalStats prints the final simulation statistics.
func displayFinalStats(stats *Stats) {
	var avgError, avgAngle, scoreRate float64

	if stats.SessionsScored > 0 {
		avgError = stats.TotalErrorSum / float64(stats.SessionsScored)
		avgAngle = stats.ConfusionAngleSum / float64(stats.SessionsScored)
	}
	if stats.SessionsStarted > 0 {
		scoreRate = float64(stats.SessionsScored) / float64(stats.SessionsStarted) * PercentageMultiplier
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("sessionsStarted", stats.SessionsStarted),
		logger.Int("sessionsScored", stats.SessionsScored),
		logger.Int("sessionsFailed", stats.SessionsFailed),
		logger.Float64("avgTotalError", avgError),
		logger.Float64("avgConfusionAngle", avgAngle),
		logger.Float64("scoreRate", scoreRate),
		logger.String("duration", stats.Duration.String()),
		logger.Any("classifications", stats.Classifications),
		logger.Any("severities", stats.Severities))
}

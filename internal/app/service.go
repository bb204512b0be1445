// Package service provides the core business service that implements
// the dependencies required by the HTTP API: it deals screening sessions,
// accepts completed arrangements, and scores them.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airisvision/chromascreen/internal/adapters/repository"
	"github.com/airisvision/chromascreen/internal/domain/colorspace"
	"github.com/airisvision/chromascreen/internal/domain/dedupe"
	"github.com/airisvision/chromascreen/internal/domain/panel"
	"github.com/airisvision/chromascreen/internal/domain/score"
	"github.com/airisvision/chromascreen/internal/domain/session"
	"github.com/airisvision/chromascreen/internal/domain/types"
	"github.com/airisvision/chromascreen/pkg/logger"
	"github.com/airisvision/chromascreen/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultShardCount      = 8
	defaultSessionCapacity = 100_000
	defaultSeenSize        = 50_000
)

// Service implements the screening API dependencies.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	controller *session.Controller
	scorer     *score.Scorer
	guard      dedupe.Deduper

	// Configuration
	shardCount      int
	sessionCapacity int
	seenSize        int
	scorerOpts      []score.Option
	randSource      rand.Source

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithShardCount sets the number of session store shards.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithSessionCapacity bounds the number of concurrently active sessions.
func WithSessionCapacity(capacity int) Option {
	return func(s *Service) {
		if capacity > 0 {
			s.sessionCapacity = capacity
		}
	}
}

// WithSeenSize bounds the scored-session idempotency cache.
func WithSeenSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.seenSize = size
		}
	}
}

// WithScoringOptions forwards calibration options to the scorer.
func WithScoringOptions(opts ...score.Option) Option {
	return func(s *Service) {
		s.scorerOpts = append(s.scorerOpts, opts...)
	}
}

// WithRandSource sets the presentation shuffle source, e.g. for tests.
func WithRandSource(src rand.Source) Option {
	return func(s *Service) {
		s.randSource = src
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		shardCount:      defaultShardCount,
		sessionCapacity: defaultSessionCapacity,
		seenSize:        defaultSeenSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting screening service...")

	s.store = repository.NewMemStore(
		repository.WithShardCount(s.shardCount),
		repository.WithCapacity(s.sessionCapacity),
	)
	var ctrlOpts []session.Option
	if s.randSource != nil {
		ctrlOpts = append(ctrlOpts, session.WithRandSource(s.randSource))
	}
	s.controller = session.NewController(ctrlOpts...)
	s.scorer = score.New(s.scorerOpts...)
	s.guard = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.seenSize),
	)

	s.started = true
	s.logger.Info(ctx, "screening service started",
		logger.Int("shards", s.shardCount),
		logger.Int("sessionCapacity", s.sessionCapacity),
		logger.Int("seenSize", s.seenSize),
		logger.String("datasetVersion", panel.Version),
	)

	return nil
}

// Stop shuts the service down. All state is in-memory, so there is nothing
// to flush; the method only flips the lifecycle flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "screening service stopped",
		logger.Int("abandonedSessions", s.store.Count(context.Background())),
	)
	s.started = false
}

// StartSession deals a new shuffled session for the named panel.
func (s *Service) StartSession(ctx context.Context, panelName string) (types.SessionView, error) {
	t, err := panel.ParseType(panelName)
	if err != nil {
		return types.SessionView{}, err
	}

	sess, err := s.controller.New(ctx, t)
	if err != nil {
		return types.SessionView{}, err
	}
	if err := s.store.Create(ctx, sess); err != nil {
		if errors.Is(err, repository.ErrCapacity) {
			metrics.RecordSessionRejected()
		}
		return types.SessionView{}, err
	}

	metrics.RecordSessionCreated(string(t))
	metrics.UpdateActiveSessions(s.store.Count(ctx))
	s.logger.Debug(ctx, "session dealt",
		logger.String("sessionID", sess.ID.String()),
		logger.String("panel", string(t)),
	)

	p, _ := panel.Get(t)
	caps := make([]types.CapView, len(sess.Presentation))
	for i, id := range sess.Presentation {
		c, _ := p.Lookup(id)
		caps[i] = capView(c)
	}
	return types.SessionView{
		SessionID:      sess.ID.String(),
		Panel:          string(t),
		DatasetVersion: panel.Version,
		Caps:           caps,
	}, nil
}

// SubmitArrangement scores a completed arrangement for an active session.
// A session is scored at most once; a submission that fails validation does
// not consume the session, so a corrected ordering can still be submitted.
func (s *Service) SubmitArrangement(ctx context.Context, sessionID string, order []string) (types.ResultView, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return types.ResultView{}, fmt.Errorf("%w: %q is not a session id", repository.ErrNotFound, sessionID)
	}

	// The guard is consulted before the store: a scored session is removed
	// from the store, so only the guard can still tell a late duplicate
	// apart from a session that never existed.
	if s.guard.SeenAndRecord(ctx, sessionID) {
		metrics.RecordDuplicateSubmission()
		return types.ResultView{}, ErrAlreadyScored
	}

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		s.guard.Unrecord(ctx, sessionID)
		return types.ResultView{}, err
	}

	p, err := panel.Get(sess.Panel)
	if err != nil {
		s.guard.Unrecord(ctx, sessionID)
		return types.ResultView{}, err
	}

	start := time.Now()
	result, err := s.scorer.Score(ctx, p, order)
	if err != nil {
		// Roll back the seen mark so a corrected resubmission can score.
		s.guard.Unrecord(ctx, sessionID)
		if errors.Is(err, score.ErrInvalidSequence) {
			metrics.RecordInvalidSequence()
		}
		return types.ResultView{}, err
	}
	metrics.RecordScoringDuration(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.RecordScoring(string(result.Panel), string(result.Classification), result.TotalError)
	metrics.UpdateSeenSetSize(s.guard.Size())

	// The session is consumed; the guard keeps its id so late duplicates
	// still answer with ErrAlreadyScored rather than not-found.
	_ = s.store.Delete(ctx, id)
	metrics.UpdateActiveSessions(s.store.Count(ctx))

	s.logger.Info(ctx, "arrangement scored",
		logger.String("sessionID", sessionID),
		logger.String("panel", string(result.Panel)),
		logger.Float64("totalError", result.TotalError),
		logger.Float64("confusionAngle", result.ConfusionAngleDegrees),
		logger.String("classification", string(result.Classification)),
		logger.String("severity", string(result.Severity)),
	)

	return types.ResultView{
		SessionID:             sessionID,
		Panel:                 string(result.Panel),
		TotalError:            result.TotalError,
		ConfusionAngleDegrees: result.ConfusionAngleDegrees,
		Classification:        string(result.Classification),
		Severity:              string(result.Severity),
		Crossings:             result.Crossings,
		DatasetVersion:        result.DatasetVersion,
	}, nil
}

// PanelTable returns the versioned read-only dataset for the named panel.
func (s *Service) PanelTable(_ context.Context, panelName string) (types.PanelView, error) {
	t, err := panel.ParseType(panelName)
	if err != nil {
		return types.PanelView{}, err
	}
	p, err := panel.Get(t)
	if err != nil {
		return types.PanelView{}, err
	}

	caps := p.Caps()
	views := make([]types.CapView, len(caps))
	for i, c := range caps {
		views[i] = capView(c)
	}
	return types.PanelView{
		Panel:          string(t),
		DatasetVersion: panel.Version,
		Caps:           views,
	}, nil
}

// GetStats returns a snapshot of the screening state for monitoring.
func (s *Service) GetStats() types.StatsView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := types.StatsView{
		Started:         s.started,
		ShardCount:      s.shardCount,
		SessionCapacity: s.sessionCapacity,
		DatasetVersion:  panel.Version,
	}

	if s.started {
		stats.ActiveSessions = s.store.Count(context.Background())
		stats.ScoredSessions = s.guard.Size()

		metrics.UpdateActiveSessions(stats.ActiveSessions)
		metrics.UpdateSeenSetSize(stats.ScoredSessions)
	}

	return stats
}

// capView renders a cap with its display color derived from the dataset Lab.
func capView(c panel.Cap) types.CapView {
	return types.CapView{
		CapID: c.ID,
		Fixed: c.Fixed,
		Lab:   c.Lab,
		RGB:   colorspace.XYZToSRGB(colorspace.LabToXYZ(c.Lab)),
	}
}

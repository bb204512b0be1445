package repository

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/airisvision/chromascreen/internal/domain/session"
)

// Default store configuration constants.
const (
	defaultShardCount = 8
	defaultCapacity   = 100_000
)

// MemStore is a sharded in-memory session store. Sessions are point-looked-up
// by uuid, so shards hash on the id rather than keeping any order.
type MemStore struct {
	shards   []*shard
	count    atomic.Int64
	capacity int64
}

type shard struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]session.Session
}

// NewMemStore creates a sharded in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		capacity: defaultCapacity,
	}
	shardCount := defaultShardCount
	for _, opt := range opts {
		opt(s, &shardCount)
	}
	s.shards = make([]*shard, shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{sessions: make(map[uuid.UUID]session.Session)}
	}
	return s
}

// Create registers a new session, enforcing the capacity bound.
func (s *MemStore) Create(_ context.Context, sess session.Session) error {
	if s.count.Load() >= s.capacity {
		return ErrCapacity
	}
	sh := s.shardFor(sess.ID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.sessions[sess.ID]; ok {
		return ErrDuplicateID
	}
	sh.sessions[sess.ID] = sess
	s.count.Add(1)
	return nil
}

// Get returns the session with the given id.
func (s *MemStore) Get(_ context.Context, id uuid.UUID) (session.Session, error) {
	sh := s.shardFor(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	sess, ok := sh.sessions[id]
	if !ok {
		return session.Session{}, ErrNotFound
	}
	return sess, nil
}

// Delete removes a session.
func (s *MemStore) Delete(_ context.Context, id uuid.UUID) error {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(sh.sessions, id)
	s.count.Add(-1)
	return nil
}

// Count returns the number of sessions currently held.
func (s *MemStore) Count(_ context.Context) int {
	return int(s.count.Load())
}

// shardFor picks a shard from the uuid's random bytes; uuids are uniformly
// distributed already, no extra hashing needed.
func (s *MemStore) shardFor(id uuid.UUID) *shard {
	n := int(id[0])<<8 | int(id[1])
	return s.shards[n%len(s.shards)]
}

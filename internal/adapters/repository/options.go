package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore, *int)

// WithShardCount sets the number of shards. Non-positive values are ignored.
func WithShardCount(count int) Option {
	return func(_ *MemStore, shardCount *int) {
		if count > 0 {
			*shardCount = count
		}
	}
}

// WithCapacity bounds the number of concurrently active sessions.
func WithCapacity(capacity int) Option {
	return func(s *MemStore, _ *int) {
		if capacity > 0 {
			s.capacity = int64(capacity)
		}
	}
}

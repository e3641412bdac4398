package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "render:done:"

// Ledger records completed render job ids in Redis so re-delivered jobs are
// skipped. When Redis is unreachable the ledger degrades to always-process:
// duplicate renders are wasteful but harmless, missed renders are not.
type Ledger struct {
	rdb      *redis.Client
	ttl      time.Duration
	degraded bool
}

// Config holds Redis connection settings for the ledger.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewLedger connects to Redis and probes the connection. Connection failure
// is logged, not returned; the ledger starts in degraded mode instead.
func NewLedger(cfg Config) *Ledger {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	degraded := false
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: failed to connect to Redis: %v. Job ledger disabled, duplicates will be re-rendered.", err)
		degraded = true
	}

	return &Ledger{rdb: rdb, ttl: ttl, degraded: degraded}
}

// Degraded reports whether the ledger lost its Redis connection at startup.
func (l *Ledger) Degraded() bool {
	return l.degraded
}

// IsDone reports whether a job id has already been rendered. In degraded mode
// it always returns false.
func (l *Ledger) IsDone(ctx context.Context, jobID string) (bool, error) {
	if l.degraded {
		return false, nil
	}

	n, err := l.rdb.Exists(ctx, keyPrefix+jobID).Result()
	if err != nil {
		return false, fmt.Errorf("ledger lookup failed for %s: %w", jobID, err)
	}
	return n > 0, nil
}

// MarkDone records a completed job id with the configured TTL.
func (l *Ledger) MarkDone(ctx context.Context, jobID string) error {
	if l.degraded {
		return nil
	}

	if err := l.rdb.Set(ctx, keyPrefix+jobID, time.Now().UTC().Format(time.RFC3339), l.ttl).Err(); err != nil {
		return fmt.Errorf("ledger mark failed for %s: %w", jobID, err)
	}
	return nil
}

// Close releases the Redis connection.
func (l *Ledger) Close() error {
	return l.rdb.Close()
}

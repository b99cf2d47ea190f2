package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teamtrack/task-tracker/internal/api/metrics"
	"github.com/teamtrack/task-tracker/internal/core/ports"
)

const (
	statsKey = "stats:employees"
	statsTTL = 30 * time.Second
)

// StatsCache stores the employee statistics payload in Redis with a short
// TTL, absorbing repeated dashboard polls between recomputes.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached rows, or ok=false on a miss.
func (c *StatsCache) Get(ctx context.Context) ([]ports.EmployeeStatsRow, bool, error) {
	data, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("stats cache get: %w", err)
	}

	var rows []ports.EmployeeStatsRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false, fmt.Errorf("stats cache decode: %w", err)
	}

	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return rows, true, nil
}

// Set stores the rows, expiring after statsTTL.
func (c *StatsCache) Set(ctx context.Context, rows []ports.EmployeeStatsRow) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, data, statsTTL).Err()
}

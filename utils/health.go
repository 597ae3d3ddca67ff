package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents the current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor performs periodic dependency checks and keeps the latest
// snapshot in memory for the /health endpoint.
type HealthMonitor struct {
	mongoClient *mongo.Client
	redisClient *redis.Client

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor builds a monitor over the given clients. redisClient may
// be nil when the cache is not configured.
func NewHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client) *HealthMonitor {
	return &HealthMonitor{mongoClient: mongoClient, redisClient: redisClient}
}

// Status returns the latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start launches the periodic check loop. It stops when ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.check(ctx)
			}
		}
	}()
}

func (m *HealthMonitor) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	status.Mongo = m.mongoClient.Ping(checkCtx, nil) == nil
	if m.redisClient != nil {
		status.Redis = m.redisClient.Ping(checkCtx).Err() == nil
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
}

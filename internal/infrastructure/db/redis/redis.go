package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout caps the startup connectivity check; Redis only holds
// sessions here, so a slow answer at boot means something is wrong.
const pingTimeout = 3 * time.Second

// Config holds the session store's Redis settings.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect builds the Redis client and pings it once, so a misconfigured
// address is caught at boot instead of at the first login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

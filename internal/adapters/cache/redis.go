package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options selects the redis instance backing the store or its cache.
type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (o Options) Addr() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// NewRedisClient dials redis and fails fast when the server does not answer
// a ping within five seconds.
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	addr := opts.Addr()

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return rdb, nil
}

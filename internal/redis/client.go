// Package redis wraps go-redis so repositories depend on one client interface
// whatever the deployment topology.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// Options configures connection pooling and transport
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	// ReadOnly routes reads to replicas in cluster mode
	ReadOnly bool
}

func (o *Options) tlsConfig() *tls.Config {
	if !o.UseTLS {
		return nil
	}
	return &tls.Config{
		InsecureSkipVerify: true, // #nosec G402 self-signed certs in managed redis
	}
}

// NewClient creates a client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		TLSConfig:       opts.tlsConfig(),
	}), nil
}

// NewClusterClient creates a client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:           endpoints,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		ReadOnly:        opts.ReadOnly,
		TLSConfig:       opts.tlsConfig(),
	}), nil
}

// NewFailoverClient creates a sentinel backed client
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	if masterName == "" {
		return nil, errors.InvalidArgument("redis: master name is required")
	}
	if len(sentinelAddrs) == 0 {
		return nil, errors.InvalidArgument("redis: at least one sentinel address is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	return redis.NewFailoverClient(&redis.FailoverOptions{
		MasterName:      masterName,
		SentinelAddrs:   sentinelAddrs,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		TLSConfig:       opts.tlsConfig(),
	}), nil
}

// Connect picks the topology: a master name means sentinels, several endpoints
// mean a cluster, otherwise a single instance.
func Connect(masterName string, endpoints []string, opts *Options) (Client, error) {
	switch {
	case masterName != "":
		return NewFailoverClient(masterName, endpoints, opts)
	case len(endpoints) > 1:
		return NewClusterClient(endpoints, opts)
	case len(endpoints) == 1:
		return NewClient(endpoints[0], opts)
	default:
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}
}

// Ping verifies the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return nil
}

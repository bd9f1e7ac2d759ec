package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis shared by single node, cluster and sentinel clients
type Client interface {
	redis.UniversalClient
}

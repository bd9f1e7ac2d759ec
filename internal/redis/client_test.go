package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr  *miniredis.Miniredis
	ctx context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestConnectTopology() {
	testCases := []struct {
		name       string
		masterName string
		endpoints  []string
		check      func(redis.Client)
		wantErr    bool
	}{
		{
			name:      "single instance",
			endpoints: []string{"localhost:6379"},
			check: func(c redis.Client) {
				_, ok := c.(*goredis.Client)
				s.True(ok)
			},
		},
		{
			name:      "cluster",
			endpoints: []string{"a:6379", "b:6379"},
			check: func(c redis.Client) {
				_, ok := c.(*goredis.ClusterClient)
				s.True(ok)
			},
		},
		{
			name:       "sentinel",
			masterName: "primary",
			endpoints:  []string{"sentinel:26379"},
			check: func(c redis.Client) {
				_, ok := c.(*goredis.Client)
				s.True(ok, "failover clients are plain clients")
			},
		},
		{
			name:    "no endpoints",
			wantErr: true,
		},
		{
			name:       "sentinel without addresses",
			masterName: "primary",
			wantErr:    true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := redis.Connect(tc.masterName, tc.endpoints, &redis.Options{PoolSize: 2})
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				s.Nil(client)
				return
			}
			s.Require().NoError(err)
			defer func() { _ = client.Close() }()
			tc.check(client)
		})
	}
}

func (s *ClientTestSuite) TestPing() {
	client, err := redis.NewClient(s.mr.Addr(), nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(s.ctx, client))

	s.mr.Close()
	err = redis.Ping(s.ctx, client)
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	_, err := redis.NewClient("", nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = redis.NewClusterClient(nil, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = redis.NewFailoverClient("", []string{"a"}, nil)
	s.True(errors.IsInvalidArgument(err))
}

package builds

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	redisclient "github.com/KirkDiggler/general-configurator/internal/redis"
)

const ownerIndexPrefix = "build:owner:"

// entityKey namespaces a stored value by entity type, so build b1 lives at "build:b1"
func entityKey(e core.Entity) string {
	return e.GetType() + ":" + e.GetID()
}

func buildKey(id string) string {
	return entityKey(&entities.Build{ID: id})
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis builds repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis backed builds repository. Each build is a JSON value
// and every owner has a set of build IDs.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateBuild(input.Build); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	key := entityKey(input.Build)
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create build")
	}
	if !created {
		return nil, errors.AlreadyExistsf(errBuildExists, input.Build.ID)
	}

	if err := r.client.SAdd(ctx, ownerIndexPrefix+input.Build.OwnerID, input.Build.GetID()).Err(); err != nil {
		// keep the value and the owner index in step
		r.client.Del(ctx, key)
		return nil, errors.Wrapf(err, "failed to index build")
	}

	return &CreateOutput{Build: input.Build}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	result, err := r.client.Get(ctx, buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(errBuildNotFound, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get build")
	}

	var b entities.Build
	if err := json.Unmarshal([]byte(result), &b); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal build")
	}
	return &GetOutput{Build: &b}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get builds from index %s", indexKey)
	}

	builds := make([]*entities.Build, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "build not found, cleaning up index",
					"build_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		builds = append(builds, out.Build)
	}

	sortBuilds(builds)
	return &ListOutput{Builds: builds}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	out, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, buildKey(input.ID))
	pipe.SRem(ctx, ownerIndexPrefix+out.Build.OwnerID, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete build")
	}

	return &DeleteOutput{}, nil
}

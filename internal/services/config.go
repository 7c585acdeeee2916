package services

import (
	"context"
	"strconv"

	"fluzio/internal/datastore"
	"fluzio/internal/pkg/caching"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceConfig struct {
	container          *do.Injector
	redisDB            redis.UniversalClient
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
}

func NewServiceConfig(container *do.Injector) (*ServiceConfig, error) {
	db, err := do.InvokeNamed[redis.UniversalClient](container, "redis-db")
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	readOnlyCache, err := do.Invoke[caching.ReadOnlyCache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceConfig{container, db, readonlyPostgresDB, cache, readOnlyCache}, nil
}

func (service *ServiceConfig) GetStringConfig(ctx context.Context, key string, defaultValue string) (string, error) {
	callback := func() (string, error) {
		config, err := datastore.GetConfigByKey(ctx, service.readonlyPostgresDB, key)
		if err != nil {
			return defaultValue, err
		}
		return config.Value, nil
	}

	value, err := caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyConfig(key), CACHE_TTL_5_MINS, callback)
	if err != nil {
		return defaultValue, err
	}

	return value, nil
}

func (service *ServiceConfig) GetIntConfig(ctx context.Context, key string, defaultValue int) (int, error) {
	callback := func() (int, error) {
		config, err := datastore.GetConfigByKey(ctx, service.readonlyPostgresDB, key)
		if err != nil {
			return defaultValue, err
		}

		intValue, err := strconv.Atoi(config.Value)
		if err != nil {
			return defaultValue, err
		}

		return intValue, nil
	}

	value, err := caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyConfig(key), CACHE_TTL_5_MINS, callback)
	if err != nil {
		return defaultValue, err
	}

	return value, nil
}

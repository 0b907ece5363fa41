package kvstore

import (
	"context"
	"errors"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"

	"lodge/infras/otel"
	"lodge/shared/constant"
)

type redisStore struct {
	client *goRedis.Client
	otel   otel.Otel
}

func NewRedis(client *goRedis.Client, ot otel.Otel) Store {
	return &redisStore{
		client: client,
		otel:   ot,
	}
}

func (store *redisStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("store.key", key)

	value, err = store.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return constant.Empty, false, nil
		}

		return constant.Empty, false, fmt.Errorf("failed to get store value: %w", err)
	}

	return value, true, nil
}

func (store *redisStore) Set(ctx context.Context, key, value string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("store.key", key)

	if err := store.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set store value: %w", err)
	}

	return nil
}

package kvstore

import (
	"context"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/redis"
)

// Store is a whole-value key-value store. Every Set replaces the stored value
// for the key completely; there are no partial writes. A missing key is not an
// error, it reads as absent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

func New(cfg *config.Config, ot otel.Otel) Store {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		return NewRedis(redis.New(cfg), ot)
	default:
		return NewFile(cfg.Store.File.Path, ot)
	}
}

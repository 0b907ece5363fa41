package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/shared/constant"
)

// fileStore keeps all keys in one JSON document on disk and replaces the
// document whole on every write. A corrupt or missing document reads as empty
// rather than failing.
type fileStore struct {
	path string
	otel otel.Otel
	mu   sync.Mutex
}

func NewFile(path string, ot otel.Otel) Store {
	return &fileStore{
		path: path,
		otel: ot,
	}
}

func (store *fileStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	_, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("store.key", key)

	store.mu.Lock()
	defer store.mu.Unlock()

	document := store.read()

	value, ok = document[key]

	return value, ok, nil
}

func (store *fileStore) Set(ctx context.Context, key, value string) (err error) {
	_, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("store.key", key)

	store.mu.Lock()
	defer store.mu.Unlock()

	document := store.read()
	document[key] = value

	return store.write(document)
}

func (store *fileStore) read() map[string]string {
	document := map[string]string{}

	raw, err := os.ReadFile(store.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", store.path).Msg("failed to read store file, treating as empty")
		}

		return document
	}

	if err := json.Unmarshal(raw, &document); err != nil {
		log.Warn().Err(err).Str("path", store.path).Msg("store file is not valid JSON, treating as empty")

		return map[string]string{}
	}

	return document
}

func (store *fileStore) write(document map[string]string) error {
	raw, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to marshal store document: %w", err)
	}

	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(store.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary store file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to write store file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), store.path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace store file: %w", err)
	}

	return nil
}

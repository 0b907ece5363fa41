package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"lodge/infras/kvstore"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
)

// Booking persists booking records under two store keys: the full ordered
// list and a single slot mirroring the most recent record. The store gives no
// atomicity across keys, so the composite operations serialize behind one
// lock and write the list before the latest slot.
type Booking interface {
	LoadAll(ctx context.Context) ([]model.Booking, error)
	LoadLatest(ctx context.Context) (model.Booking, bool, error)
	SaveAll(ctx context.Context, records []model.Booking) error
	SaveLatest(ctx context.Context, record model.Booking) error
	AppendBookingAndLatest(ctx context.Context, record model.Booking) error
	ReplaceBookingAndLatest(ctx context.Context, id int64, record model.Booking) error
}

type repositoryImpl struct {
	store kvstore.Store
	otel  otel.Otel
	mu    sync.Mutex
}

func New(store kvstore.Store, ot otel.Otel) Booking {
	return &repositoryImpl{
		store: store,
		otel:  ot,
	}
}

func (repo *repositoryImpl) LoadAll(ctx context.Context) (records []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".LoadAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.loadAll(ctx)
}

func (repo *repositoryImpl) LoadLatest(ctx context.Context) (record model.Booking, ok bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".LoadLatest")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, found, err := repo.store.Get(ctx, model.StorageKeyLatestBooking)
	if err != nil {
		return record, false, fmt.Errorf("failed to load latest booking: %w", err)
	}

	if !found {
		return record, false, nil
	}

	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		log.Warn().Err(err).Msg("stored latest booking is malformed, treating as absent")

		return model.Booking{}, false, nil
	}

	return record, true, nil
}

func (repo *repositoryImpl) SaveAll(ctx context.Context, records []model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SaveAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.saveAll(ctx, records)
}

func (repo *repositoryImpl) SaveLatest(ctx context.Context, record model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SaveLatest")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.saveLatest(ctx, record)
}

// AppendBookingAndLatest appends the record to the booking list and mirrors it
// into the latest slot as one logical write.
func (repo *repositoryImpl) AppendBookingAndLatest(ctx context.Context, record model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".AppendBookingAndLatest")
	defer scope.End()
	defer scope.TraceIfError(err)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	records, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	records = append(records, record)

	if err := repo.saveAll(ctx, records); err != nil {
		return err
	}

	return repo.saveLatest(ctx, record)
}

// ReplaceBookingAndLatest replaces the list entry whose id matches and mirrors
// the record into the latest slot. Entries with other ids are untouched; when
// no entry matches the list is written back unchanged and only the latest slot
// moves.
func (repo *repositoryImpl) ReplaceBookingAndLatest(ctx context.Context, id int64, record model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ReplaceBookingAndLatest")
	defer scope.End()
	defer scope.TraceIfError(err)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	records, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == id {
			records[i] = record
		}
	}

	if err := repo.saveAll(ctx, records); err != nil {
		return err
	}

	return repo.saveLatest(ctx, record)
}

func (repo *repositoryImpl) loadAll(ctx context.Context) ([]model.Booking, error) {
	raw, found, err := repo.store.Get(ctx, model.StorageKeyAllBookings)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking list: %w", err)
	}

	if !found {
		return []model.Booking{}, nil
	}

	records := []model.Booking{}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warn().Err(err).Msg("stored booking list is malformed, treating as empty")

		return []model.Booking{}, nil
	}

	return records, nil
}

func (repo *repositoryImpl) saveAll(ctx context.Context, records []model.Booking) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal booking list: %w", err)
	}

	if err := repo.store.Set(ctx, model.StorageKeyAllBookings, string(raw)); err != nil {
		return fmt.Errorf("failed to save booking list: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) saveLatest(ctx context.Context, record model.Booking) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal latest booking: %w", err)
	}

	if err := repo.store.Set(ctx, model.StorageKeyLatestBooking, string(raw)); err != nil {
		return fmt.Errorf("failed to save latest booking: %w", err)
	}

	return nil
}

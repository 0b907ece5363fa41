package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/infras/kvstore"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/repository"
	gModel "lodge/shared/model"
)

func newTestRepository(t *testing.T) (repository.Booking, kvstore.Store) {
	t.Helper()

	store := kvstore.NewFile(filepath.Join(t.TempDir(), "store.json"), mocks.NewOtel())

	return repository.New(store, mocks.NewOtel()), store
}

func sampleBooking(id int64) model.Booking {
	created := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	return model.Booking{
		ID:           id,
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		Phone:        "0812345678",
		CheckIn:      "2026-09-10",
		CheckOut:     "2026-09-12",
		Guests:       2,
		SelectedRoom: "Deluxe Room",
		Price:        "$150/night",
		Metadata: gModel.Metadata{
			CreatedAt:  created,
			ModifiedAt: created,
		},
	}
}

func TestBookingRepository_RoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	records := []model.Booking{sampleBooking(1), sampleBooking(2)}

	require.NoError(t, repo.SaveAll(ctx, records))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestBookingRepository_LoadAllEmptyStore(t *testing.T) {
	repo, _ := newTestRepository(t)

	records, err := repo.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestBookingRepository_MalformedValuesReadAsAbsent(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, model.StorageKeyAllBookings, "{not json"))
	require.NoError(t, store.Set(ctx, model.StorageKeyLatestBooking, "[broken"))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, found, err := repo.LoadLatest(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBookingRepository_LoadLatestMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, found, err := repo.LoadLatest(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
}

func TestBookingRepository_AppendBookingAndLatest(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	first := sampleBooking(1)
	second := sampleBooking(2)
	second.FirstName = "Jane"

	require.NoError(t, repo.AppendBookingAndLatest(ctx, first))
	require.NoError(t, repo.AppendBookingAndLatest(ctx, second))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first, records[0])
	assert.Equal(t, second, records[1])

	latest, found, err := repo.LoadLatest(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, records[len(records)-1], latest)
}

func TestBookingRepository_ReplaceBookingAndLatest(t *testing.T) {
	ctx := context.Background()

	t.Run("matching entry is replaced in place", func(t *testing.T) {
		repo, _ := newTestRepository(t)

		first := sampleBooking(1)
		second := sampleBooking(2)

		require.NoError(t, repo.AppendBookingAndLatest(ctx, first))
		require.NoError(t, repo.AppendBookingAndLatest(ctx, second))

		edited := second
		edited.FirstName = "Jane"
		edited.Guests = 4

		require.NoError(t, repo.ReplaceBookingAndLatest(ctx, edited.ID, edited))

		records, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, first, records[0])
		assert.Equal(t, edited, records[1])

		latest, found, err := repo.LoadLatest(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, edited, latest)
	})

	t.Run("replaying the same edit changes nothing", func(t *testing.T) {
		repo, _ := newTestRepository(t)

		first := sampleBooking(1)

		require.NoError(t, repo.AppendBookingAndLatest(ctx, first))

		edited := first
		edited.Guests = 3

		require.NoError(t, repo.ReplaceBookingAndLatest(ctx, edited.ID, edited))
		require.NoError(t, repo.ReplaceBookingAndLatest(ctx, edited.ID, edited))

		records, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, edited, records[0])

		latest, found, err := repo.LoadLatest(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, edited, latest)
	})

	t.Run("unmatched id leaves the list unchanged but moves the latest slot", func(t *testing.T) {
		repo, _ := newTestRepository(t)

		first := sampleBooking(1)

		require.NoError(t, repo.AppendBookingAndLatest(ctx, first))

		orphan := sampleBooking(99)

		require.NoError(t, repo.ReplaceBookingAndLatest(ctx, orphan.ID, orphan))

		records, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, first, records[0])

		latest, found, err := repo.LoadLatest(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, orphan, latest)
	})
}

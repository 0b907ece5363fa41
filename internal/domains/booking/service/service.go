package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/internal/receipt"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	GetLatest(ctx context.Context) (dto.BookingResponse, error)
	UpdateLatest(ctx context.Context, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	RenderLatestReceipt(ctx context.Context, w io.Writer) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	exporter receipt.Exporter
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, exporter receipt.Exporter, ot otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		exporter: exporter,
		otel:     ot,
	}
}

// Create validates a new booking against the room catalog and the stay dates,
// then persists it to the booking list and the latest slot. Nothing is written
// when any check fails. Card fields never leave the request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, found, err := s.roomRepo.Find(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up room offering")

		return res, fmt.Errorf("failed to look up room offering: %w", err)
	}

	if !found {
		return res, failure.RoomNotSelected // nolint:wrapcheck
	}

	booking, err := req.ToModel(room)
	if err != nil {
		log.Error().Err(err).Msg("failed to build booking from request")

		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if err = s.repo.AppendBookingAndLatest(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to persist booking")

		return res, fmt.Errorf("failed to persist booking: %w", err)
	}

	scope.AddEvent("Booking created")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	res.FromModels(records)

	return res, nil
}

func (s *serviceImpl) GetLatest(ctx context.Context) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLatest")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, found, err := s.repo.LoadLatest(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load latest booking")

		return res, fmt.Errorf("failed to load latest booking: %w", err)
	}

	if !found {
		return res, failure.NoBookingFound // nolint:wrapcheck
	}

	res.FromModel(record)

	return res, nil
}

// UpdateLatest loads the latest booking as the working copy, applies the edit,
// and replaces both the matching list entry and the latest slot. The receipt
// regeneration is dispatched detached after the storage commit; save success
// never waits on it.
func (s *serviceImpl) UpdateLatest(ctx context.Context, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateLatest")
	defer scope.End()
	defer scope.TraceIfError(err)

	working, found, err := s.repo.LoadLatest(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load latest booking")

		return res, fmt.Errorf("failed to load latest booking: %w", err)
	}

	if !found {
		log.Error().Msg("no booking found to edit")

		return res, failure.NoBookingFound // nolint:wrapcheck
	}

	req.ApplyTo(&working)

	if err = s.repo.ReplaceBookingAndLatest(ctx, working.ID, working); err != nil {
		log.Error().Err(err).Msg("failed to persist edited booking")

		return res, fmt.Errorf("failed to persist edited booking: %w", err)
	}

	s.exporter.ExportDetached(ctx, working)

	scope.AddEvent("Booking updated")

	res.FromModel(working)

	return res, nil
}

func (s *serviceImpl) RenderLatestReceipt(ctx context.Context, w io.Writer) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RenderLatestReceipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, found, err := s.repo.LoadLatest(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load latest booking")

		return fmt.Errorf("failed to load latest booking: %w", err)
	}

	if !found {
		return failure.NoBookingFound // nolint:wrapcheck
	}

	if err := s.exporter.Render(record, w); err != nil {
		log.Error().Err(err).Msg("failed to render receipt")

		return fmt.Errorf("failed to render receipt: %w", err)
	}

	return nil
}

package booking

import (
	"bytes"
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	"lodge/internal/receipt"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.GetAll)
		r.Route("/latest", func(r chi.Router) {
			r.Get("/", handler.GetLatest)
			r.Patch("/", handler.UpdateLatest)
			r.Get("/receipt", handler.GetLatestReceipt)
		})
	})
}

// Create handles booking submission
// @Summary Create a booking
// @Description Create a booking from the guest, stay, and payment details. Card fields are validated and discarded, never stored.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAll lists all bookings
// @Summary List bookings
// @Description List every booking on record, oldest first.
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.GetBookingsResponse "Bookings retrieved successfully"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAll")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetLatest returns the most recent booking
// @Summary Get the latest booking
// @Description Get the most recently created or edited booking.
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.BookingResponse "Latest booking retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/latest [get]
func (handler *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLatest")
	defer scope.End()

	res, err := handler.service.GetLatest(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get latest booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Latest booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateLatest edits the most recent booking
// @Summary Edit the latest booking
// @Description Apply contact and stay edits to the latest booking and regenerate its receipt in the background.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/latest [patch]
func (handler *Handler) UpdateLatest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLatest")
	defer scope.End()

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateLatest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update latest booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetLatestReceipt downloads the receipt for the latest booking
// @Summary Download the latest booking receipt
// @Description Render the receipt PDF for the latest booking and send it as a download.
// @Tags Booking
// @Produce application/pdf
// @Success 200 {file} file "Receipt rendered successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/latest/receipt [get]
func (handler *Handler) GetLatestReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLatestReceipt")
	defer scope.End()

	// The PDF is rendered into a buffer first so a render failure can still
	// produce a JSON error response instead of a half-written body.
	var buf bytes.Buffer

	if err := handler.service.RenderLatestReceipt(ctx, &buf); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render latest receipt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Receipt rendered successfully")

	response.WithPDF(w, receipt.FileName, buf.Bytes())
}

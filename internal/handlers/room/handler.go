package room

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/room/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", handler.GetAll)
	})
}

// GetAll lists the room offerings
// @Summary List room offerings
// @Description List the fixed catalog of room offerings available for booking.
// @Tags Room
// @Produce json
// @Success 200 {object} dto.GetRoomsResponse "Rooms retrieved successfully"
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAll")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

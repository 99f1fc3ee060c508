package updatePlace

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventPlanner/internal/access"
	"eventPlanner/internal/http-server/handlers/place/createPlace"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

type PlaceResponse struct {
	response.Response
	Place *models.Place `json:"place,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlaceUpdater
type PlaceUpdater interface {
	UpdatePlace(ctx context.Context, id int64, update models.Place, now time.Time) (models.Place, error)
}

func New(log *slog.Logger, clk clock.Clock, places PlaceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.place.updatePlace.New"

		log := log.With(slog.String("op", op))

		actor, ok := auth.ActorFrom(r.Context())
		if !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		id, err := request.ID(r, "id")
		if err != nil {
			log.Error("bad place id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("place_id", id))

		var req createPlace.Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if !access.Place(actor, access.Update) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		p, err := places.UpdatePlace(r.Context(), id, req.Place(), clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to update place")
			return
		}

		log.Info("place updated")

		render.JSON(w, r, PlaceResponse{
			Response: response.OK(),
			Place:    &p,
		})
	}
}

package deletePlace

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"eventPlanner/internal/access"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlaceDeleter
type PlaceDeleter interface {
	DeletePlace(ctx context.Context, id int64, now time.Time) error
	PurgePlace(ctx context.Context, id int64) error
}

func New(log *slog.Logger, clk clock.Clock, places PlaceDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.place.deletePlace.New"

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

		action := access.Delete
		purge, _ := strconv.ParseBool(r.URL.Query().Get("purge"))
		if purge {
			action = access.Purge
		}

		if !access.Place(actor, action) {
			log.Warn("place removal needs an admin", slog.Int64("user_id", actor.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		if purge {
			err = places.PurgePlace(r.Context(), id)
		} else {
			err = places.DeletePlace(r.Context(), id, clk.Now())
		}
		if err != nil {
			response.Fail(w, r, log, err, "failed to delete place")
			return
		}

		log.Info("place deleted", slog.Bool("purge", purge))

		render.NoContent(w, r)
	}
}

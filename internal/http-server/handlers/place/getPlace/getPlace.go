package getPlace

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPlanner/internal/access"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

type PlaceResponse struct {
	response.Response
	Place *models.Place `json:"place,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlaceGetter
type PlaceGetter interface {
	GetPlace(ctx context.Context, id int64) (models.Place, error)
}

func New(log *slog.Logger, places PlaceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.place.getPlace.New"

		log := log.With(slog.String("op", op))

		actor, ok := auth.ActorFrom(r.Context())
		if !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		if !access.Place(actor, access.Read) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		id, err := request.ID(r, "id")
		if err != nil {
			log.Error("bad place id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		p, err := places.GetPlace(r.Context(), id)
		if err != nil {
			response.Fail(w, r, log.With(slog.Int64("place_id", id)), err, "failed to get place")
			return
		}

		render.JSON(w, r, PlaceResponse{
			Response: response.OK(),
			Place:    &p,
		})
	}
}

package createPlace

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventPlanner/internal/access"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

// Request holds the writable place fields. Field checks happen in rules.CheckPlace
// so that they come back as violations.
type Request struct {
	Name         string  `json:"name"`
	StreetNumber *string `json:"street_number,omitempty"`
	StreetName   string  `json:"street_name"`
	City         string  `json:"city"`
	PostalCode   string  `json:"postal_code"`
	Country      string  `json:"country"`
}

func (r Request) Place() models.Place {
	return models.Place{
		Name:         r.Name,
		StreetNumber: r.StreetNumber,
		StreetName:   r.StreetName,
		City:         r.City,
		PostalCode:   r.PostalCode,
		Country:      r.Country,
	}
}

type PlaceResponse struct {
	response.Response
	Place *models.Place `json:"place,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlaceCreator
type PlaceCreator interface {
	CreatePlace(ctx context.Context, place models.Place, now time.Time) (models.Place, error)
}

func New(log *slog.Logger, clk clock.Clock, places PlaceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.place.createPlace.New"

		log := log.With(slog.String("op", op))

		actor, ok := auth.ActorFrom(r.Context())
		if !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if !access.Place(actor, access.Create) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		p, err := places.CreatePlace(r.Context(), req.Place(), clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to create place")
			return
		}

		log.Info("place created", slog.Int64("id", p.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, PlaceResponse{
			Response: response.OK(),
			Place:    &p,
		})
	}
}

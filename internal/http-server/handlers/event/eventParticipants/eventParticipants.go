package eventParticipants

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/query"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

type ParticipantsResponse struct {
	response.Response
	Event      *models.Event       `json:"event,omitempty"`
	Items      []models.Invitation `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantsGetter
type ParticipantsGetter interface {
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	ListInvitations(ctx context.Context, q models.ListQuery[models.InvitationFilter], now time.Time) ([]models.Invitation, int, error)
}

// New lists the invitations of one event. The invitation listing filters apply,
// except that the event is taken from the path.
func New(log *slog.Logger, clk clock.Clock, parser query.Parser, participants ParticipantsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventParticipants.New"

		log := log.With(slog.String("op", op))

		if _, ok := auth.ActorFrom(r.Context()); !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		eventID, err := request.ID(r, "id")
		if err != nil {
			log.Error("bad event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		q, err := parser.Invitations(r.URL)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		q.Filter.EventID = &eventID

		event, err := participants.GetEvent(r.Context(), eventID)
		if err != nil {
			response.Fail(w, r, log, err, "failed to get event")
			return
		}

		items, total, err := participants.ListInvitations(r.Context(), q, clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to list participants")
			return
		}

		log.Info("participants received", slog.Int("total", total))

		render.JSON(w, r, ParticipantsResponse{
			Response:   response.OK(),
			Event:      &event,
			Items:      items,
			Pagination: response.NewPagination(q.Page, total),
		})
	}
}

package eventComments

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/query"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

type CommentsResponse struct {
	response.Response
	Event      *models.Event       `json:"event,omitempty"`
	Items      []models.Comment    `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentsGetter
type CommentsGetter interface {
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	ListComments(ctx context.Context, q models.ListQuery[models.CommentFilter]) ([]models.Comment, int, error)
}

func New(log *slog.Logger, parser query.Parser, comments CommentsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventComments.New"

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

		q, err := parser.Comments(r.URL)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		q.Filter.EventID = &eventID

		event, err := comments.GetEvent(r.Context(), eventID)
		if err != nil {
			response.Fail(w, r, log, err, "failed to get event")
			return
		}

		items, total, err := comments.ListComments(r.Context(), q)
		if err != nil {
			response.Fail(w, r, log, err, "failed to list comments")
			return
		}

		render.JSON(w, r, CommentsResponse{
			Response:   response.OK(),
			Event:      &event,
			Items:      items,
			Pagination: response.NewPagination(q.Page, total),
		})
	}
}

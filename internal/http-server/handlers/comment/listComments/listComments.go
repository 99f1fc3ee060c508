package listComments

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/query"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

type ListResponse struct {
	response.Response
	Items      []models.Comment    `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentLister
type CommentLister interface {
	ListComments(ctx context.Context, q models.ListQuery[models.CommentFilter]) ([]models.Comment, int, error)
}

func New(log *slog.Logger, parser query.Parser, comments CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.listComments.New"

		log := log.With(slog.String("op", op))

		if _, ok := auth.ActorFrom(r.Context()); !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		q, err := parser.Comments(r.URL)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		items, total, err := comments.ListComments(r.Context(), q)
		if err != nil {
			response.Fail(w, r, log, err, "failed to list comments")
			return
		}

		render.JSON(w, r, ListResponse{
			Response:   response.OK(),
			Items:      items,
			Pagination: response.NewPagination(q.Page, total),
		})
	}
}

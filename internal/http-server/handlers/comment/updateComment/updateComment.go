package updateComment

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventPlanner/internal/access"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

// Request replaces text and rate. Author and event are fixed once written.
type Request struct {
	Content string `json:"content"`
	Rate    *int   `json:"rate,omitempty"`
}

type CommentResponse struct {
	response.Response
	Comment *models.Comment `json:"comment,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentUpdater
type CommentUpdater interface {
	GetComment(ctx context.Context, id int64) (models.Comment, error)
	UpdateComment(ctx context.Context, id int64, content string, rate *int, now time.Time) (models.Comment, error)
}

func New(log *slog.Logger, clk clock.Clock, comments CommentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.updateComment.New"

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
			log.Error("bad comment id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("comment_id", id))

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		current, err := comments.GetComment(r.Context(), id)
		if err != nil {
			response.Fail(w, r, log, err, "failed to get comment")
			return
		}

		if !access.Comment(actor, access.Update, current) {
			log.Warn("actor is not the author", slog.Int64("user_id", actor.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		c, err := comments.UpdateComment(r.Context(), id, req.Content, req.Rate, clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to update comment")
			return
		}

		log.Info("comment updated")

		render.JSON(w, r, CommentResponse{
			Response: response.OK(),
			Comment:  &c,
		})
	}
}

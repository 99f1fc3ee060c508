package deleteComment

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
	"eventPlanner/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentDeleter
type CommentDeleter interface {
	GetComment(ctx context.Context, id int64) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64, now time.Time) error
	PurgeComment(ctx context.Context, id int64) error
}

func New(log *slog.Logger, clk clock.Clock, comments CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.deleteComment.New"

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

		purge, _ := strconv.ParseBool(r.URL.Query().Get("purge"))
		if purge {
			if !access.Comment(actor, access.Purge, models.Comment{}) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
				return
			}

			if err = comments.PurgeComment(r.Context(), id); err != nil {
				response.Fail(w, r, log, err, "failed to purge comment")
				return
			}

			log.Info("comment purged")
			render.NoContent(w, r)
			return
		}

		c, err := comments.GetComment(r.Context(), id)
		if err != nil {
			response.Fail(w, r, log, err, "failed to get comment")
			return
		}

		if !access.Comment(actor, access.Delete, c) {
			log.Warn("actor is not the author", slog.Int64("user_id", actor.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		if err = comments.DeleteComment(r.Context(), id, clk.Now()); err != nil {
			response.Fail(w, r, log, err, "failed to delete comment")
			return
		}

		log.Info("comment deleted")

		render.NoContent(w, r)
	}
}

package getComment

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

type CommentResponse struct {
	response.Response
	Comment *models.Comment `json:"comment,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentGetter
type CommentGetter interface {
	GetComment(ctx context.Context, id int64) (models.Comment, error)
}

func New(log *slog.Logger, comments CommentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.getComment.New"

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

		c, err := comments.GetComment(r.Context(), id)
		if err != nil {
			response.Fail(w, r, log.With(slog.Int64("comment_id", id)), err, "failed to get comment")
			return
		}

		if !access.Comment(actor, access.Read, c) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		render.JSON(w, r, CommentResponse{
			Response: response.OK(),
			Comment:  &c,
		})
	}
}

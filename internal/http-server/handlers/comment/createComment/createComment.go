package createComment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPlanner/internal/access"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

// Request carries no author: a comment is always written by the caller.
type Request struct {
	EventID int64  `json:"event" validate:"required,gt=0"`
	Content string `json:"content"`
	Rate    *int   `json:"rate,omitempty"`
}

type CommentResponse struct {
	response.Response
	Comment *models.Comment `json:"comment,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentCreator
type CommentCreator interface {
	CreateComment(ctx context.Context, authorID, eventID int64, content string, rate *int, now time.Time) (models.Comment, error)
}

func New(log *slog.Logger, clk clock.Clock, comments CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.createComment.New"

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

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if !access.Comment(actor, access.Create, models.Comment{AuthorID: actor.UserID}) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		c, err := comments.CreateComment(r.Context(), actor.UserID, req.EventID, req.Content, req.Rate, clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to create comment")
			return
		}

		log.Info("comment created", slog.Int64("id", c.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CommentResponse{
			Response: response.OK(),
			Comment:  &c,
		})
	}
}

package userInvitations

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

type ListResponse struct {
	response.Response
	Items      []models.Invitation `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationsGetter
type InvitationsGetter interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListInvitations(ctx context.Context, q models.ListQuery[models.InvitationFilter], now time.Time) ([]models.Invitation, int, error)
}

// New lists the invitations a user received. The invitation listing filters apply,
// except that the recipient is taken from the path.
func New(log *slog.Logger, clk clock.Clock, parser query.Parser, invitations InvitationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.userInvitations.New"

		log := log.With(slog.String("op", op))

		if _, ok := auth.ActorFrom(r.Context()); !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		userID, err := request.ID(r, "id")
		if err != nil {
			log.Error("bad user id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("user_id", userID))

		q, err := parser.Invitations(r.URL)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		q.Filter.RecipientID = &userID

		if _, err := invitations.GetUser(r.Context(), userID); err != nil {
			response.Fail(w, r, log, err, "failed to get user")
			return
		}

		items, total, err := invitations.ListInvitations(r.Context(), q, clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to list invitations")
			return
		}

		log.Info("user invitations received", slog.Int("total", total))

		render.JSON(w, r, ListResponse{
			Response:   response.OK(),
			Items:      items,
			Pagination: response.NewPagination(q.Page, total),
		})
	}
}

package listInvitations

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/query"
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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationLister
type InvitationLister interface {
	ListInvitations(ctx context.Context, q models.ListQuery[models.InvitationFilter], now time.Time) ([]models.Invitation, int, error)
}

func New(log *slog.Logger, clk clock.Clock, parser query.Parser, invitations InvitationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.listInvitations.New"

		log := log.With(slog.String("op", op))

		if _, ok := auth.ActorFrom(r.Context()); !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		q, err := parser.Invitations(r.URL)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		items, total, err := invitations.ListInvitations(r.Context(), q, clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to list invitations")
			return
		}

		render.JSON(w, r, ListResponse{
			Response:   response.OK(),
			Items:      items,
			Pagination: response.NewPagination(q.Page, total),
		})
	}
}

package getInvitation

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPlanner/internal/access"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

type InvitationResponse struct {
	response.Response
	Invitation *models.Invitation `json:"invitation,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationGetter
type InvitationGetter interface {
	GetInvitation(ctx context.Context, id int64) (models.Invitation, models.Event, error)
}

func New(log *slog.Logger, clk clock.Clock, invitations InvitationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.getInvitation.New"

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
			log.Error("bad invitation id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("invitation_id", id))

		inv, event, err := invitations.GetInvitation(r.Context(), id)
		if err != nil {
			response.Fail(w, r, log, err, "failed to get invitation")
			return
		}

		if !access.Invitation(actor, access.Read, inv, event) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		inv.Expired = rules.IsExpired(inv, clk.Now())

		render.JSON(w, r, InvitationResponse{
			Response:   response.OK(),
			Invitation: &inv,
		})
	}
}

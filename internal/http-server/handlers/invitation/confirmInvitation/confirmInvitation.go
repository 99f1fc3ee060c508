package confirmInvitation

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

type InvitationResponse struct {
	response.Response
	Invitation *models.Invitation `json:"invitation,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationConfirmer
type InvitationConfirmer interface {
	GetInvitation(ctx context.Context, id int64) (models.Invitation, models.Event, error)
	ConfirmInvitation(ctx context.Context, id int64, now time.Time) (models.Invitation, error)
}

func New(log *slog.Logger, clk clock.Clock, invitations InvitationConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.confirmInvitation.New"

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

		if !access.Invitation(actor, access.Confirm, inv, event) {
			log.Warn("actor is not the recipient", slog.Int64("user_id", actor.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		confirmed, err := invitations.ConfirmInvitation(r.Context(), id, clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to confirm invitation")
			return
		}

		log.Info("invitation confirmed")

		render.JSON(w, r, InvitationResponse{
			Response:   response.OK(),
			Invitation: &confirmed,
		})
	}
}

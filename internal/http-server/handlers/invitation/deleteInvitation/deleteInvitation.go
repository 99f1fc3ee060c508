package deleteInvitation

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationDeleter
type InvitationDeleter interface {
	GetInvitation(ctx context.Context, id int64) (models.Invitation, models.Event, error)
	DeleteInvitation(ctx context.Context, id int64, now time.Time) error
	PurgeInvitation(ctx context.Context, id int64) error
}

// New soft-deletes an invitation; ?purge=true removes the row for good.
func New(log *slog.Logger, clk clock.Clock, invitations InvitationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.deleteInvitation.New"

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

		purge, _ := strconv.ParseBool(r.URL.Query().Get("purge"))
		if purge {
			if !access.Invitation(actor, access.Purge, models.Invitation{}, models.Event{}) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
				return
			}

			if err = invitations.PurgeInvitation(r.Context(), id); err != nil {
				response.Fail(w, r, log, err, "failed to purge invitation")
				return
			}

			log.Info("invitation purged")
			render.NoContent(w, r)
			return
		}

		inv, event, err := invitations.GetInvitation(r.Context(), id)
		if err != nil {
			response.Fail(w, r, log, err, "failed to get invitation")
			return
		}

		if !access.Invitation(actor, access.Delete, inv, event) {
			log.Warn("actor is not the organizer", slog.Int64("user_id", actor.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		if err = invitations.DeleteInvitation(r.Context(), id, clk.Now()); err != nil {
			response.Fail(w, r, log, err, "failed to delete invitation")
			return
		}

		log.Info("invitation deleted")

		render.NoContent(w, r)
	}
}

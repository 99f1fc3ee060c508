package updateInvitation

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
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
)

// Request replaces the invitation's event, recipient and expiry. A missing event
// keeps the current one; a missing expireAt clears it.
type Request struct {
	EventID     int64      `json:"event" validate:"omitempty,gt=0"`
	RecipientID int64      `json:"recipient" validate:"required,gt=0"`
	ExpireAt    *time.Time `json:"expireAt,omitempty"`
}

type InvitationResponse struct {
	response.Response
	Invitation *models.Invitation `json:"invitation,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationUpdater
type InvitationUpdater interface {
	GetInvitation(ctx context.Context, id int64) (models.Invitation, models.Event, error)
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	UpdateInvitation(ctx context.Context, id, eventID, recipientID int64, expireAt *time.Time, now time.Time) (models.Invitation, error)
}

func New(log *slog.Logger, clk clock.Clock, invitations InvitationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.updateInvitation.New"

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

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		current, event, err := invitations.GetInvitation(r.Context(), id)
		if err != nil {
			response.Fail(w, r, log, err, "failed to get invitation")
			return
		}

		allowed := access.Invitation(actor, access.Update, current, event)

		if req.EventID == 0 {
			req.EventID = current.EventID
		}

		// moving the invitation needs the organizer's rights on the target event too
		if allowed && req.EventID != current.EventID {
			target, err := invitations.GetEvent(r.Context(), req.EventID)
			if err != nil {
				response.Fail(w, r, log, err, "failed to get event")
				return
			}
			allowed = access.Invitation(actor, access.Update, current, target)
		}

		if !allowed {
			log.Warn("actor may not update invitation", slog.Int64("user_id", actor.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		inv, err := invitations.UpdateInvitation(r.Context(), id, req.EventID, req.RecipientID, req.ExpireAt, clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to update invitation")
			return
		}

		log.Info("invitation updated")

		render.JSON(w, r, InvitationResponse{
			Response:   response.OK(),
			Invitation: &inv,
		})
	}
}

package createInvitation

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

type Request struct {
	EventID     int64      `json:"event" validate:"required,gt=0"`
	RecipientID int64      `json:"recipient" validate:"required,gt=0"`
	ExpireAt    *time.Time `json:"expireAt,omitempty"`
}

type InvitationResponse struct {
	response.Response
	Invitation *models.Invitation `json:"invitation,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationCreator
type InvitationCreator interface {
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	CreateInvitation(ctx context.Context, eventID, recipientID int64, expireAt *time.Time, now time.Time) (models.Invitation, error)
}

func New(log *slog.Logger, clk clock.Clock, invitations InvitationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.createInvitation.New"

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

		event, err := invitations.GetEvent(r.Context(), req.EventID)
		if err != nil {
			response.Fail(w, r, log, err, "failed to get event")
			return
		}

		if !access.Invitation(actor, access.Create, models.Invitation{}, event) {
			log.Warn("actor is not the organizer", slog.Int64("user_id", actor.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error(access.ErrForbidden.Error()))
			return
		}

		inv, err := invitations.CreateInvitation(r.Context(), req.EventID, req.RecipientID, req.ExpireAt, clk.Now())
		if err != nil {
			response.Fail(w, r, log, err, "failed to create invitation")
			return
		}

		log.Info("invitation created", slog.Int64("id", inv.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, InvitationResponse{
			Response:   response.OK(),
			Invitation: &inv,
		})
	}
}

package confirmInvitation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventPlanner/internal/access"
	"eventPlanner/internal/http-server/handlers/invitation/confirmInvitation/mocks"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

func TestConfirmInvitationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	event := models.Event{ID: 3, OrganizerID: 1, EndAt: now.Add(24 * time.Hour)}
	pending := models.Invitation{ID: 10, EventID: 3, RecipientID: 7, CreatedAt: now.Add(-time.Hour), EventEndAt: event.EndAt}

	confirmed := pending
	confirmed.Confirmed = true
	confirmed.UpdatedAt = &now

	recipient := access.Actor{UserID: 7}

	testCases := []struct {
		name           string
		actor          access.Actor
		invitationID   string
		mockSetup      func(m *mocks.InvitationConfirmer)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:         "Success",
			actor:        recipient,
			invitationID: "10",
			mockSetup: func(m *mocks.InvitationConfirmer) {
				m.On("GetInvitation", mock.Anything, int64(10)).Return(pending, event, nil)
				m.On("ConfirmInvitation", mock.Anything, int64(10), now).Return(confirmed, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp InvitationResponse
				require.NoError(t, json.Unmarshal(body, &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Invitation)
				assert.True(t, resp.Invitation.Confirmed)
				assert.False(t, resp.Invitation.Expired)
				require.NotNil(t, resp.Invitation.UpdatedAt)
				assert.True(t, resp.Invitation.UpdatedAt.Equal(now))
			},
		},
		{
			name:           "Invalid invitation ID format",
			actor:          recipient,
			invitationID:   "abc",
			mockSetup:      func(m *mocks.InvitationConfirmer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name:         "Invitation not found",
			actor:        recipient,
			invitationID: "10",
			mockSetup: func(m *mocks.InvitationConfirmer) {
				m.On("GetInvitation", mock.Anything, int64(10)).
					Return(models.Invitation{}, models.Event{}, fmt.Errorf("storage.postgres.GetInvitation: %w", rules.ErrInvitationNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: `{"status":"Error","error":"Invitation not found",
				"violations":[{"field":"id","message":"Invitation not found"}]}`,
		},
		{
			name:         "Organizer cannot confirm",
			actor:        access.Actor{UserID: 1},
			invitationID: "10",
			mockSetup: func(m *mocks.InvitationConfirmer) {
				m.On("GetInvitation", mock.Anything, int64(10)).Return(pending, event, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:         "Expired invitation",
			actor:        recipient,
			invitationID: "10",
			mockSetup: func(m *mocks.InvitationConfirmer) {
				m.On("GetInvitation", mock.Anything, int64(10)).Return(pending, event, nil)
				m.On("ConfirmInvitation", mock.Anything, int64(10), now).
					Return(models.Invitation{}, fmt.Errorf("storage.postgres.ConfirmInvitation: %w", rules.ErrInvitationExpired))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody: `{"status":"Error","error":"Your invitation has expired",
				"violations":[{"field":"confirmed","message":"Your invitation has expired"}]}`,
		},
		{
			name:         "Internal server error",
			actor:        recipient,
			invitationID: "10",
			mockSetup: func(m *mocks.InvitationConfirmer) {
				m.On("GetInvitation", mock.Anything, int64(10)).Return(pending, event, nil)
				m.On("ConfirmInvitation", mock.Anything, int64(10), now).
					Return(models.Invitation{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to confirm invitation"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockConfirmer := mocks.NewInvitationConfirmer(t)
			tc.mockSetup(mockConfirmer)

			router := chi.NewRouter()
			router.Put("/invitations/{id}/confirm", New(logger, clock.At(now), mockConfirmer))

			req, err := http.NewRequest(http.MethodPut, "/invitations/"+tc.invitationID+"/confirm", nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithActor(req.Context(), tc.actor))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	mockConfirmer := mocks.NewInvitationConfirmer(t)
	handler := New(slogdiscard.NewDiscardLogger(), clock.Real{}, mockConfirmer)

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	req = req.WithContext(auth.WithActor(req.Context(), access.Actor{UserID: 7}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "id is required")
}

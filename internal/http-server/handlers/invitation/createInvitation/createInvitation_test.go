package createInvitation

import (
	"bytes"
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
	"eventPlanner/internal/http-server/handlers/invitation/createInvitation/mocks"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

func TestCreateInvitationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	event := models.Event{ID: 3, OrganizerID: 1, Title: "Meetup", EndAt: now.Add(48 * time.Hour)}
	created := models.Invitation{
		ID:          10,
		EventID:     3,
		RecipientID: 7,
		CreatedAt:   now,
		EventEndAt:  event.EndAt,
	}

	organizer := access.Actor{UserID: 1}

	testCases := []struct {
		name           string
		actor          *access.Actor
		requestBody    string
		mockSetup      func(m *mocks.InvitationCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			actor:       &organizer,
			requestBody: `{"event": 3, "recipient": 7}`,
			mockSetup: func(m *mocks.InvitationCreator) {
				m.On("GetEvent", mock.Anything, int64(3)).Return(event, nil)
				m.On("CreateInvitation", mock.Anything, int64(3), int64(7), (*time.Time)(nil), now).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"status":"OK","invitation":{"id":10,"event_id":3,"recipient_id":7,"confirmed":false,
				"expire_at":null,"expired":false,"created_at":"2024-05-01T10:00:00Z"}}`,
		},
		{
			name:           "Unauthenticated",
			requestBody:    `{"event": 3, "recipient": 7}`,
			mockSetup:      func(m *mocks.InvitationCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "Invalid JSON",
			actor:          &organizer,
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.InvitationCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing recipient",
			actor:          &organizer,
			requestBody:    `{"event": 3}`,
			mockSetup:      func(m *mocks.InvitationCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field RecipientID is a required field"}`,
		},
		{
			name:        "Event not found",
			actor:       &organizer,
			requestBody: `{"event": 3, "recipient": 7}`,
			mockSetup: func(m *mocks.InvitationCreator) {
				m.On("GetEvent", mock.Anything, int64(3)).
					Return(models.Event{}, fmt.Errorf("storage.postgres.GetEvent: %w", rules.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: `{"status":"Error","error":"Event not found",
				"violations":[{"field":"event","message":"Event not found"}]}`,
		},
		{
			name:        "Not the organizer",
			actor:       &access.Actor{UserID: 9},
			requestBody: `{"event": 3, "recipient": 7}`,
			mockSetup: func(m *mocks.InvitationCreator) {
				m.On("GetEvent", mock.Anything, int64(3)).Return(event, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:        "Admin invites on behalf of organizer",
			actor:       &access.Actor{UserID: 9, Roles: []string{access.RoleAdmin}},
			requestBody: `{"event": 3, "recipient": 7}`,
			mockSetup: func(m *mocks.InvitationCreator) {
				m.On("GetEvent", mock.Anything, int64(3)).Return(event, nil)
				m.On("CreateInvitation", mock.Anything, int64(3), int64(7), (*time.Time)(nil), now).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "Self invitation and past expiry",
			actor:       &organizer,
			requestBody: `{"event": 3, "recipient": 1, "expireAt": "2024-04-01T00:00:00Z"}`,
			mockSetup: func(m *mocks.InvitationCreator) {
				m.On("GetEvent", mock.Anything, int64(3)).Return(event, nil)
				m.On("CreateInvitation", mock.Anything, int64(3), int64(1), mock.AnythingOfType("*time.Time"), now).
					Return(models.Invitation{}, errors.Join(rules.ErrSelfInvitation, rules.ErrExpireAtNotFuture))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody: `{"status":"Error","error":"Cannot invite author of the event","violations":[
				{"field":"recipient","message":"Cannot invite author of the event"},
				{"field":"expireAt","message":"Expiration date must be in the future"}]}`,
		},
		{
			name:        "Already invited",
			actor:       &organizer,
			requestBody: `{"event": 3, "recipient": 7}`,
			mockSetup: func(m *mocks.InvitationCreator) {
				m.On("GetEvent", mock.Anything, int64(3)).Return(event, nil)
				m.On("CreateInvitation", mock.Anything, int64(3), int64(7), (*time.Time)(nil), now).
					Return(models.Invitation{}, rules.ErrAlreadyInvited)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody: `{"status":"Error","error":"User is already invited to this event",
				"violations":[{"field":"recipient","message":"User is already invited to this event"}]}`,
		},
		{
			name:        "Internal server error",
			actor:       &organizer,
			requestBody: `{"event": 3, "recipient": 7}`,
			mockSetup: func(m *mocks.InvitationCreator) {
				m.On("GetEvent", mock.Anything, int64(3)).Return(event, nil)
				m.On("CreateInvitation", mock.Anything, int64(3), int64(7), (*time.Time)(nil), now).
					Return(models.Invitation{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create invitation"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewInvitationCreator(t)
			tc.mockSetup(mockCreator)

			router := chi.NewRouter()
			router.Post("/invitations", New(logger, clock.At(now), mockCreator))

			req, err := http.NewRequest(http.MethodPost, "/invitations", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.actor != nil {
				req = req.WithContext(auth.WithActor(req.Context(), *tc.actor))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
		})
	}
}

func TestCreateInvitationPassesExpireAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	expireAt := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	mockCreator := mocks.NewInvitationCreator(t)
	mockCreator.On("GetEvent", mock.Anything, int64(3)).
		Return(models.Event{ID: 3, OrganizerID: 1, EndAt: now.Add(72 * time.Hour)}, nil)
	mockCreator.On("CreateInvitation", mock.Anything, int64(3), int64(7),
		mock.MatchedBy(func(got *time.Time) bool { return got != nil && got.Equal(expireAt) }), now).
		Return(models.Invitation{ID: 1, EventID: 3, RecipientID: 7, ExpireAt: &expireAt, CreatedAt: now}, nil)

	handler := New(slogdiscard.NewDiscardLogger(), clock.At(now), mockCreator)

	body := `{"event": 3, "recipient": 7, "expireAt": "2024-05-02T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/invitations", bytes.NewBufferString(body))
	req = req.WithContext(auth.WithActor(req.Context(), access.Actor{UserID: 1}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp InvitationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Invitation)
	require.NotNil(t, resp.Invitation.ExpireAt)
	assert.True(t, resp.Invitation.ExpireAt.Equal(expireAt))
}

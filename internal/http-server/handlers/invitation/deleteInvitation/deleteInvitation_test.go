package deleteInvitation

import (
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
	"eventPlanner/internal/http-server/handlers/invitation/deleteInvitation/mocks"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

func TestDeleteInvitationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	event := models.Event{ID: 3, OrganizerID: 1, EndAt: now.Add(24 * time.Hour)}
	inv := models.Invitation{ID: 10, EventID: 3, RecipientID: 7}

	organizer := access.Actor{UserID: 1}
	admin := access.Actor{UserID: 99, Roles: []string{access.RoleAdmin}}

	testCases := []struct {
		name           string
		actor          access.Actor
		url            string
		mockSetup      func(m *mocks.InvitationDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Soft delete by organizer",
			actor: organizer,
			url:   "/invitations/10",
			mockSetup: func(m *mocks.InvitationDeleter) {
				m.On("GetInvitation", mock.Anything, int64(10)).Return(inv, event, nil)
				m.On("DeleteInvitation", mock.Anything, int64(10), now).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:  "Recipient cannot delete",
			actor: access.Actor{UserID: 7},
			url:   "/invitations/10",
			mockSetup: func(m *mocks.InvitationDeleter) {
				m.On("GetInvitation", mock.Anything, int64(10)).Return(inv, event, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:  "Not found",
			actor: organizer,
			url:   "/invitations/10",
			mockSetup: func(m *mocks.InvitationDeleter) {
				m.On("GetInvitation", mock.Anything, int64(10)).
					Return(models.Invitation{}, models.Event{}, fmt.Errorf("op: %w", rules.ErrInvitationNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Purge needs admin",
			actor:          organizer,
			url:            "/invitations/10?purge=true",
			mockSetup:      func(m *mocks.InvitationDeleter) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:  "Purge by admin",
			actor: admin,
			url:   "/invitations/10?purge=true",
			mockSetup: func(m *mocks.InvitationDeleter) {
				m.On("PurgeInvitation", mock.Anything, int64(10)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:  "Purge failure",
			actor: admin,
			url:   "/invitations/10?purge=1",
			mockSetup: func(m *mocks.InvitationDeleter) {
				m.On("PurgeInvitation", mock.Anything, int64(10)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to purge invitation"}`,
		},
		{
			name:           "Bad id",
			actor:          organizer,
			url:            "/invitations/0",
			mockSetup:      func(m *mocks.InvitationDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewInvitationDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/invitations/{id}", New(logger, clock.At(now), mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, tc.url, nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithActor(req.Context(), tc.actor))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
			if tc.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

package updatePlace

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
	"eventPlanner/internal/http-server/handlers/place/updatePlace/mocks"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/clock"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

func TestUpdatePlaceHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	body := `{"name":"Main Hall","street_name":"Boulevard Voltaire","city":"Paris","postal_code":"75011","country":"France"}`
	update := models.Place{
		Name:       "Main Hall",
		StreetName: "Boulevard Voltaire",
		City:       "Paris",
		PostalCode: "75011",
		Country:    "France",
	}

	updated := update
	updated.ID = 4
	updated.CreatedAt = now.Add(-time.Hour)
	updated.UpdatedAt = &now

	user := access.Actor{UserID: 7}
	admin := access.Actor{UserID: 1, Roles: []string{access.RoleAdmin}}

	testCases := []struct {
		name           string
		actor          *access.Actor
		placeID        string
		body           string
		mockSetup      func(m *mocks.PlaceUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:    "Success",
			actor:   &user,
			placeID: "4",
			body:    body,
			mockSetup: func(m *mocks.PlaceUpdater) {
				m.On("UpdatePlace", mock.Anything, int64(4), update, now).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp PlaceResponse
				require.NoError(t, json.Unmarshal(body, &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Place)
				assert.Equal(t, int64(4), resp.Place.ID)
				assert.Equal(t, "Main Hall", resp.Place.Name)
				require.NotNil(t, resp.Place.UpdatedAt)
				assert.True(t, resp.Place.UpdatedAt.Equal(now))
			},
		},
		{
			name:    "Admin may update",
			actor:   &admin,
			placeID: "4",
			body:    body,
			mockSetup: func(m *mocks.PlaceUpdater) {
				m.On("UpdatePlace", mock.Anything, int64(4), update, now).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not authenticated",
			placeID:        "4",
			body:           body,
			mockSetup:      func(m *mocks.PlaceUpdater) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:    "Name taken by another place",
			actor:   &user,
			placeID: "4",
			body:    body,
			mockSetup: func(m *mocks.PlaceUpdater) {
				m.On("UpdatePlace", mock.Anything, int64(4), update, now).
					Return(models.Place{}, fmt.Errorf("storage.postgres.UpdatePlace: %w", rules.PlaceNameTaken("Main Hall")))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody: `{"status":"Error","error":"A place \"Main Hall\" already exists",
				"violations":[{"field":"name","message":"A place \"Main Hall\" already exists"}]}`,
		},
		{
			name:    "Place not found",
			actor:   &user,
			placeID: "4",
			body:    body,
			mockSetup: func(m *mocks.PlaceUpdater) {
				m.On("UpdatePlace", mock.Anything, int64(4), update, now).
					Return(models.Place{}, fmt.Errorf("storage.postgres.UpdatePlace: %w", rules.ErrPlaceNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: `{"status":"Error","error":"Place not found",
				"violations":[{"field":"id","message":"Place not found"}]}`,
		},
		{
			name:           "Invalid place ID format",
			actor:          &user,
			placeID:        "abc",
			body:           body,
			mockSetup:      func(m *mocks.PlaceUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name:           "Invalid JSON",
			actor:          &user,
			placeID:        "4",
			body:           `{"name":`,
			mockSetup:      func(m *mocks.PlaceUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:    "Internal server error",
			actor:   &user,
			placeID: "4",
			body:    body,
			mockSetup: func(m *mocks.PlaceUpdater) {
				m.On("UpdatePlace", mock.Anything, int64(4), update, now).
					Return(models.Place{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update place"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewPlaceUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Put("/places/{id}", New(logger, clock.At(now), mockUpdater))

			req, err := http.NewRequest(http.MethodPut, "/places/"+tc.placeID, bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			if tc.actor != nil {
				req = req.WithContext(auth.WithActor(req.Context(), *tc.actor))
			}

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

	mockUpdater := mocks.NewPlaceUpdater(t)
	handler := New(slogdiscard.NewDiscardLogger(), clock.Real{}, mockUpdater)

	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{}`))
	req = req.WithContext(auth.WithActor(req.Context(), access.Actor{UserID: 7}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "id is required")
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/jwt"
	"github.com/stayswap/stayswap/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCancelTargetingHandler(t *testing.T) {
	userID := uuid.New()
	swapID := uuid.New()
	targetID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		url                string
		setupMocks         func(mockSvc *MockTargetingCanceller, mockTokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name: "successful cancellation",
			url:  "/swaps/" + swapID.String() + "/targets/" + targetID.String(),
			setupMocks: func(mockSvc *MockTargetingCanceller, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().CancelTargeting(gomock.Any(), swapID, targetID, userID).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			// The service treats a repeated cancel as a no-op; the handler
			// reports success both times.
			name: "already cancelled",
			url:  "/swaps/" + swapID.String() + "/targets/" + targetID.String(),
			setupMocks: func(mockSvc *MockTargetingCanceller, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().CancelTargeting(gomock.Any(), swapID, targetID, userID).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "link not found",
			url:  "/swaps/" + swapID.String() + "/targets/" + targetID.String(),
			setupMocks: func(mockSvc *MockTargetingCanceller, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().CancelTargeting(gomock.Any(), swapID, targetID, userID).
					Return(services.ErrTargetNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "invalid target id",
			url:  "/swaps/" + swapID.String() + "/targets/not-a-uuid",
			setupMocks: func(mockSvc *MockTargetingCanceller, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "unauthorized",
			url:  "/swaps/" + swapID.String() + "/targets/" + targetID.String(),
			setupMocks: func(mockSvc *MockTargetingCanceller, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockTargetingCanceller(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			r := chi.NewRouter()
			r.Delete("/swaps/{id}/targets/{targetID}", NewCancelTargetingHandler(mockSvc, mockTokener))

			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			if rec.Code == http.StatusOK {
				var resp CancelTargetingResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
			}
		})
	}
}

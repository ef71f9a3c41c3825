package handlers

import (
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

func TestRemoveBookingHandler(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		url                string
		setupMocks         func(mockSvc *MockBookingRemover, mockTokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name: "successful removal",
			url:  "/bookings/" + bookingID.String(),
			setupMocks: func(mockSvc *MockBookingRemover, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Remove(gomock.Any(), userID, bookingID).Return(nil)
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name: "booking not found",
			url:  "/bookings/" + bookingID.String(),
			setupMocks: func(mockSvc *MockBookingRemover, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Remove(gomock.Any(), userID, bookingID).Return(services.ErrBookingNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "not the owner",
			url:  "/bookings/" + bookingID.String(),
			setupMocks: func(mockSvc *MockBookingRemover, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Remove(gomock.Any(), userID, bookingID).Return(services.ErrAuthorizationDenied)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name: "booking not available",
			url:  "/bookings/" + bookingID.String(),
			setupMocks: func(mockSvc *MockBookingRemover, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Remove(gomock.Any(), userID, bookingID).Return(services.ErrConflict)
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name: "invalid booking id",
			url:  "/bookings/not-a-uuid",
			setupMocks: func(mockSvc *MockBookingRemover, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "unauthorized",
			url:  "/bookings/" + bookingID.String(),
			setupMocks: func(mockSvc *MockBookingRemover, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockBookingRemover(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			r := chi.NewRouter()
			r.Delete("/bookings/{id}", NewRemoveBookingHandler(mockSvc, mockTokener))

			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}

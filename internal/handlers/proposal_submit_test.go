package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/jwt"
	"github.com/stayswap/stayswap/internal/models"
	"github.com/stayswap/stayswap/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSubmitProposalHandler(t *testing.T) {
	userID := uuid.New()
	swapID := uuid.New()
	validToken := "valid-token"
	amount := 200.0
	method := "pm_123"

	tests := []struct {
		name               string
		url                string
		requestBody        any
		setupMocks         func(mockSvc *MockProposalSubmitter, mockTokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name: "successful cash proposal",
			url:  "/swaps/" + swapID.String() + "/proposals",
			requestBody: SubmitProposalRequest{
				Type:            models.ProposalTypeCash,
				CashAmount:      &amount,
				PaymentMethodID: &method,
				Message:         "200 for the booking",
			},
			setupMocks: func(mockSvc *MockProposalSubmitter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Submit(gomock.Any(), swapID, userID, gomock.Any()).
					Return(&models.ProposalDB{ProposalID: uuid.New(), SwapID: swapID, Status: models.ProposalStatusPending}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "invalid swap id",
			url:         "/swaps/not-a-uuid/proposals",
			requestBody: SubmitProposalRequest{Type: models.ProposalTypeCash},
			setupMocks: func(mockSvc *MockProposalSubmitter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "invalid request body",
			url:         "/swaps/" + swapID.String() + "/proposals",
			requestBody: "not-json",
			setupMocks: func(mockSvc *MockProposalSubmitter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "unauthorized missing token",
			url:         "/swaps/" + swapID.String() + "/proposals",
			requestBody: SubmitProposalRequest{Type: models.ProposalTypeCash},
			setupMocks: func(mockSvc *MockProposalSubmitter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "cash below minimum",
			url:  "/swaps/" + swapID.String() + "/proposals",
			requestBody: SubmitProposalRequest{
				Type:            models.ProposalTypeCash,
				CashAmount:      &amount,
				PaymentMethodID: &method,
				Message:         "offer",
			},
			setupMocks: func(mockSvc *MockProposalSubmitter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Submit(gomock.Any(), swapID, userID, gomock.Any()).
					Return(nil, services.ErrCashAmountBelowMinimum)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "swap no longer available",
			url:  "/swaps/" + swapID.String() + "/proposals",
			requestBody: SubmitProposalRequest{
				Type:            models.ProposalTypeCash,
				CashAmount:      &amount,
				PaymentMethodID: &method,
				Message:         "offer",
			},
			setupMocks: func(mockSvc *MockProposalSubmitter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Submit(gomock.Any(), swapID, userID, gomock.Any()).
					Return(nil, services.ErrSwapNotAvailable)
			},
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockProposalSubmitter(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				_ = json.NewEncoder(&body).Encode(tt.requestBody)
			}

			r := chi.NewRouter()
			r.Post("/swaps/{id}/proposals", NewSubmitProposalHandler(mockSvc, mockTokener))

			req := httptest.NewRequest(http.MethodPost, tt.url, &body)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}

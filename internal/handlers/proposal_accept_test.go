package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/jwt"
	"github.com/stayswap/stayswap/internal/models"
	"github.com/stayswap/stayswap/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAcceptProposalHandler(t *testing.T) {
	userID := uuid.New()
	swapID := uuid.New()
	proposalID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockProposalAccepter, mockTokener *MockTokener)
		expectedStatusCode int
		checkBody          func(t *testing.T, body map[string]any)
	}{
		{
			name:        "successful accept",
			requestBody: AcceptProposalRequest{SwapID: swapID, ProposalID: proposalID},
			setupMocks: func(mockSvc *MockProposalAccepter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Accept(gomock.Any(), swapID, proposalID, userID).
					Return(&models.SwapDB{SwapID: swapID, Status: models.SwapStatusAccepted}, nil)
			},
			expectedStatusCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
			},
		},
		{
			name:        "not the owner",
			requestBody: AcceptProposalRequest{SwapID: swapID, ProposalID: proposalID},
			setupMocks: func(mockSvc *MockProposalAccepter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Accept(gomock.Any(), swapID, proposalID, userID).
					Return(nil, services.ErrAuthorizationDenied)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:        "auction still open",
			requestBody: AcceptProposalRequest{SwapID: swapID, ProposalID: proposalID},
			setupMocks: func(mockSvc *MockProposalAccepter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Accept(gomock.Any(), swapID, proposalID, userID).
					Return(nil, services.ErrAuctionNotEnded)
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:        "invalid request body",
			requestBody: "not-json",
			setupMocks: func(mockSvc *MockProposalAccepter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "unauthorized",
			requestBody: AcceptProposalRequest{SwapID: swapID, ProposalID: proposalID},
			setupMocks: func(mockSvc *MockProposalAccepter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockProposalAccepter(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				_ = json.NewEncoder(&body).Encode(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/proposals/accept", &body)
			rec := httptest.NewRecorder()
			NewAcceptProposalHandler(mockSvc, mockTokener)(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			if tt.checkBody != nil {
				var parsed map[string]any
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
				tt.checkBody(t, parsed)
			}
		})
	}
}

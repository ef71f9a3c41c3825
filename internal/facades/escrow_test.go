package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEscrowHTTPFacade_Confirm_Success(t *testing.T) {
	swapID := uuid.New()
	proposalID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/escrow/confirm", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req confirmRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, swapID.String(), req.SwapID)
		assert.Equal(t, proposalID.String(), req.ProposalID)

		json.NewEncoder(w).Encode(confirmResponse{Success: true})
	}))
	defer server.Close()

	facade := NewEscrowHTTPFacade(server.URL, 5*time.Second)
	err := facade.Confirm(context.Background(), swapID, proposalID)
	assert.NoError(t, err)
}

func TestEscrowHTTPFacade_Confirm_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(confirmResponse{Success: false, Error: "insufficient funds"})
	}))
	defer server.Close()

	facade := NewEscrowHTTPFacade(server.URL, 5*time.Second)
	err := facade.Confirm(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrEscrowUnavailable)
}

func TestEscrowHTTPFacade_Confirm_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	facade := NewEscrowHTTPFacade(server.URL, 5*time.Second)
	err := facade.Confirm(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrEscrowUnavailable)
}

func TestEscrowHTTPFacade_Confirm_Unreachable(t *testing.T) {
	facade := NewEscrowHTTPFacade("http://127.0.0.1:1", time.Second)
	err := facade.Confirm(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrEscrowUnavailable)
}

func TestEscrowHTTPFacade_Confirm_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	facade := NewEscrowHTTPFacade(server.URL, 5*time.Second)
	err := facade.Confirm(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrEscrowUnavailable)
}

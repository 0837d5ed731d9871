package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomocua-ads/internal/domain"
)

func TestWriteDomainError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails int
	}{
		{
			name:        "validation",
			err:         domain.NewValidationError([]domain.Violation{{Field: "title", Message: "must not be blank"}}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeBadRequest,
			wantDetails: 1,
		},
		{name: "search criteria", err: fmt.Errorf("%w: capacity", domain.ErrInvalidSearchCriteria), wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "sort field", err: domain.ErrInvalidSortField, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "location", err: domain.ErrInvalidLocation, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "not found", err: domain.ErrOfferNotFound, wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{name: "unauthenticated", err: domain.ErrUnauthenticated, wantStatus: http.StatusUnauthorized, wantCode: ErrCodeUnauthorized},
		{name: "infrastructure", err: fmt.Errorf("find offers: %w", errors.New("db down")), wantStatus: http.StatusInternalServerError, wantCode: ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/transport", nil)

			WriteDomainError(rr, req, logger, tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Nil(t, envelope.Data)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
			assert.Len(t, envelope.Error.Details, tt.wantDetails)
			assert.NotContains(t, envelope.Error.Message, "db down")
		})
	}
}

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSONSuccess(rr, http.StatusCreated, map[string]int{"id": 1})

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"data":{"id":1},"error":null}`, rr.Body.String())
}

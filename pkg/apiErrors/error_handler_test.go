package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrAccountNotFound, "Conta não encontrada", map[string]string{"id": "x"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Error)
	assert.Equal(t, ErrAccountNotFound, body.Code)
	assert.Equal(t, "Conta não encontrada", body.Description)
	assert.Equal(t, map[string]any{"id": "x"}, body.Details)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidQuery))
	assert.Equal(t, http.StatusBadGateway, StatusFor(ErrMonitor))
	assert.Equal(t, http.StatusTooManyRequests, StatusFor(ErrTooManyRequests))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XXX_999"))
}

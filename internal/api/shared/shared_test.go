package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/apperr"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)

	RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"slug": "cats"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"slug":"cats"}`, rec.Body.String())
}

func TestRespondWithAppErrorClientError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles/banana", nil)

	RespondWithAppError(rec, req, apperr.BadRequest(""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "fail", body.Status)
	assert.Equal(t, "Bad request", body.Message)
}

func TestRespondWithAppErrorUnknownIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)

	RespondWithAppError(rec, req, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Something went wrong", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestUsernameContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, UsernameFromContext(ctx))

	ctx = WithUsername(ctx, "butter_bridge")
	assert.Equal(t, "butter_bridge", UsernameFromContext(ctx))

	// The key is an unexported struct type; a bare string cannot reach it.
	assert.Nil(t, ctx.Value("username"))
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "abc-123")
	assert.Equal(t, "abc-123", RequestIDFromContext(ctx))
}

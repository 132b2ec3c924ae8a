package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventlisting/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantStatus  string
		wantMessage string
	}{
		{"validation", domain.NewValidationError("bad date"), http.StatusBadRequest, StatusBadRequest, "bad date"},
		{"forbidden", domain.NewForbiddenError("not yours"), http.StatusForbidden, StatusForbidden, "not yours"},
		{"not found wrapped", fmt.Errorf("get event: %w", domain.NewNotFoundError("event with id=1 was not found")), http.StatusNotFound, StatusNotFound, "get event: event with id=1 was not found"},
		{"conflict", domain.NewConflictError("duplicate"), http.StatusConflict, StatusConflict, "duplicate"},
		{"internal domain error", domain.NewInternalError("encoding failed"), http.StatusInternalServerError, StatusInternalError, "encoding failed"},
		{"unknown error is hidden", errors.New("pq: connection reset"), http.StatusInternalServerError, StatusInternalError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, httptest.NewRequest(http.MethodGet, "/events/1", nil), testLogger(), tt.err)

			require.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body ApiError
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotEmpty(t, body.Reason)
			assert.NotNil(t, body.Errors)
			assert.Len(t, body.Timestamp, len(domain.DateTimeLayout))
		})
	}
}

type sampleRequest struct {
	Title string `json:"title"`
}

func (s sampleRequest) Validate() error {
	return validation.ValidateStruct(&s, validation.Field(&s.Title, validation.Required, validation.Length(3, 10)))
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantErrors []string
	}{
		{name: "valid", body: `{"title":"Jazz"}`, wantOK: true},
		{name: "unknown field", body: `{"title":"Jazz","x":1}`},
		{name: "malformed", body: `{`},
		{name: "validation failure", body: `{"title":"ab"}`, wantErrors: []string{"title: the length must be between 3 and 10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dest sampleRequest

			ok := DecodeAndValidate(rec, req, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var body ApiError
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, StatusBadRequest, body.Status)
			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, body.Errors)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query   string
		want    domain.PageRequest
		wantErr bool
	}{
		{query: "", want: domain.PageRequest{From: 0, Size: 10}},
		{query: "from=20&size=5", want: domain.PageRequest{From: 20, Size: 5}},
		{query: "from=-1", wantErr: true},
		{query: "size=0", wantErr: true},
		{query: "size=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := ParsePage(httptest.NewRequest(http.MethodGet, "/events?"+tt.query, nil))
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt64List(t *testing.T) {
	got, err := QueryInt64List(httptest.NewRequest(http.MethodGet, "/events?categories=1,2&categories=3", nil), "categories")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)

	_, err = QueryInt64List(httptest.NewRequest(http.MethodGet, "/events?categories=x", nil), "categories")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestQueryBool(t *testing.T) {
	got, err := QueryBool(httptest.NewRequest(http.MethodGet, "/events", nil), "paid")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = QueryBool(httptest.NewRequest(http.MethodGet, "/events?paid=false", nil), "paid")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, *got)

	_, err = QueryBool(httptest.NewRequest(http.MethodGet, "/events?paid=maybe", nil), "paid")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.RemoteAddr = "192.0.2.10:51234"
	assert.Equal(t, "192.0.2.10", ClientIP(req))
	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", ClientIP(req))
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	testCases := []struct {
		name       string
		checkErr   error
		wantStatus int
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "database down", checkErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewHealthCheckHandler(stubHealthChecker{err: tc.checkErr})
			require.NoError(t, handler.HealthCheck(c))
			assert.Equal(t, tc.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tc.checkErr == nil {
				assert.Equal(t, "healthy", body["status"])
				return
			}
			assert.Equal(t, "SYSTEM_003", body["code"])
			assert.Equal(t, false, body["success"])
		})
	}
}

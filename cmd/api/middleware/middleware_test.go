package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/api/httpclient"
	"feed-admin/cmd/api/trace"
)

func TestExtractBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name        string
		headerValue string
		wantToken   string
		wantErr     error
	}{
		{name: "missing header", wantErr: ErrMissingHeader},
		{name: "invalid scheme", headerValue: "Basic abc", wantErr: ErrInvalidFormat},
		{name: "missing token part", headerValue: "Bearer", wantErr: ErrInvalidFormat},
		{name: "empty token", headerValue: "Bearer    ", wantErr: ErrEmptyToken},
		{name: "valid bearer token", headerValue: "bearer token-123", wantToken: "token-123"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.headerValue != "" {
				c.Request.Header.Set("Authorization", tc.headerValue)
			}

			token, err := ExtractBearerToken(c)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	return r
}

func TestOperatorToken(t *testing.T) {
	r := newEngine(OperatorToken())
	r.GET("/token", func(c *gin.Context) {
		c.String(http.StatusOK, httpclient.BearerTokenFromContext(c.Request.Context()))
	})

	t.Run("forwards the operator token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/token", nil)
		req.Header.Set("Authorization", "Bearer op-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "op-1", w.Body.String())
	})

	t.Run("missing header falls through", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/token", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/token", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var body dto.ErrorResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, ErrInvalidFormat.Error(), body.Error)
	})
}

func TestRequestTrace(t *testing.T) {
	r := newEngine(RequestTrace())
	r.POST("/echo", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, trace.RequestIDFromContext(c.Request.Context())+"|"+string(raw))
	})

	t.Run("keeps the inbound request id and the body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":1}`))
		req.Header.Set("X-Request-Id", "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42|{\"a\":1}", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get("X-Request-Id"))
		assert.Equal(t, "0", w.Header().Get("X-Span-Id"))
	})

	t.Run("generates a request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		assert.True(t, strings.HasPrefix(w.Body.String(), w.Header().Get("X-Request-Id")+"|"))
	})
}

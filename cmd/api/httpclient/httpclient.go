package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"feed-admin/cmd/api/trace"
	"feed-admin/cmd/internal/logger"
)

// Config는 HTTP 클라이언트 공통 설정을 캡슐화한다.
type Config struct {
	Timeout time.Duration
	// Token 은 컨텍스트에 운영자 토큰이 없을 때 붙이는 기본 Bearer 토큰이다.
	Token string
}

type ctxKey string

const ctxKeyBearer ctxKey = "bearer_token"

// WithBearerToken 은 운영자의 Bearer 토큰을 컨텍스트에 저장한다.
// 토큰 검증은 원격 피드 API 가 수행하고, 여기서는 그대로 전달만 한다.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyBearer, token)
}

// BearerTokenFromContext 는 WithBearerToken 으로 저장한 토큰을 반환한다.
func BearerTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKeyBearer).(string)
	return v
}

// loggingRoundTripper는 모든 아웃바운드 HTTP 호출에 대해 공통 로깅,
// X-Request-Id 트레이싱, Authorization 전달을 수행한다.
type loggingRoundTripper struct {
	inner        http.RoundTripper
	defaultToken string
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	ctx := req.Context()
	requestID, spanID := trace.NextSpanID(ctx)
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	if req.Header.Get("Authorization") == "" {
		token := BearerTokenFromContext(ctx)
		if token == "" {
			token = l.defaultToken
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	query := ""
	if req.URL != nil {
		query = req.URL.RawQuery
	}
	var bodySnippet string
	if req.Body != nil {
		if bodyBytes, err := io.ReadAll(req.Body); err == nil {
			if len(bodyBytes) > 0 {
				const maxBodyLog = 1024
				if len(bodyBytes) > maxBodyLog {
					bodySnippet = string(bodyBytes[:maxBodyLog])
				} else {
					bodySnippet = string(bodyBytes)
				}
			}
			// 실제 전송을 위해 Body 를 복원한다.
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	resp, err := l.inner.RoundTrip(req)
	fields := logger.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"query":      query,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// BaseClient는 공통 HTTP 클라이언트와 baseURL을 묶어두고,
// URL 생성, 요청 실행, 에러 분류를 도와준다.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient는 주어진 baseURL과 설정으로 BaseClient를 생성한다.
func NewBaseClient(baseURL string, cfg Config) *BaseClient {
	return &BaseClient{
		HTTPClient: New(cfg),
		BaseURL:    baseURL,
	}
}

// NewBaseClientWithClient는 이미 생성된 http.Client를 사용하는 BaseClient를 생성한다.
// httpClient가 nil이면 기본 클라이언트를 사용한다.
func NewBaseClientWithClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = NewDefault()
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
	}
}

// NewRequest는 baseURL과 상대 경로, 쿼리, 바디를 사용해 새로운 HTTP 요청을 생성한다.
// relPath에 쿼리(?)가 포함된 경우 path.Join이 쿼리를 손상시키므로 에러를 반환한다.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

// NewJSONRequest는 payload를 JSON으로 인코딩해 요청 바디로 사용한다. payload가 nil이면 바디 없이 생성한다.
func (c *BaseClient) NewJSONRequest(ctx context.Context, method, relPath string, query url.Values, payload any) (*http.Request, error) {
	if payload == nil {
		return c.NewRequest(ctx, method, relPath, query, nil)
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := c.NewRequest(ctx, method, relPath, query, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Do는 내부 HTTP 클라이언트를 사용해 요청을 실행한다.
func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// Send는 요청을 실행하고 결과를 분류한다.
//   - 전송 실패/타임아웃: *NetworkError
//   - 2xx 이외의 응답: *ServerError (본문 앞부분 포함)
//   - out 이 nil 이 아니면 2xx 응답 본문을 JSON 으로 디코딩한다.
func (c *BaseClient) Send(op string, req *http.Request, out any) error {
	resp, err := c.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &ServerError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	// 본문 없는 2xx(202 Accepted 등)는 out 을 그대로 둔다.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// New는 주어진 설정으로 http.Client를 생성한다.
// Timeout이 0이면 기본값 10초를 사용한다.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport, defaultToken: cfg.Token},
	}
}

// NewDefault는 공통 기본 설정(Timeout 10초)을 사용하는 http.Client를 생성한다.
func NewDefault() *http.Client {
	return New(Config{})
}

package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"feed-admin/cmd/api/trace"
	"feed-admin/cmd/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"

	maxBodyLog = 1024
)

// 스크레이프/헬스체크는 완료 로그를 남기지 않는다.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// RequestTrace 는 inbound 요청마다 Request ID 를 보장하고 컨텍스트와 응답 헤더에 싣는다.
// feed 서비스 호출은 같은 Request ID 아래 span 1,2,3... 으로 기록된다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		ctx := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctx)
		span := trace.CurrentSpanID(ctx)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, span)

		body := snapshotBody(c)

		c.Next()

		if _, quiet := quietPaths[req.URL.Path]; quiet {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = req.URL.Path
		}
		fields := logger.Fields{
			"method":      req.Method,
			"route":       route,
			"path":        req.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  requestID,
			"span_id":     trace.CurrentSpanID(c.Request.Context()),
		}
		if body != "" {
			fields["body"] = body
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}

// snapshotBody 는 요청 바디 앞부분을 읽고 핸들러가 다시 읽을 수 있도록 복원한다.
func snapshotBody(c *gin.Context) string {
	req := c.Request
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return ""
	}
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
	if len(raw) > maxBodyLog {
		raw = raw[:maxBodyLog]
	}
	return string(raw)
}

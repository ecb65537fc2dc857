package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError 는 요청이 서버에 도달하지 못했거나 응답을 받지 못한 경우다. (연결 실패, 타임아웃)
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError 는 서버가 2xx 이외의 상태 코드로 응답한 경우다.
type ServerError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: status=%d body=%s", e.Op, e.StatusCode, e.Body)
}

// IsNetworkError reports whether err (or anything it wraps) is a *NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsServerError reports whether err (or anything it wraps) is a *ServerError.
func IsServerError(err error) bool {
	var srvErr *ServerError
	return errors.As(err, &srvErr)
}

// IsNotFound reports whether the remote API answered 404.
func IsNotFound(err error) bool {
	var srvErr *ServerError
	return errors.As(err, &srvErr) && srvErr.StatusCode == http.StatusNotFound
}

// StatusCode returns the remote status code carried by err, or 0.
func StatusCode(err error) int {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr.StatusCode
	}
	return 0
}

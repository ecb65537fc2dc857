package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/api/httpclient"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// ExtractBearerToken extracts the Bearer token from the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidFormat
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// OperatorToken 은 운영자의 Bearer 토큰을 요청 컨텍스트에 실어 feed 서비스 호출에 그대로 전달한다.
// 토큰 검증은 feed 서비스가 한다. 헤더가 없으면 설정된 서비스 토큰으로 호출된다.
func OperatorToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearerToken(c)
		switch {
		case errors.Is(err, ErrMissingHeader):
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
			return
		default:
			c.Request = c.Request.WithContext(httpclient.WithBearerToken(c.Request.Context(), token))
		}
		c.Next()
	}
}

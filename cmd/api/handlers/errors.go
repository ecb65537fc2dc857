package handlers

import (
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/api/httpclient"
	"feed-admin/cmd/api/services"
	"feed-admin/cmd/internal/moderation"
	"feed-admin/paging"
)

// statusFor maps service and feed service errors to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrViewNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNoPostSelected),
		errors.Is(err, moderation.ErrActionInProgress):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnknownTab),
		errors.Is(err, services.ErrInvalidFilter),
		errors.Is(err, services.ErrInvalidNavigation),
		errors.Is(err, paging.ErrInvalidPageSize),
		errors.Is(err, feedclient.ErrInvalidPostID),
		errors.Is(err, moderation.ErrInvalidAction):
		return http.StatusBadRequest
	case httpclient.IsNotFound(err):
		return http.StatusNotFound
	case httpclient.IsNetworkError(err):
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	case httpclient.IsServerError(err), moderation.IsActionError(err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), dto.ErrorResponseDTO{Error: err.Error()})
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"feed-admin/cmd/api/clients/feedclient"
	"feed-admin/cmd/api/httpclient"
	"feed-admin/cmd/api/services"
	"feed-admin/cmd/internal/moderation"
	"feed-admin/paging"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"view not found", services.ErrViewNotFound, http.StatusNotFound},
		{"no selection", services.ErrNoPostSelected, http.StatusConflict},
		{"action in progress", fmt.Errorf("p1: %w", moderation.ErrActionInProgress), http.StatusConflict},
		{"unknown tab", services.ErrUnknownTab, http.StatusBadRequest},
		{"invalid page size", paging.ErrInvalidPageSize, http.StatusBadRequest},
		{"invalid action", moderation.ErrInvalidAction, http.StatusBadRequest},
		{"invalid post id", fmt.Errorf("%w: %q", feedclient.ErrInvalidPostID, ".."), http.StatusBadRequest},
		{"action on invalid post id", &moderation.ActionError{Kind: moderation.KindDelete, PostID: "..", Err: feedclient.ErrInvalidPostID}, http.StatusBadRequest},
		{"remote 404", &httpclient.ServerError{Op: "GetPost", StatusCode: 404}, http.StatusNotFound},
		{"remote 500", &httpclient.ServerError{Op: "GetPost", StatusCode: 500}, http.StatusBadGateway},
		{"timeout", &httpclient.NetworkError{Op: "GetPost", Err: timeoutErr{}}, http.StatusGatewayTimeout},
		{"connection refused", &httpclient.NetworkError{Op: "GetPost", Err: errors.New("connection refused")}, http.StatusBadGateway},
		{"failed action", &moderation.ActionError{Kind: moderation.KindHide, PostID: "p1", Err: errors.New("boom")}, http.StatusBadGateway},
		{"unknown", context.Canceled, http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

package services

import "errors"

var (
	ErrViewNotFound      = errors.New("view not found")
	ErrNoPostSelected    = errors.New("no post selected in this view")
	ErrUnknownTab        = errors.New("unknown detail tab")
	ErrInvalidFilter     = errors.New("invalid post filter")
	ErrInvalidNavigation = errors.New("invalid navigation direction")
)

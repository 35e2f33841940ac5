package kiosk

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrTokenInvalid     = errors.New("qr token invalid, expired or already used")
)

package personnel

import "errors"

var (
	ErrPersonnelNotFound = errors.New("personnel not found")
	ErrPersonnelNoExists = errors.New("personnel number already exists")
	ErrPersonnelInactive = errors.New("personnel is not active")
)

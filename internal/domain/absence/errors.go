package absence

import "errors"

var (
	ErrAbsenceNotFound = errors.New("absence record not found")
)

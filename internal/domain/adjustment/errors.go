package adjustment

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("salary adjustment not found")
)

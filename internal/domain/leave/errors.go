package leave

import "errors"

var (
	ErrRequestNotFound   = errors.New("leave request not found")
	ErrRequestNotPending = errors.New("leave request cannot be modified after processing")
	ErrAlreadyProcessed  = errors.New("leave request has already been processed")
	ErrNotProcessed      = errors.New("leave request is still pending")
)

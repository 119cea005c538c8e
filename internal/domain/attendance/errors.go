package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrMemoNotSaved   = errors.New("failed to save memo")
)

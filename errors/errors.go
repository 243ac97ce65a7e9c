package errors

import "fmt"

var (
	// Authentication: terminal for the attempted operation, no retry.
	ErrMissingCredential = fmt.Errorf("missing credential")
	ErrInvalidCredential = fmt.Errorf("invalid credential")
	ErrExpiredCredential = fmt.Errorf("expired credential")
	ErrUnknownIdentity   = fmt.Errorf("unknown identity")

	// Authorization: authenticated but not permitted.
	ErrUnauthorized = fmt.Errorf("not authorized")
	ErrAccessDenied = fmt.Errorf("access denied")

	ErrValidation = fmt.Errorf("validation failed")
	ErrNotFound   = fmt.Errorf("not found")

	// Coordination conflicts.
	ErrDuplicateResponse = fmt.Errorf("donor already responded to this request")
	ErrInvalidState      = fmt.Errorf("request is not active")
	ErrInvalidDonor      = fmt.Errorf("no pending response from this donor")
	ErrInvalidTransition = fmt.Errorf("invalid status transition")

	// Chat.
	ErrEmptyMessage = fmt.Errorf("message is empty")
)

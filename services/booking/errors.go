package booking

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrForbidden         = errors.New("booking belongs to another user")
	ErrInvalidTransition = errors.New("booking can no longer be changed")
)

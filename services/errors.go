package services

import "errors"

// Sentinel errors controllers map to HTTP statuses. Availability and
// state-transition failures are distinct conflict errors (409), never
// folded into validation or generic failure.
var (
	ErrReservationNotFound  = errors.New("reservation_not_found")
	ErrBlockBookingNotFound = errors.New("block_booking_not_found")
	ErrRoomNotFound         = errors.New("room_not_found")
	ErrCustomerNotFound     = errors.New("customer_not_found")
	ErrInvoiceNotFound      = errors.New("invoice_not_found")

	ErrRoomUnavailable          = errors.New("room_unavailable")
	ErrInvalidTransition        = errors.New("invalid_status_transition")
	ErrCancellationWindowClosed = errors.New("cancellation_window_closed")
)

// ValidationError reports the first violated input constraint. It never
// reaches the persistence layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package httperr

import "errors"

// Business error codes surfaced by the booking core.
const (
	CodeInvalidPhoneFormat  = "invalid_phone_format"
	CodeInvalidPhone        = "invalid_phone"
	CodeDuplicatePhone      = "duplicate_phone"
	CodeActiveReservation   = "active_reservation_exists"
	CodeCustomerBanned      = "customer_banned"
	CodeNoBarbersAvailable  = "no_barbers_available"
	CodeReservationNotFound = "reservation_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts the business error, if any.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

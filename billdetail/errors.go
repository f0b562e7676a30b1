package billdetail

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	msgMissingRequired  = "missing required fields"
	msgQuantityPositive = "quantity must be > 0"
	msgPriceNonNegative = "price must be >= 0"
	msgEmptyDetails     = "details must not be empty"
	msgInvalidDetailID  = "invalid detail ID"
	msgInvalidBillID    = "invalid bill ID"
	msgDetailNotFound   = "detail not found"
)

// ValidationError is a failure detected locally before any store call.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// validationError translates validator output into the fixed gateway
// messages. The required id fields share one message; quantity and
// price each carry their own constraint.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Quantity":
			return &ValidationError{msg: msgQuantityPositive}
		case "Price":
			return &ValidationError{msg: msgPriceNonNegative}
		default:
			return &ValidationError{msg: msgMissingRequired}
		}
	}
	return &ValidationError{msg: err.Error()}
}

package field

import "errors"

// Errors returned by field arithmetic.
var (
	ErrModulusMismatch = errors.New("field: modulus mismatch")
	ErrKindMismatch    = errors.New("field: cannot mix exact and approximate elements")
	ErrDivisionByZero  = errors.New("field: division by zero")
	ErrNotInvertible   = errors.New("field: divisor not invertible")
	ErrInvalidModulus  = errors.New("field: invalid modulus")
)

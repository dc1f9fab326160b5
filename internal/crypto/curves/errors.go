package curves

import "errors"

// Errors returned by curve and point operations.
var (
	ErrInvalidPoint    = errors.New("curves: exactly one coordinate given")
	ErrPointNotOnCurve = errors.New("curves: point not on curve")
	ErrCurveMismatch   = errors.New("curves: points on different curves")
	ErrNoSearchBound   = errors.New("curves: search bound must be positive")
	ErrHasseViolation  = errors.New("curves: point count outside Hasse interval")
)

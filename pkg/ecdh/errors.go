package ecdh

import "fmt"

// PartyError attributes a failure to a specific party of the exchange.
type PartyError struct {
	PartyID string
	Phase   string
	Err     error
}

func (e *PartyError) Error() string {
	if e.Phase != "" {
		return fmt.Sprintf("party %s (%s): %v", e.PartyID, e.Phase, e.Err)
	}
	return fmt.Sprintf("party %s: %v", e.PartyID, e.Err)
}

func (e *PartyError) Unwrap() error {
	return e.Err
}

// NewPartyError creates a new PartyError.
func NewPartyError(party, phase string, err error) *PartyError {
	return &PartyError{
		PartyID: party,
		Phase:   phase,
		Err:     err,
	}
}

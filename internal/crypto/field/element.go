package field

// Element is a coordinate value a curve point can be built from.
// Implementations are immutable; every operation returns a new value.
// A computation never mixes implementations: doing so fails with ErrKindMismatch.
type Element interface {
	Add(other Element) (Element, error)
	Sub(other Element) (Element, error)
	Mul(other Element) (Element, error)
	Div(other Element) (Element, error)
	Pow(n uint64) (Element, error)

	// Neg returns the additive inverse.
	Neg() Element

	// FromInt casts an integer into the same field as the receiver.
	FromInt(v int64) Element

	IsZero() bool
	Equal(other Element) bool
	String() string
}

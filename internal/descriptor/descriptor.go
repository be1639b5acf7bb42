package descriptor

import "errors"

// ErrInvalidDescriptor is returned by Validate when a descriptor breaks one of
// its structural invariants.
var ErrInvalidDescriptor = errors.New("invalid descriptor")

// Kind tells the different descriptor records apart.
type Kind int

const (
	KindFunction Kind = iota
	KindContext
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindContext:
		return "context"
	default:
		return "unknown"
	}
}

// Descriptor is implemented by every record the registry can hold.
type Descriptor interface {
	Key() Key
	Kind() Kind
	Validate() error
}

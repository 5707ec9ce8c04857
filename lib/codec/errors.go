package codec

import "fmt"

// Kind classifies a codec error so callers can distinguish programmer
// bugs (InvalidArgument, IndexOutOfBounds) from corrupted/foreign input
// (Format, Capacity).
type Kind int

const (
	InvalidArgument Kind = iota
	IndexOutOfBounds
	Format
	Capacity
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid-argument"
	case IndexOutOfBounds:
		return "index-out-of-bounds"
	case Format:
		return "format-error"
	case Capacity:
		return "capacity-error"
	default:
		return "unknown-error"
	}
}

// Error is the concrete error type every exported codec operation returns
// on failure. Use errors.As to recover the Kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("bitio/codec: %s: %s", e.Kind, e.Msg)
}

func errInvalid(format string, args ...any) error {
	return &Error{Kind: InvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func errBounds(format string, args ...any) error {
	return &Error{Kind: IndexOutOfBounds, Msg: fmt.Sprintf(format, args...)}
}

func errFormat(format string, args ...any) error {
	return &Error{Kind: Format, Msg: fmt.Sprintf(format, args...)}
}

func errCapacity(format string, args ...any) error {
	return &Error{Kind: Capacity, Msg: fmt.Sprintf(format, args...)}
}

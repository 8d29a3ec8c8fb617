package huffman

// Error is the wrapper type for errors specific to this library, in the
// style of flate.Error: cheap, comparable, and without a call stack.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

// Errors returned by Table construction and Code.
var (
	// ErrPrecondition is returned when a constructor is handed a value
	// that violates one of its documented preconditions (for example, a
	// Code value that does not fit in its bitsize, or a non-positive
	// symbol frequency). These are programmer errors on caller-supplied
	// data.
	ErrPrecondition = Error("precondition violated")

	// ErrDuplicateSymbol is returned when two entries claim the same
	// symbol.
	ErrDuplicateSymbol = Error("duplicate symbol")

	// ErrDuplicateCode is returned when two entries claim the same code.
	ErrDuplicateCode = Error("duplicate code")

	// ErrNotCanonical is returned by NewTableFromContents when its input
	// is not listed in ascending (bitsize, symbol) order.
	ErrNotCanonical = Error("not canonical input")

	// ErrOversubscribed is returned when a symbol->bitsize schedule
	// describes more codes of some bitsize than the codespace allows
	// (a violation of Kraft's inequality).
	ErrOversubscribed = Error("oversubscribed alphabet")
)

package cryptoerr

// ErrorKind names a class of failure shared by the arithmetic, curve, DH and
// ECDSA packages. An Error wraps its kind, so errors.Is(err, ErrFailure)
// matches no matter how many fmt.Errorf layers sit above it.
type ErrorKind string

// Failure classes.
const (
	// ErrInvalidParameter is returned when an argument is out of its
	// permitted range, such as a non-positive modulus or a point at
	// infinity where an affine point is required.
	ErrInvalidParameter = ErrorKind("ErrInvalidParameter")

	// ErrIllegalParameter is returned when a cryptographic value is weak or
	// degenerate, such as a Diffie-Hellman public value of 1 or p-1, or a
	// malformed public key encoding.
	ErrIllegalParameter = ErrorKind("ErrIllegalParameter")

	// ErrInvalidLength is returned when an encoded length field or buffer
	// length does not match what the operation expects.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInsufficientBuffer is returned when a destination buffer is too
	// short to hold a value.
	ErrInsufficientBuffer = ErrorKind("ErrInsufficientBuffer")

	// ErrInvalidInputBuffer is returned when a wire structure is malformed.
	ErrInvalidInputBuffer = ErrorKind("ErrInvalidInputBuffer")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrFailure is returned when no modular inverse exists or an internal
	// invariant does not hold.
	ErrFailure = ErrorKind("ErrFailure")

	// ErrInvalidSignature is returned when a signature does not verify.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrDomainParametersUninitialized is returned when an operation runs
	// without curve or group parameters.
	ErrDomainParametersUninitialized = ErrorKind("ErrDomainParametersUninitialized")

	// ErrNotImplemented is returned when a requested algorithm is not
	// available, such as a hash function that is not linked into the binary.
	ErrNotImplemented = ErrorKind("ErrNotImplemented")

	// ErrRandomSourceUninitialized is returned when an operation that needs
	// entropy is called without a randomness source.
	ErrRandomSourceUninitialized = ErrorKind("ErrRandomSourceUninitialized")
)

// Error returns the kind's name.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error raised by one of the primitives. It carries the
// kind of failure in Err and a human-readable Description.
type Error struct {
	Err         error
	Description string
}

// Error returns the description only; the kind is reachable through Unwrap.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the kind.
func (e Error) Unwrap() error {
	return e.Err
}

// New pairs kind with a description naming the failing operation.
func New(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

package game

// Kind is a machine-readable error category.
type Kind string

const (
	KindUnknownLocation  Kind = "UNKNOWN_LOCATION"
	KindInvalidSelection Kind = "INVALID_SELECTION"
	KindNotFound         Kind = "NOT_FOUND"
	KindIOFailure        Kind = "IO_FAILURE"
	KindInsufficientGold Kind = "INSUFFICIENT_GOLD"
	KindEncounterOver    Kind = "ENCOUNTER_OVER"
	KindInvalidState     Kind = "INVALID_STATE"
)

// Error is the error type returned by the engine and its collaborators.
// Errors compare equal under errors.Is when their kinds match.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrUnknownLocation  = &Error{Kind: KindUnknownLocation, Message: "unknown location"}
	ErrInvalidSelection = &Error{Kind: KindInvalidSelection, Message: "invalid selection"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
	ErrIOFailure        = &Error{Kind: KindIOFailure, Message: "io failure"}
	ErrInsufficientGold = &Error{Kind: KindInsufficientGold, Message: "insufficient gold"}
	ErrEncounterOver    = &Error{Kind: KindEncounterOver, Message: "encounter is over"}
	ErrInvalidState     = &Error{Kind: KindInvalidState, Message: "invalid state"}
)

// NewError creates an error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an error of the given kind around an underlying cause.
func WrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

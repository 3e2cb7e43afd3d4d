package calc

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownMode is returned when a mode name matches no known Calculation Mode.
const ErrUnknownMode = constError("unknown calculation mode")

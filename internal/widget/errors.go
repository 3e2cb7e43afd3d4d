package widget

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by Mount and widget events.
const (
	// ErrUnknownMarker means a container carries no recognised marker class.
	ErrUnknownMarker = constError("container has no widget marker class")

	// ErrUnknownKind means a kind name matches no widget.
	ErrUnknownKind = constError("unknown widget kind")

	// ErrNoModeSwitch is returned by SelectMode on widgets without a mode switch.
	ErrNoModeSwitch = constError("widget has no mode switch")
)

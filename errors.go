package winaudio

import "errors"

// ErrUnsupported is returned by every operation on platforms other than
// Windows.
var ErrUnsupported = errors.New("winaudio: not supported on this platform")

var (
	errNoDefault = errors.New("winaudio: no default playback device")
	errNoDevice  = errors.New("winaudio: device not found")
)

// InitializationError reports a failed COM apartment setup. Nothing else in
// the same call can proceed after it.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return "winaudio: COM initialization failed: " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error { return e.Err }

// EnumerationError reports a platform failure while building the device
// list. Op names the failing platform call so privilege and environment
// problems can be told apart from bad input.
type EnumerationError struct {
	Op  string
	Err error
}

func (e *EnumerationError) Error() string {
	return "winaudio: " + e.Op + ": " + e.Err.Error()
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// PolicyUnavailableError reports that the policy-config object backing
// default-device switching could not be instantiated, typically because the
// platform build does not expose it. Retrying will not help.
type PolicyUnavailableError struct {
	Err error
}

func (e *PolicyUnavailableError) Error() string {
	return "winaudio: policy config unavailable: " + e.Err.Error()
}

func (e *PolicyUnavailableError) Unwrap() error { return e.Err }

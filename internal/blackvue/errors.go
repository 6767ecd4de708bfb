package blackvue

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrUnreachable = errors.New("dashcam: host unreachable or transport failure")
	ErrBadStatus   = errors.New("dashcam: unexpected response status")
	ErrBadResponse = errors.New("dashcam: invalid response format or malformed data")
)

// DeviceError is a rich error type that wraps the sentinel errors with
// context about the failed operation.
type DeviceError struct {
	Sentinel  error
	Operation string
	Status    int
	Err       error // nested lower-level error (e.g. net.Error)
}

func (e *DeviceError) Error() string {
	msg := fmt.Sprintf("blackvue: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DeviceError) Unwrap() error {
	return e.Sentinel
}

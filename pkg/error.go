package pkg

import "errors"

// Driver errors.
var (
	// ErrDeviceNotFound indicates no matching USB device is connected.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrTimeout indicates the device did not respond within the deadline.
	ErrTimeout = errors.New("exchange timeout")

	// ErrProtocol indicates a malformed or unexpected device response.
	ErrProtocol = errors.New("protocol error")

	// ErrInvalidArgument indicates an out-of-range or unrecognized value
	// supplied by the caller. Rejected before any USB transfer occurs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSupported indicates an operation the selected protocol
	// revision does not implement.
	ErrNotSupported = errors.New("operation not supported by protocol revision")

	// ErrClosed indicates use of a closed session.
	ErrClosed = errors.New("session closed")

	// ErrFrameTooLong indicates a request frame exceeding the 64-byte
	// transfer size. Always a programming error, never a device symptom.
	ErrFrameTooLong = errors.New("request frame exceeds transfer size")
)

package ehfifty

import (
	"time"

	"github.com/tdryer/eh-fifty/pkg"
	"github.com/tdryer/eh-fifty/transport"
)

// Errors returned by this package, re-exported for callers.
var (
	// ErrDeviceNotFound indicates no matching USB device is connected.
	ErrDeviceNotFound = pkg.ErrDeviceNotFound

	// ErrTimeout indicates the device did not respond within the
	// deadline. The device has already been reset as a side effect;
	// retrying is at the caller's discretion.
	ErrTimeout = pkg.ErrTimeout

	// ErrProtocol indicates a corrupted or nonsensical exchange.
	ErrProtocol = pkg.ErrProtocol

	// ErrInvalidArgument indicates a caller-supplied value was rejected
	// before any USB transfer occurred.
	ErrInvalidArgument = pkg.ErrInvalidArgument

	// ErrNotSupported indicates an operation the selected protocol
	// revision does not implement.
	ErrNotSupported = pkg.ErrNotSupported
)

// Device is an open configuration channel to an Astro A50 gen 4 base
// station.
//
// A Device is not safe for concurrent use: the protocol is strictly
// half-duplex, one outstanding exchange at a time. Callers that share a
// Device across goroutines must serialize access themselves.
type Device struct {
	Capabilities
	session *transport.Session
}

// Option configures Open.
type Option func(*options)

type options struct {
	rev     Revision
	timeout time.Duration
}

// WithRevision selects the protocol revision. The default is
// RevisionCurrent.
func WithRevision(rev Revision) Option {
	return func(o *options) { o.rev = rev }
}

// WithTimeout overrides the per-transfer deadline. The default is
// transport.DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Open claims the device and returns a ready Device. It fails with
// ErrDeviceNotFound if no device is connected.
//
// The caller owns the Device and must Close it on every exit path; Close is
// idempotent, so a deferred Close is always safe.
func Open(opts ...Option) (*Device, error) {
	o := options{rev: RevisionCurrent, timeout: transport.DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	session, err := transport.Open(transport.WithTimeout(o.timeout))
	if err != nil {
		return nil, err
	}
	pkg.LogInfo(pkg.ComponentProtocol, "session open", "revision", o.rev.String())
	return &Device{
		Capabilities: newCapabilities(session, o.rev),
		session:      session,
	}, nil
}

// NewDevice builds a Device over an existing exchanger, such as a
// transport.Session the caller opened itself or a test double. The caller
// remains responsible for closing the exchanger.
func NewDevice(x Exchanger, rev Revision) *Device {
	return &Device{Capabilities: newCapabilities(x, rev)}
}

// Close releases the device. Closing an already-closed Device is a no-op.
func (d *Device) Close() error {
	if d.session == nil {
		return nil
	}
	return d.session.Close()
}

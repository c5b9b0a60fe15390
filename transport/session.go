package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/gousb"

	"github.com/tdryer/eh-fifty/pkg"
)

// FrameSize is the fixed transfer size of the configuration protocol. Every
// response occupies one full frame; requests may be shorter but never longer.
const FrameSize = 64

// DefaultTimeout bounds each bulk transfer. The save-values response can
// take over two seconds to arrive.
const DefaultTimeout = 3000 * time.Millisecond

// Session owns exactly one exchange channel to the device.
//
// Lifecycle is Open -> (N exchanges) -> Close. A read timeout does not close
// the session; it resets the device to clear partially-written garbage and
// the session remains usable.
type Session struct {
	pipe    Pipe
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithTimeout overrides the per-transfer deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Open locates the device by vendor/product ID, claims the configuration
// interface, and returns a ready session. Returns pkg.ErrDeviceNotFound if
// no matching device is connected.
func Open(opts ...Option) (*Session, error) {
	pipe, err := openPipe()
	if err != nil {
		return nil, err
	}
	return NewSession(pipe, opts...), nil
}

// NewSession wraps an already-open pipe. Useful for tests and alternate
// transport backends; production callers use Open.
func NewSession(pipe Pipe, opts ...Option) *Session {
	s := &Session{
		pipe:    pipe,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exchange writes one request frame and reads one response frame.
//
// On read timeout the device is reset before the error is returned;
// subsequent reads would otherwise return garbage. The failed exchange is
// not retried.
func (s *Session) Exchange(req []byte) ([]byte, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, pkg.ErrClosed
	}
	if len(req) > FrameSize {
		return nil, fmt.Errorf("%w: %d bytes", pkg.ErrFrameTooLong, len(req))
	}

	pkg.LogFrame(pkg.ComponentTransport, "writing request", req)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.pipe.Write(ctx, req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: write: %v", pkg.ErrTimeout, err)
		}
		return nil, fmt.Errorf("write request: %w", err)
	}
	if n != len(req) {
		return nil, fmt.Errorf("%w: short write (%d of %d bytes)",
			pkg.ErrProtocol, n, len(req))
	}

	resp := make([]byte, FrameSize)
	n, err = s.pipe.Read(ctx, resp)
	if err != nil {
		if isTimeout(err) {
			// Without a reset, responses to later requests contain
			// garbage left over from this one.
			pkg.LogWarn(pkg.ComponentTransport, "resetting device after read timeout")
			if rerr := s.pipe.Reset(); rerr != nil {
				pkg.LogError(pkg.ComponentTransport, "device reset failed", "error", rerr)
			}
			return nil, fmt.Errorf("%w: read: %v", pkg.ErrTimeout, err)
		}
		return nil, fmt.Errorf("read response: %w", err)
	}

	pkg.LogFrame(pkg.ComponentTransport, "received response", resp[:n])
	return resp[:n], nil
}

// Close releases the claimed interface, restores the kernel driver if one
// was detached, and frees all handle resources. Close is idempotent and
// best-effort: cleanup problems are logged, not returned.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.pipe.Close(); err != nil {
		pkg.LogWarn(pkg.ComponentTransport, "session cleanup failed", "error", err)
	}
	return nil
}

// isTimeout reports whether err is a transfer deadline failure, from either
// the context or libusb.
func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gousb.TransferTimedOut)
}

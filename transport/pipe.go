package transport

import "context"

// Pipe is the minimal bulk-endpoint surface a Session needs. The production
// implementation is backed by gousb; tests substitute scripted fakes.
type Pipe interface {
	// Write sends p to the OUT endpoint and returns the number of bytes
	// written. The context carries the transfer deadline.
	Write(ctx context.Context, p []byte) (int, error)

	// Read fills p from the IN endpoint and returns the number of bytes
	// received. The context carries the transfer deadline.
	Read(ctx context.Context, p []byte) (int, error)

	// Reset performs a device reset, clearing any partially-written
	// state on the device side.
	Reset() error

	// Close releases the claimed interface and all handle resources.
	Close() error
}

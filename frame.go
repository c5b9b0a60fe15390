package ehfifty

import (
	"fmt"

	"github.com/tdryer/eh-fifty/pkg"
)

// Wire framing. Both directions use fixed 64-byte transfers.
const (
	frameSize     = 64
	framePreamble = 0x02
	headerSize    = 3
	maxPayload    = frameSize - headerSize
)

// protoErrf wraps pkg.ErrProtocol with detail.
func protoErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", pkg.ErrProtocol, fmt.Sprintf(format, args...))
}

// argErrf wraps pkg.ErrInvalidArgument with detail.
func argErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", pkg.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// encodeFrame builds a request frame: preamble, opcode, then the payload.
// The current revision inserts a payload length byte; the legacy firmware
// expects the payload verbatim.
func encodeFrame(rev Revision, op byte, payload []byte) ([]byte, error) {
	buf := make([]byte, 0, frameSize)
	buf = append(buf, framePreamble, op)
	if rev == RevisionCurrent && len(payload) > 0 {
		buf = append(buf, byte(len(payload)))
	}
	buf = append(buf, payload...)
	if len(buf) > frameSize {
		return nil, fmt.Errorf("%w: %d bytes", pkg.ErrFrameTooLong, len(buf))
	}
	return buf, nil
}

// decodeFrame validates a response envelope and returns its payload.
//
// The declared payload length is clamped to the bytes actually present;
// some firmware over-reports it.
func decodeFrame(rev Revision, resp []byte) ([]byte, error) {
	if len(resp) < headerSize {
		return nil, protoErrf("response too short (%d bytes)", len(resp))
	}
	if resp[0] != framePreamble {
		return nil, protoErrf("bad preamble 0x%02x", resp[0])
	}
	switch status := resp[1]; status {
	case statusOK:
	case statusNoResponse:
		if rev != RevisionCurrent {
			return nil, protoErrf("unknown status 0x%02x", status)
		}
	case statusError:
		return nil, protoErrf("device reported error")
	default:
		return nil, protoErrf("unknown status 0x%02x", status)
	}
	length := int(resp[2])
	if length > maxPayload {
		length = maxPayload
	}
	if avail := len(resp) - headerSize; length > avail {
		length = avail
	}
	return resp[headerSize : headerSize+length], nil
}

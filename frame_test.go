package ehfifty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdryer/eh-fifty/pkg"
)

func TestEncodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		rev     Revision
		op      byte
		payload []byte
		want    []byte
	}{
		{
			name: "current no payload",
			rev:  RevisionCurrent,
			op:   opGetBatteryStatus,
			want: []byte{0x02, 0x7C},
		},
		{
			name:    "current inserts length byte",
			rev:     RevisionCurrent,
			op:      opSetSliderValue,
			payload: []byte{0x04, 50},
			want:    []byte{0x02, 0x62, 0x02, 0x04, 50},
		},
		{
			name: "legacy no payload",
			rev:  RevisionLegacy,
			op:   opSaveValues,
			want: []byte{0x02, 0x61},
		},
		{
			name:    "legacy payload verbatim",
			rev:     RevisionLegacy,
			op:      opGetEQPresetName,
			payload: []byte{0x00, 0x02},
			want:    []byte{0x02, 0x6E, 0x00, 0x02},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeFrame(tt.rev, tt.op, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeFrameTooLong(t *testing.T) {
	// 61 payload bytes fill the frame exactly under current framing.
	frame, err := encodeFrame(RevisionCurrent, opSetEQPresetName, make([]byte, 61))
	require.NoError(t, err)
	assert.Len(t, frame, frameSize)

	_, err = encodeFrame(RevisionCurrent, opSetEQPresetName, make([]byte, 62))
	assert.ErrorIs(t, err, pkg.ErrFrameTooLong)
}

func TestDecodeFrame(t *testing.T) {
	frame := func(status, length byte, payload ...byte) []byte {
		resp := make([]byte, frameSize)
		resp[0] = framePreamble
		resp[1] = status
		resp[2] = length
		copy(resp[3:], payload)
		return resp
	}

	t.Run("ok", func(t *testing.T) {
		payload, err := decodeFrame(RevisionCurrent, frame(statusOK, 2, 0x61, 0x00))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x61, 0x00}, payload)
	})

	t.Run("bad preamble", func(t *testing.T) {
		resp := frame(statusOK, 1, 0x00)
		resp[0] = 0x01
		_, err := decodeFrame(RevisionCurrent, resp)
		assert.ErrorIs(t, err, pkg.ErrProtocol)
	})

	t.Run("device error status", func(t *testing.T) {
		_, err := decodeFrame(RevisionCurrent, frame(statusError, 0))
		assert.ErrorIs(t, err, pkg.ErrProtocol)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := decodeFrame(RevisionCurrent, frame(0x7F, 0))
		assert.ErrorIs(t, err, pkg.ErrProtocol)
	})

	t.Run("no-response status accepted by current", func(t *testing.T) {
		_, err := decodeFrame(RevisionCurrent, frame(statusNoResponse, 0))
		assert.NoError(t, err)
	})

	t.Run("no-response status rejected by legacy", func(t *testing.T) {
		_, err := decodeFrame(RevisionLegacy, frame(statusNoResponse, 0))
		assert.ErrorIs(t, err, pkg.ErrProtocol)
	})

	t.Run("short response", func(t *testing.T) {
		_, err := decodeFrame(RevisionCurrent, []byte{0x02, statusOK})
		assert.ErrorIs(t, err, pkg.ErrProtocol)
	})

	t.Run("over-reported length clamps to frame", func(t *testing.T) {
		// Some firmware declares more payload than a frame can hold.
		payload, err := decodeFrame(RevisionCurrent, frame(statusOK, 0xFF))
		require.NoError(t, err)
		assert.Len(t, payload, maxPayload)
	})

	t.Run("over-reported length clamps to bytes present", func(t *testing.T) {
		// Declares 60 payload bytes but only 10 arrived.
		resp := append([]byte{framePreamble, statusOK, 60}, make([]byte, 10)...)
		payload, err := decodeFrame(RevisionCurrent, resp)
		require.NoError(t, err)
		assert.Len(t, payload, 10)
	})
}

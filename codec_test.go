package ehfifty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdryer/eh-fifty/pkg"
)

func TestGainRoundTrip(t *testing.T) {
	for gain := MinGain; gain <= MaxGain; gain++ {
		wire, err := encodeGain(gain)
		require.NoError(t, err)
		got, err := decodeGain(wire)
		require.NoError(t, err)
		assert.Equal(t, gain, got, "gain %d", gain)
	}
}

func TestEncodeGainOutOfRange(t *testing.T) {
	for _, gain := range []int{MinGain - 1, MaxGain + 1, 100} {
		_, err := encodeGain(gain)
		assert.ErrorIs(t, err, pkg.ErrInvalidArgument, "gain %d", gain)
	}
}

func TestDecodeGainOutOfRange(t *testing.T) {
	for _, wire := range []byte{0x00, MinGain + gainOffset - 1, MaxGain + gainOffset + 1, 0xFF} {
		_, err := decodeGain(wire)
		assert.ErrorIs(t, err, pkg.ErrProtocol, "wire 0x%02x", wire)
	}
}

func TestEncodeName(t *testing.T) {
	encoded, err := encodeName("Test")
	require.NoError(t, err)
	assert.Equal(t, []byte("Test\x00"), encoded)

	// Longest representable name.
	encoded, err = encodeName(strings.Repeat("x", MaxPresetNameLen))
	require.NoError(t, err)
	assert.Len(t, encoded, MaxPresetNameLen+1)

	_, err = encodeName(strings.Repeat("x", MaxPresetNameLen+1))
	assert.ErrorIs(t, err, pkg.ErrInvalidArgument)

	_, err = encodeName("bad\x00name")
	assert.ErrorIs(t, err, pkg.ErrInvalidArgument)
}

func TestDecodeName(t *testing.T) {
	// Terminator and padding bytes are excluded.
	assert.Equal(t, "Test", decodeName([]byte{'T', 'e', 's', 't', 0x00, 0xAA, 0xBB}))
	assert.Equal(t, "", decodeName([]byte{0x00, 'x'}))
	// Tolerate a missing terminator at the end of the payload.
	assert.Equal(t, "abc", decodeName([]byte("abc")))
}

func TestCheckFreqAndBW(t *testing.T) {
	tests := []struct {
		name       string
		band       int
		centerFreq int
		bandwidth  int
		ok         bool
	}{
		{"interior band in range", 3, 1000, 4096, true},
		{"interior band min bandwidth", 2, MinCenterFreq, MinBandwidth, true},
		{"interior band max bandwidth", 4, MaxCenterFreq, MaxBandwidth, true},
		{"interior band bandwidth too low", 3, 1000, MinBandwidth - 1, false},
		{"interior band bandwidth too high", 3, 1000, MaxBandwidth + 1, false},
		{"edge band 1 zero bandwidth", 1, 120, 0, true},
		{"edge band 5 zero bandwidth", 5, 9000, 0, true},
		{"edge band 1 nonzero bandwidth", 1, 120, MinBandwidth, false},
		{"edge band 5 nonzero bandwidth", 5, 9000, 1, false},
		{"frequency too low", 3, MinCenterFreq - 1, 4096, false},
		{"frequency too high", 3, MaxCenterFreq + 1, 4096, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkFreqAndBW(tt.band, tt.centerFreq, tt.bandwidth)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, pkg.ErrInvalidArgument)
			}
		})
	}
}

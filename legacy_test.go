package ehfifty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdryer/eh-fifty/pkg"
)

func TestLegacyRoundTrips(t *testing.T) {
	dev, _ := newTestDevice(t, RevisionLegacy)

	require.NoError(t, dev.SetAlertVolume(40))
	require.NoError(t, dev.SaveValues())
	require.NoError(t, dev.SetAlertVolume(75))

	active, err := dev.GetAlertVolume(false)
	require.NoError(t, err)
	assert.Equal(t, 75, active)

	saved, err := dev.GetAlertVolume(true)
	require.NoError(t, err)
	assert.Equal(t, 40, saved)

	require.NoError(t, dev.SetSliderValue(SliderSideTone, 33))
	value, err := dev.GetSliderValue(SliderSideTone, false)
	require.NoError(t, err)
	assert.Equal(t, 33, value)

	require.NoError(t, dev.SetDefaultBalance(128))
	balance, err := dev.GetDefaultBalance(false)
	require.NoError(t, err)
	assert.Equal(t, 128, balance)

	require.NoError(t, dev.SetNoiseGateMode(NoiseGateHome))
	mode, err := dev.GetNoiseGateMode(false)
	require.NoError(t, err)
	assert.Equal(t, NoiseGateHome, mode)
}

func TestLegacyFraming(t *testing.T) {
	dev, fake := newTestDevice(t, RevisionLegacy)

	// Legacy requests carry the historical payload bytes verbatim, with
	// no length prefix inserted.
	require.NoError(t, dev.SetSliderValue(SliderMic, 50))
	assert.Equal(t, []byte{0x02, 0x62, 0x02, 0x04, 50}, fake.requests[len(fake.requests)-1])

	_, err := dev.GetEQPresetName(2, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x6E, 0x00, 0x02}, fake.requests[len(fake.requests)-1])

	_, err = dev.GetDefaultBalance(true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x77, 0x01, 0x01}, fake.requests[len(fake.requests)-1])
}

func TestCurrentFraming(t *testing.T) {
	dev, fake := newTestDevice(t, RevisionCurrent)

	// The current revision frames the same logical request with a length
	// byte, and the name getter gains a saved flag.
	require.NoError(t, dev.SetSliderValue(SliderMic, 50))
	assert.Equal(t, []byte{0x02, 0x62, 0x02, 0x04, 50}, fake.requests[len(fake.requests)-1])

	_, err := dev.GetEQPresetName(2, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x6E, 0x02, 0x01, 0x02}, fake.requests[len(fake.requests)-1])
}

func TestLegacyUnsupportedOperations(t *testing.T) {
	dev, fake := newTestDevice(t, RevisionLegacy)

	_, err := dev.GetEQPresetGain(1)
	assert.ErrorIs(t, err, pkg.ErrNotSupported)

	err = dev.SetEQPresetGain(1, [NumEQBands]int{})
	assert.ErrorIs(t, err, pkg.ErrNotSupported)

	_, err = dev.GetEQPresetFreqAndBW(1, 3)
	assert.ErrorIs(t, err, pkg.ErrNotSupported)

	err = dev.SetEQPresetFreqAndBW(1, 3, 1000, 4096)
	assert.ErrorIs(t, err, pkg.ErrNotSupported)

	err = dev.SetEQPresetName(1, "Test")
	assert.ErrorIs(t, err, pkg.ErrNotSupported)

	_, err = dev.GetMicEQ(false)
	assert.ErrorIs(t, err, pkg.ErrNotSupported)

	err = dev.SetMicEQ(1)
	assert.ErrorIs(t, err, pkg.ErrNotSupported)

	// The legacy firmware has no saved-name storage.
	_, err = dev.GetEQPresetName(1, true)
	assert.ErrorIs(t, err, pkg.ErrNotSupported)

	// None of these touched the wire.
	assert.Empty(t, fake.requests)
}

func TestLegacyRejectsNoResponseStatus(t *testing.T) {
	dev, fake := newTestDevice(t, RevisionLegacy)

	fake.respond = func(req []byte) []byte {
		return fake.frame(statusNoResponse, nil)
	}
	_, err := dev.GetBalance()
	assert.ErrorIs(t, err, pkg.ErrProtocol)
}

package ehfifty

import (
	"fmt"

	"github.com/tdryer/eh-fifty/pkg"
)

// legacyProto implements Capabilities for the legacy protocol revision.
//
// Legacy framing carries the request payload verbatim, so each override
// sends the exact byte sequence the legacy firmware expects, leading count
// byte included. Operations without a request payload are inherited from
// the embedded engine unchanged; their frames are identical in both
// revisions.
type legacyProto struct {
	*engine
}

func notSupported(what string) error {
	return fmt.Errorf("%w: %s", pkg.ErrNotSupported, what)
}

func (l *legacyProto) GetDefaultBalance(saved bool) (int, error) {
	return l.getDefaultBalance([]byte{0x01, flagByte(saved)})
}

func (l *legacyProto) SetDefaultBalance(balance int) error {
	if err := checkBalance(balance); err != nil {
		return err
	}
	return l.setDefaultBalance([]byte{0x01, byte(balance)})
}

func (l *legacyProto) GetAlertVolume(saved bool) (int, error) {
	return l.getAlertVolume([]byte{0x01, flagByte(saved)})
}

func (l *legacyProto) SetAlertVolume(percent int) error {
	if err := checkPercent("alert volume", percent); err != nil {
		return err
	}
	return l.setAlertVolume([]byte{0x01, byte(percent)})
}

func (l *legacyProto) SetNoiseGateMode(mode NoiseGateMode) error {
	if !mode.valid() {
		return argErrf("unknown noise gate mode 0x%02x", byte(mode))
	}
	return l.setNoiseGateMode([]byte{0x01, byte(mode)}, mode)
}

func (l *legacyProto) GetSliderValue(slider SliderType, saved bool) (int, error) {
	if !slider.valid() {
		return 0, argErrf("unknown slider type 0x%02x", byte(slider))
	}
	return l.getSliderValue([]byte{0x01, byte(slider)}, slider, saved)
}

func (l *legacyProto) SetSliderValue(slider SliderType, percent int) error {
	if !slider.valid() {
		return argErrf("unknown slider type 0x%02x", byte(slider))
	}
	if err := checkPercent("slider value", percent); err != nil {
		return err
	}
	return l.setSliderValue([]byte{0x02, byte(slider), byte(percent)}, slider)
}

func (l *legacyProto) SetActiveEQPreset(preset int) error {
	if err := checkPreset(preset); err != nil {
		return err
	}
	return l.setActiveEQPreset([]byte{0x01, byte(preset)}, preset)
}

// GetEQPresetName reads a preset's active name. The legacy firmware has no
// saved-name storage to query.
func (l *legacyProto) GetEQPresetName(preset int, saved bool) (string, error) {
	if err := checkPreset(preset); err != nil {
		return "", err
	}
	if saved {
		return "", notSupported("saved EQ preset names")
	}
	return l.getEQPresetName([]byte{0x00, byte(preset)}, preset)
}

func (l *legacyProto) SetEQPresetName(preset int, name string) error {
	return notSupported("set EQ preset name")
}

func (l *legacyProto) GetEQPresetGain(preset int) (EQPresetGain, error) {
	return EQPresetGain{}, notSupported("get EQ preset gain")
}

func (l *legacyProto) SetEQPresetGain(preset int, gain [NumEQBands]int) error {
	return notSupported("set EQ preset gain")
}

func (l *legacyProto) GetEQPresetFreqAndBW(preset, band int) (EQBandFreqAndBW, error) {
	return EQBandFreqAndBW{}, notSupported("get EQ frequency/bandwidth")
}

func (l *legacyProto) SetEQPresetFreqAndBW(preset, band, centerFreq, bandwidth int) error {
	return notSupported("set EQ frequency/bandwidth")
}

func (l *legacyProto) GetMicEQ(saved bool) (MicEQ, error) {
	return 0, notSupported("get mic EQ")
}

func (l *legacyProto) SetMicEQ(m MicEQ) error {
	return notSupported("set mic EQ")
}

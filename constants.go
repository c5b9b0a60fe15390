package ehfifty

// Command opcodes. The legacy firmware implements the subset marked below;
// the remaining opcodes exist only in the current revision.
const (
	opGetHeadsetStatus  byte = 0x54 // legacy + current
	opSaveValues        byte = 0x61 // legacy + current
	opSetSliderValue    byte = 0x62 // legacy + current
	opSetEQGain         byte = 0x63
	opSetNoiseGateMode  byte = 0x64 // legacy + current
	opSetActiveEQPreset byte = 0x67 // legacy + current
	opGetSliderValue    byte = 0x68 // legacy + current
	opGetEQGain         byte = 0x69
	opGetNoiseGateMode  byte = 0x6A // legacy + current
	opGetActiveEQPreset byte = 0x6C // legacy + current
	opSetEQPresetName   byte = 0x6D
	opGetEQPresetName   byte = 0x6E // legacy + current
	opSetEQFreqAndBW    byte = 0x6F
	opGetEQFreqAndBW    byte = 0x70
	opSetMicEQ          byte = 0x71
	opGetBalance        byte = 0x72 // legacy + current
	opSetDefaultBalance byte = 0x73 // legacy + current
	opSetAlertVolume    byte = 0x76 // legacy + current
	opGetDefaultBalance byte = 0x77 // legacy + current
	opGetAlertVolume    byte = 0x7A // legacy + current
	opGetMicEQ          byte = 0x7B
	opGetBatteryStatus  byte = 0x7C // legacy + current
)

// Response status codes.
const (
	statusNoResponse byte = 0x00 // current revision only
	statusError      byte = 0x01
	statusOK         byte = 0x02
)

// EQ preset limits.
const (
	// MinEQPreset and MaxEQPreset bound the EQ preset selector.
	MinEQPreset = 1
	MaxEQPreset = 3

	// NumEQBands is the number of bands per EQ preset.
	NumEQBands = 5

	// MinGain and MaxGain bound a band gain in dB.
	MinGain = -7
	MaxGain = 7

	// gainOffset maps a signed gain to its unsigned wire byte.
	gainOffset = 12

	// MinCenterFreq and MaxCenterFreq bound a band center frequency in Hz.
	MinCenterFreq = 80
	MaxCenterFreq = 15000

	// MinBandwidth and MaxBandwidth bound a band bandwidth, in units of
	// 1/4096 of the center frequency. Edge bands 1 and 5 are shelf
	// filters; their bandwidth is always zero.
	MinBandwidth = 410
	MaxBandwidth = 12288

	// MaxPresetNameLen is the longest preset name the device can echo
	// back: a name response carries the opcode, the preset, the name,
	// and a terminating zero within the 61-byte payload.
	MaxPresetNameLen = 58

	// MaxMicEQ bounds the opaque mic EQ preset value.
	MaxMicEQ = 2
)

// NoiseGateMode is a microphone noise gate mode.
type NoiseGateMode byte

// Noise gate modes.
const (
	NoiseGateStreaming  NoiseGateMode = 0x00
	NoiseGateNight      NoiseGateMode = 0x01
	NoiseGateHome       NoiseGateMode = 0x02
	NoiseGateTournament NoiseGateMode = 0x03
)

func (m NoiseGateMode) valid() bool {
	return m <= NoiseGateTournament
}

// String returns a human-readable mode name.
func (m NoiseGateMode) String() string {
	switch m {
	case NoiseGateStreaming:
		return "streaming"
	case NoiseGateNight:
		return "night"
	case NoiseGateHome:
		return "home"
	case NoiseGateTournament:
		return "tournament"
	default:
		return "unknown"
	}
}

// SliderType identifies one of the device's mix sliders.
type SliderType byte

// Slider types.
const (
	SliderMicMix   SliderType = 0x00 // stream port mic mix
	SliderChatMix  SliderType = 0x01 // stream port chat mix
	SliderGameMix  SliderType = 0x02 // stream port game mix
	SliderAuxMix   SliderType = 0x03 // stream port aux mix
	SliderMic      SliderType = 0x04
	SliderSideTone SliderType = 0x05
)

func (s SliderType) valid() bool {
	return s <= SliderSideTone
}

// String returns a human-readable slider name.
func (s SliderType) String() string {
	switch s {
	case SliderMicMix:
		return "mic-mix"
	case SliderChatMix:
		return "chat-mix"
	case SliderGameMix:
		return "game-mix"
	case SliderAuxMix:
		return "aux-mix"
	case SliderMic:
		return "mic"
	case SliderSideTone:
		return "side-tone"
	default:
		return "unknown"
	}
}

// MicEQ is a microphone EQ preset. The three values are opaque; their
// semantics are not known.
type MicEQ byte

func (m MicEQ) valid() bool {
	return m <= MaxMicEQ
}

// BatteryStatus is the headset battery status.
type BatteryStatus struct {
	IsCharging    bool
	ChargePercent int
}

// HeadsetStatus reports whether the headset is powered on and docked.
type HeadsetStatus struct {
	IsOn     bool
	IsDocked bool
}

// EQPresetGain holds the active and saved gains for the five bands of one
// EQ preset, in dB.
type EQPresetGain struct {
	Gain      [NumEQBands]int
	SavedGain [NumEQBands]int
}

// EQBandFreqAndBW holds the active and saved center frequency (Hz) and
// bandwidth (1/4096ths of center frequency) for one band of one EQ preset.
type EQBandFreqAndBW struct {
	CenterFreq      int
	SavedCenterFreq int
	Bandwidth       int
	SavedBandwidth  int
}

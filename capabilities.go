package ehfifty

// Exchanger performs one request/response round trip on the wire. It is
// implemented by transport.Session.
type Exchanger interface {
	Exchange(req []byte) ([]byte, error)
}

// Capabilities is the typed capability set of the device. Both protocol
// revisions implement it; operations a revision lacks return
// pkg.ErrNotSupported.
//
// Every operation is a single stateless request/response round trip.
// "Saved" values live in the device's non-volatile memory and change only
// when SaveValues commits the active configuration.
type Capabilities interface {
	// GetHeadsetStatus reports whether the headset is on and docked.
	GetHeadsetStatus() (HeadsetStatus, error)

	// GetBatteryStatus returns the headset battery status.
	GetBatteryStatus() (BatteryStatus, error)

	// GetBalance returns the balance: 0 is full game audio, 255 is full
	// chat audio. Equal to the default balance until the headset buttons
	// adjust it.
	GetBalance() (int, error)

	// GetDefaultBalance returns the active default balance, or the saved
	// one if saved is true.
	GetDefaultBalance(saved bool) (int, error)

	// SetDefaultBalance sets the default balance.
	SetDefaultBalance(balance int) error

	// GetAlertVolume returns the active alert volume percentage, or the
	// saved one if saved is true.
	GetAlertVolume(saved bool) (int, error)

	// SetAlertVolume sets the alert volume percentage.
	SetAlertVolume(percent int) error

	// GetNoiseGateMode returns the active noise gate mode, or the saved
	// one if saved is true.
	GetNoiseGateMode(saved bool) (NoiseGateMode, error)

	// SetNoiseGateMode sets the noise gate mode.
	SetNoiseGateMode(mode NoiseGateMode) error

	// GetSliderValue returns a slider's active percentage, or the saved
	// one if saved is true.
	GetSliderValue(slider SliderType, saved bool) (int, error)

	// SetSliderValue sets a slider percentage.
	SetSliderValue(slider SliderType, percent int) error

	// GetActiveEQPreset returns the active EQ preset.
	GetActiveEQPreset() (int, error)

	// SetActiveEQPreset sets the active EQ preset.
	SetActiveEQPreset(preset int) error

	// GetEQPresetName returns the active name of an EQ preset, or the
	// saved one if saved is true.
	GetEQPresetName(preset int, saved bool) (string, error)

	// SetEQPresetName names an EQ preset. Names are limited to
	// MaxPresetNameLen bytes and may not contain zero bytes.
	SetEQPresetName(preset int, name string) error

	// GetEQPresetGain returns the active and saved band gains of an EQ
	// preset.
	GetEQPresetGain(preset int) (EQPresetGain, error)

	// SetEQPresetGain sets the band gains of an EQ preset, in dB.
	SetEQPresetGain(preset int, gain [NumEQBands]int) error

	// GetEQPresetFreqAndBW returns the active and saved center frequency
	// and bandwidth of one band of an EQ preset.
	GetEQPresetFreqAndBW(preset, band int) (EQBandFreqAndBW, error)

	// SetEQPresetFreqAndBW sets the center frequency and bandwidth of
	// one band of an EQ preset. Edge bands 1 and 5 only accept a
	// bandwidth of zero.
	SetEQPresetFreqAndBW(preset, band, centerFreq, bandwidth int) error

	// GetMicEQ returns the active mic EQ preset, or the saved one if
	// saved is true.
	GetMicEQ(saved bool) (MicEQ, error)

	// SetMicEQ sets the mic EQ preset.
	SetMicEQ(m MicEQ) error

	// SaveValues commits all active values as the new saved defaults.
	// The device can take over two seconds to respond.
	SaveValues() error
}

// engine implements Capabilities with current-revision semantics. It holds
// a non-owning reference to the exchanger and no state of its own.
type engine struct {
	x   Exchanger
	rev Revision
}

// newCapabilities returns the capability set for the given revision.
func newCapabilities(x Exchanger, rev Revision) Capabilities {
	e := &engine{x: x, rev: rev}
	if rev == RevisionLegacy {
		return &legacyProto{engine: e}
	}
	return e
}

// transact frames op and payload per the revision, performs the exchange,
// and returns the validated response payload.
func (e *engine) transact(op byte, payload []byte) ([]byte, error) {
	req, err := encodeFrame(e.rev, op, payload)
	if err != nil {
		return nil, err
	}
	resp, err := e.x.Exchange(req)
	if err != nil {
		return nil, err
	}
	return decodeFrame(e.rev, resp)
}

// checkEcho verifies that a response payload echoes the request opcode
// followed by the given parameter bytes.
func checkEcho(what string, resp []byte, op byte, params ...byte) error {
	if len(resp) < 1+len(params) {
		return protoErrf("%s: short payload (%d bytes)", what, len(resp))
	}
	if resp[0] != op {
		return protoErrf("%s: echoed opcode 0x%02x, want 0x%02x", what, resp[0], op)
	}
	for i, p := range params {
		if resp[1+i] != p {
			return protoErrf("%s: mismatched echo byte %d: 0x%02x, want 0x%02x",
				what, 1+i, resp[1+i], p)
		}
	}
	return nil
}

// flagByte encodes a saved-variant request flag.
func flagByte(saved bool) byte {
	if saved {
		return 1
	}
	return 0
}

// savedIndex selects the active or saved position of a value pair.
func savedIndex(saved bool) int {
	if saved {
		return 1
	}
	return 0
}

func (e *engine) GetHeadsetStatus() (HeadsetStatus, error) {
	resp, err := e.transact(opGetHeadsetStatus, nil)
	if err != nil {
		return HeadsetStatus{}, err
	}
	if len(resp) < 1 {
		return HeadsetStatus{}, protoErrf("headset status: empty payload")
	}
	return HeadsetStatus{
		IsDocked: resp[0]&0x01 != 0,
		IsOn:     resp[0]&0x02 != 0,
	}, nil
}

func (e *engine) GetBatteryStatus() (BatteryStatus, error) {
	resp, err := e.transact(opGetBatteryStatus, nil)
	if err != nil {
		return BatteryStatus{}, err
	}
	if len(resp) < 1 {
		return BatteryStatus{}, protoErrf("battery status: empty payload")
	}
	return BatteryStatus{
		IsCharging:    resp[0]&0x80 != 0,
		ChargePercent: int(resp[0] & 0x7F),
	}, nil
}

func (e *engine) GetBalance() (int, error) {
	resp, err := e.transact(opGetBalance, nil)
	if err != nil {
		return 0, err
	}
	if len(resp) < 1 {
		return 0, protoErrf("balance: empty payload")
	}
	return int(resp[0]), nil
}

func (e *engine) GetDefaultBalance(saved bool) (int, error) {
	return e.getDefaultBalance([]byte{flagByte(saved)})
}

func (e *engine) getDefaultBalance(payload []byte) (int, error) {
	resp, err := e.transact(opGetDefaultBalance, payload)
	if err != nil {
		return 0, err
	}
	if len(resp) < 1 {
		return 0, protoErrf("default balance: empty payload")
	}
	return int(resp[0]), nil
}

func (e *engine) SetDefaultBalance(balance int) error {
	if err := checkBalance(balance); err != nil {
		return err
	}
	return e.setDefaultBalance([]byte{byte(balance)})
}

func (e *engine) setDefaultBalance(payload []byte) error {
	resp, err := e.transact(opSetDefaultBalance, payload)
	if err != nil {
		return err
	}
	return checkEcho("set default balance", resp, opSetDefaultBalance)
}

func (e *engine) GetAlertVolume(saved bool) (int, error) {
	return e.getAlertVolume([]byte{flagByte(saved)})
}

func (e *engine) getAlertVolume(payload []byte) (int, error) {
	resp, err := e.transact(opGetAlertVolume, payload)
	if err != nil {
		return 0, err
	}
	if len(resp) < 1 {
		return 0, protoErrf("alert volume: empty payload")
	}
	if resp[0] > 100 {
		return 0, protoErrf("alert volume: %d%% out of range", resp[0])
	}
	return int(resp[0]), nil
}

func (e *engine) SetAlertVolume(percent int) error {
	if err := checkPercent("alert volume", percent); err != nil {
		return err
	}
	return e.setAlertVolume([]byte{byte(percent)})
}

func (e *engine) setAlertVolume(payload []byte) error {
	resp, err := e.transact(opSetAlertVolume, payload)
	if err != nil {
		return err
	}
	return checkEcho("set alert volume", resp, opSetAlertVolume)
}

func (e *engine) GetNoiseGateMode(saved bool) (NoiseGateMode, error) {
	resp, err := e.transact(opGetNoiseGateMode, nil)
	if err != nil {
		return 0, err
	}
	if len(resp) < 3 {
		return 0, protoErrf("noise gate mode: short payload (%d bytes)", len(resp))
	}
	if resp[0] != opGetNoiseGateMode {
		return 0, protoErrf("noise gate mode: echoed opcode 0x%02x", resp[0])
	}
	mode := NoiseGateMode(resp[1+savedIndex(saved)])
	if !mode.valid() {
		return 0, protoErrf("noise gate mode: unknown mode 0x%02x", byte(mode))
	}
	return mode, nil
}

func (e *engine) SetNoiseGateMode(mode NoiseGateMode) error {
	if !mode.valid() {
		return argErrf("unknown noise gate mode 0x%02x", byte(mode))
	}
	return e.setNoiseGateMode([]byte{byte(mode)}, mode)
}

func (e *engine) setNoiseGateMode(payload []byte, mode NoiseGateMode) error {
	resp, err := e.transact(opSetNoiseGateMode, payload)
	if err != nil {
		return err
	}
	// This opcode echoes the mode, not itself.
	if len(resp) < 1 {
		return protoErrf("set noise gate mode: empty payload")
	}
	if resp[0] != byte(mode) {
		return protoErrf("set noise gate mode: mismatched echo 0x%02x, want 0x%02x",
			resp[0], byte(mode))
	}
	return nil
}

func (e *engine) GetSliderValue(slider SliderType, saved bool) (int, error) {
	if !slider.valid() {
		return 0, argErrf("unknown slider type 0x%02x", byte(slider))
	}
	return e.getSliderValue([]byte{byte(slider)}, slider, saved)
}

func (e *engine) getSliderValue(payload []byte, slider SliderType, saved bool) (int, error) {
	resp, err := e.transact(opGetSliderValue, payload)
	if err != nil {
		return 0, err
	}
	if err := checkEcho("slider value", resp, opGetSliderValue, byte(slider)); err != nil {
		return 0, err
	}
	if len(resp) < 4 {
		return 0, protoErrf("slider value: short payload (%d bytes)", len(resp))
	}
	value := resp[2+savedIndex(saved)]
	if value > 100 {
		return 0, protoErrf("slider value: %d%% out of range", value)
	}
	return int(value), nil
}

func (e *engine) SetSliderValue(slider SliderType, percent int) error {
	if !slider.valid() {
		return argErrf("unknown slider type 0x%02x", byte(slider))
	}
	if err := checkPercent("slider value", percent); err != nil {
		return err
	}
	return e.setSliderValue([]byte{byte(slider), byte(percent)}, slider)
}

func (e *engine) setSliderValue(payload []byte, slider SliderType) error {
	resp, err := e.transact(opSetSliderValue, payload)
	if err != nil {
		return err
	}
	return checkEcho("set slider value", resp, opSetSliderValue, byte(slider))
}

func (e *engine) GetActiveEQPreset() (int, error) {
	resp, err := e.transact(opGetActiveEQPreset, nil)
	if err != nil {
		return 0, err
	}
	if len(resp) < 1 {
		return 0, protoErrf("active EQ preset: empty payload")
	}
	preset := int(resp[0])
	if err := checkPreset(preset); err != nil {
		return 0, protoErrf("active EQ preset: unknown preset %d", preset)
	}
	return preset, nil
}

func (e *engine) SetActiveEQPreset(preset int) error {
	if err := checkPreset(preset); err != nil {
		return err
	}
	return e.setActiveEQPreset([]byte{byte(preset)}, preset)
}

func (e *engine) setActiveEQPreset(payload []byte, preset int) error {
	resp, err := e.transact(opSetActiveEQPreset, payload)
	if err != nil {
		return err
	}
	return checkEcho("set active EQ preset", resp, opSetActiveEQPreset, byte(preset))
}

func (e *engine) GetEQPresetName(preset int, saved bool) (string, error) {
	if err := checkPreset(preset); err != nil {
		return "", err
	}
	return e.getEQPresetName([]byte{flagByte(saved), byte(preset)}, preset)
}

func (e *engine) getEQPresetName(payload []byte, preset int) (string, error) {
	resp, err := e.transact(opGetEQPresetName, payload)
	if err != nil {
		return "", err
	}
	if err := checkEcho("EQ preset name", resp, opGetEQPresetName, byte(preset)); err != nil {
		return "", err
	}
	return decodeName(resp[2:]), nil
}

func (e *engine) SetEQPresetName(preset int, name string) error {
	if err := checkPreset(preset); err != nil {
		return err
	}
	encoded, err := encodeName(name)
	if err != nil {
		return err
	}
	payload := append([]byte{byte(preset)}, encoded...)
	resp, err := e.transact(opSetEQPresetName, payload)
	if err != nil {
		return err
	}
	return checkEcho("set EQ preset name", resp, opSetEQPresetName, byte(preset))
}

func (e *engine) GetEQPresetGain(preset int) (EQPresetGain, error) {
	if err := checkPreset(preset); err != nil {
		return EQPresetGain{}, err
	}
	resp, err := e.transact(opGetEQGain, []byte{byte(preset)})
	if err != nil {
		return EQPresetGain{}, err
	}
	if err := checkEcho("EQ preset gain", resp, opGetEQGain, byte(preset)); err != nil {
		return EQPresetGain{}, err
	}
	if len(resp) < 2+2*NumEQBands {
		return EQPresetGain{}, protoErrf("EQ preset gain: short payload (%d bytes)", len(resp))
	}
	var out EQPresetGain
	for i := 0; i < NumEQBands; i++ {
		if out.Gain[i], err = decodeGain(resp[2+i]); err != nil {
			return EQPresetGain{}, err
		}
		if out.SavedGain[i], err = decodeGain(resp[2+NumEQBands+i]); err != nil {
			return EQPresetGain{}, err
		}
	}
	return out, nil
}

func (e *engine) SetEQPresetGain(preset int, gain [NumEQBands]int) error {
	if err := checkPreset(preset); err != nil {
		return err
	}
	payload := make([]byte, 0, 1+NumEQBands)
	payload = append(payload, byte(preset))
	for _, g := range gain {
		wire, err := encodeGain(g)
		if err != nil {
			return err
		}
		payload = append(payload, wire)
	}
	resp, err := e.transact(opSetEQGain, payload)
	if err != nil {
		return err
	}
	return checkEcho("set EQ preset gain", resp, opSetEQGain, byte(preset))
}

func (e *engine) GetEQPresetFreqAndBW(preset, band int) (EQBandFreqAndBW, error) {
	if err := checkPreset(preset); err != nil {
		return EQBandFreqAndBW{}, err
	}
	if err := checkBand(band); err != nil {
		return EQBandFreqAndBW{}, err
	}
	resp, err := e.transact(opGetEQFreqAndBW, []byte{byte(preset), byte(band)})
	if err != nil {
		return EQBandFreqAndBW{}, err
	}
	if err := checkEcho("EQ freq/bandwidth", resp, opGetEQFreqAndBW, byte(preset), byte(band)); err != nil {
		return EQBandFreqAndBW{}, err
	}
	if len(resp) < 3+8 {
		return EQBandFreqAndBW{}, protoErrf("EQ freq/bandwidth: short payload (%d bytes)", len(resp))
	}
	// Fixed wire order: bandwidth active, bandwidth saved, frequency
	// active, frequency saved.
	return EQBandFreqAndBW{
		Bandwidth:       getUint16(resp[3:]),
		SavedBandwidth:  getUint16(resp[5:]),
		CenterFreq:      getUint16(resp[7:]),
		SavedCenterFreq: getUint16(resp[9:]),
	}, nil
}

func (e *engine) SetEQPresetFreqAndBW(preset, band, centerFreq, bandwidth int) error {
	if err := checkPreset(preset); err != nil {
		return err
	}
	if err := checkBand(band); err != nil {
		return err
	}
	if err := checkFreqAndBW(band, centerFreq, bandwidth); err != nil {
		return err
	}
	payload := []byte{byte(preset), byte(band)}
	payload = putUint16(payload, bandwidth)
	payload = putUint16(payload, centerFreq)
	resp, err := e.transact(opSetEQFreqAndBW, payload)
	if err != nil {
		return err
	}
	return checkEcho("set EQ freq/bandwidth", resp, opSetEQFreqAndBW, byte(preset), byte(band))
}

func (e *engine) GetMicEQ(saved bool) (MicEQ, error) {
	resp, err := e.transact(opGetMicEQ, nil)
	if err != nil {
		return 0, err
	}
	if len(resp) < 3 {
		return 0, protoErrf("mic EQ: short payload (%d bytes)", len(resp))
	}
	if resp[0] != opGetMicEQ {
		return 0, protoErrf("mic EQ: echoed opcode 0x%02x", resp[0])
	}
	m := MicEQ(resp[1+savedIndex(saved)])
	if !m.valid() {
		return 0, protoErrf("mic EQ: unknown preset 0x%02x", byte(m))
	}
	return m, nil
}

func (e *engine) SetMicEQ(m MicEQ) error {
	if !m.valid() {
		return argErrf("mic EQ preset must be 0 to %d, got %d", MaxMicEQ, m)
	}
	resp, err := e.transact(opSetMicEQ, []byte{byte(m)})
	if err != nil {
		return err
	}
	return checkEcho("set mic EQ", resp, opSetMicEQ, byte(m))
}

func (e *engine) SaveValues() error {
	resp, err := e.transact(opSaveValues, nil)
	if err != nil {
		return err
	}
	if err := checkEcho("save values", resp, opSaveValues); err != nil {
		return err
	}
	if len(resp) < 2 || resp[1] != 0x00 {
		return protoErrf("save values: device reported failure")
	}
	return nil
}

package ehfifty

import (
	"bytes"
	"encoding/binary"
)

// encodeGain maps a band gain in dB to its unsigned wire byte.
func encodeGain(gain int) (byte, error) {
	if gain < MinGain || gain > MaxGain {
		return 0, argErrf("gain must be %d to %d dB, got %d", MinGain, MaxGain, gain)
	}
	return byte(gain + gainOffset), nil
}

// decodeGain maps an unsigned wire byte back to a band gain in dB.
func decodeGain(wire byte) (int, error) {
	gain := int(wire) - gainOffset
	if gain < MinGain || gain > MaxGain {
		return 0, protoErrf("gain byte 0x%02x out of range", wire)
	}
	return gain, nil
}

// encodeName produces the wire form of a preset name: the text followed by
// an explicit terminating zero byte.
func encodeName(name string) ([]byte, error) {
	if len(name) > MaxPresetNameLen {
		return nil, argErrf("preset name exceeds %d bytes", MaxPresetNameLen)
	}
	if bytes.IndexByte([]byte(name), 0) >= 0 {
		return nil, argErrf("preset name contains a zero byte")
	}
	buf := make([]byte, 0, len(name)+1)
	buf = append(buf, name...)
	buf = append(buf, 0)
	return buf, nil
}

// decodeName extracts a preset name from payload bytes: everything before
// the first zero byte. Padding past the terminator is undefined and ignored.
func decodeName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// putUint16 appends v in the protocol's 16-bit little-endian encoding.
func putUint16(b []byte, v int) []byte {
	return binary.LittleEndian.AppendUint16(b, uint16(v))
}

// getUint16 reads a 16-bit little-endian value.
func getUint16(b []byte) int {
	return int(binary.LittleEndian.Uint16(b))
}

// checkPercent validates a 0-100 percentage argument.
func checkPercent(what string, v int) error {
	if v < 0 || v > 100 {
		return argErrf("%s must be 0 to 100, got %d", what, v)
	}
	return nil
}

// checkPreset validates an EQ preset selector.
func checkPreset(preset int) error {
	if preset < MinEQPreset || preset > MaxEQPreset {
		return argErrf("EQ preset must be %d to %d, got %d", MinEQPreset, MaxEQPreset, preset)
	}
	return nil
}

// checkBand validates an EQ band number.
func checkBand(band int) error {
	if band < 1 || band > NumEQBands {
		return argErrf("EQ band must be 1 to %d, got %d", NumEQBands, band)
	}
	return nil
}

// checkBalance validates a balance argument: 0 is full game audio, 255 is
// full chat audio.
func checkBalance(balance int) error {
	if balance < 0 || balance > 255 {
		return argErrf("balance must be 0 to 255, got %d", balance)
	}
	return nil
}

// checkFreqAndBW validates a band center frequency and bandwidth. Edge
// bands are shelf filters and only accept a bandwidth of zero.
func checkFreqAndBW(band, centerFreq, bandwidth int) error {
	if centerFreq < MinCenterFreq || centerFreq > MaxCenterFreq {
		return argErrf("center frequency must be %d to %d Hz, got %d",
			MinCenterFreq, MaxCenterFreq, centerFreq)
	}
	if band == 1 || band == NumEQBands {
		if bandwidth != 0 {
			return argErrf("band %d bandwidth must be 0, got %d", band, bandwidth)
		}
		return nil
	}
	if bandwidth < MinBandwidth || bandwidth > MaxBandwidth {
		return argErrf("bandwidth must be %d to %d, got %d",
			MinBandwidth, MaxBandwidth, bandwidth)
	}
	return nil
}

// Package ehfifty configures Astro A50 gen 4 devices over their proprietary
// USB protocol.
//
// The device exposes equalizer presets, audio balance, slider mix levels,
// noise gate modes, and battery/headset status through fixed 64-byte
// request/response frames on a vendor-specific bulk interface. This package
// frames outgoing commands, validates and decodes responses, and surfaces
// one strongly-typed operation per device capability.
//
// # Usage
//
//	dev, err := ehfifty.Open()
//	if err != nil {
//		// handle ehfifty.ErrDeviceNotFound etc.
//	}
//	defer dev.Close()
//
//	battery, err := dev.GetBatteryStatus()
//
// Most settings have an active (volatile) and a saved (non-volatile) value.
// Setters change the active value only; [Capabilities.SaveValues] commits
// all active values as the new saved defaults.
//
// # Layers
//
//   - Package transport owns the claimed USB interface and performs one
//     bulk write plus one bulk read per exchange, with timeout and
//     reset-on-timeout handling.
//   - This package is the protocol engine on top: stateless between calls,
//     holding only a reference to the transport session.
//
// # Errors
//
// Failures are classified by sentinel: [ErrDeviceNotFound] (device absent),
// [ErrTimeout] (device unresponsive; reset already performed),
// [ErrProtocol] (device spoke nonsense), [ErrInvalidArgument] (caller
// passed a bad value; nothing was transmitted), and [ErrNotSupported]
// (operation absent from the selected protocol revision). Match them with
// errors.Is.
package ehfifty

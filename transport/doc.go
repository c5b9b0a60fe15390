// Package transport owns the exchange channel to the headset.
//
// A [Session] performs one bulk OUT write followed by one bulk IN read per
// exchange, under a fixed deadline. The USB specifics (device lookup by
// vendor/product ID, kernel driver detach, interface claim, endpoint I/O,
// device reset) are provided by github.com/google/gousb behind the [Pipe]
// interface, so tests and alternate backends can substitute their own.
//
// The device protocol is strictly half-duplex: one outstanding exchange at a
// time. A Session does not serialize concurrent callers; hosts that share a
// session across goroutines must serialize access themselves.
package transport

// Package pkg provides shared utilities for the eh-fifty driver: the error
// taxonomy used across the transport and protocol layers, and structured
// logging with per-component filtering.
package pkg

package transport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdryer/eh-fifty/pkg"
)

// mockPipe implements Pipe for testing.
type mockPipe struct {
	writeErr error
	readErr  error
	resetErr error

	response []byte

	writes [][]byte
	reads  int
	resets int
	closes int
}

func (m *mockPipe) Write(ctx context.Context, p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	m.writes = append(m.writes, buf)
	return len(p), nil
}

func (m *mockPipe) Read(ctx context.Context, p []byte) (int, error) {
	m.reads++
	if m.readErr != nil {
		return 0, m.readErr
	}
	return copy(p, m.response), nil
}

func (m *mockPipe) Reset() error {
	m.resets++
	return m.resetErr
}

func (m *mockPipe) Close() error {
	m.closes++
	return nil
}

func TestExchange(t *testing.T) {
	pipe := &mockPipe{response: make([]byte, FrameSize)}
	pipe.response[0] = 0x02
	s := NewSession(pipe)

	req := []byte{0x02, 0x54}
	resp, err := s.Exchange(req)
	require.NoError(t, err)

	// One write followed by one full-frame read, no reset.
	require.Len(t, pipe.writes, 1)
	assert.Equal(t, req, pipe.writes[0])
	assert.Equal(t, 1, pipe.reads)
	assert.Equal(t, 0, pipe.resets)
	assert.Len(t, resp, FrameSize)
}

func TestExchangeRequestTooLong(t *testing.T) {
	pipe := &mockPipe{}
	s := NewSession(pipe)

	_, err := s.Exchange(make([]byte, FrameSize+1))
	require.ErrorIs(t, err, pkg.ErrFrameTooLong)

	// Rejected before any transfer.
	assert.Empty(t, pipe.writes)
	assert.Equal(t, 0, pipe.reads)
}

func TestExchangeReadTimeoutResetsDevice(t *testing.T) {
	pipe := &mockPipe{readErr: context.DeadlineExceeded}
	s := NewSession(pipe, WithTimeout(10*time.Millisecond))

	_, err := s.Exchange([]byte{0x02, 0x54})
	require.ErrorIs(t, err, pkg.ErrTimeout)
	assert.Equal(t, 1, pipe.resets)

	// The session stays open; a later exchange still works.
	pipe.readErr = nil
	pipe.response = []byte{0x02}
	_, err = s.Exchange([]byte{0x02, 0x54})
	require.NoError(t, err)
}

func TestExchangeReadTimeoutResetFailure(t *testing.T) {
	pipe := &mockPipe{
		readErr:  context.DeadlineExceeded,
		resetErr: errors.New("reset failed"),
	}
	s := NewSession(pipe)

	// The timeout is surfaced even when the reset itself fails.
	_, err := s.Exchange([]byte{0x02, 0x54})
	require.ErrorIs(t, err, pkg.ErrTimeout)
	assert.Equal(t, 1, pipe.resets)
}

func TestExchangeWriteTimeoutDoesNotReset(t *testing.T) {
	pipe := &mockPipe{writeErr: context.DeadlineExceeded}
	s := NewSession(pipe)

	_, err := s.Exchange([]byte{0x02, 0x54})
	require.ErrorIs(t, err, pkg.ErrTimeout)
	assert.Equal(t, 0, pipe.resets)
}

func TestExchangeReadErrorPassesThrough(t *testing.T) {
	readErr := errors.New("endpoint stalled")
	pipe := &mockPipe{readErr: readErr}
	s := NewSession(pipe)

	_, err := s.Exchange([]byte{0x02, 0x54})
	require.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, pkg.ErrTimeout)
	assert.Equal(t, 0, pipe.resets)
}

func TestCloseIdempotent(t *testing.T) {
	pipe := &mockPipe{}
	s := NewSession(pipe)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, pipe.closes)

	_, err := s.Exchange([]byte{0x02, 0x54})
	assert.ErrorIs(t, err, pkg.ErrClosed)
}

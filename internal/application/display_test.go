package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"vision-inspector/internal/domain/port"
)

type errDisplay struct {
	shows    int
	closes   int
	showErr  error
	closeErr error
}

func (d *errDisplay) Show(frame port.Frame) error {
	d.shows++
	return d.showErr
}

func (d *errDisplay) Poll() bool { return false }

func (d *errDisplay) Close() error {
	d.closes++
	return d.closeErr
}

func TestMultiDisplay_ShowFansOut(t *testing.T) {
	primary := &fakeDisplay{}
	extra := &errDisplay{}

	multi := NewMultiDisplay(primary, extra)

	require.NoError(t, multi.Show(&fakeFrame{w: 640, h: 640}))
	require.Equal(t, 1, primary.shows)
	require.Equal(t, 1, extra.shows)
}

func TestMultiDisplay_SecondaryFailureDoesNotBlockPrimary(t *testing.T) {
	primary := &fakeDisplay{}
	extra := &errDisplay{showErr: errors.New("viewer gone")}

	multi := NewMultiDisplay(primary, extra)

	require.NoError(t, multi.Show(&fakeFrame{w: 640, h: 640}))
	require.Equal(t, 1, primary.shows)
}

func TestMultiDisplay_PollDelegatesToPrimary(t *testing.T) {
	primary := &fakeDisplay{stopAfter: 1}
	extra := &errDisplay{}

	multi := NewMultiDisplay(primary, extra)

	require.False(t, multi.Poll())
	require.NoError(t, multi.Show(&fakeFrame{w: 640, h: 640}))
	require.True(t, multi.Poll())
}

func TestMultiDisplay_CloseClosesAll(t *testing.T) {
	primary := &fakeDisplay{}
	extra := &errDisplay{closeErr: errors.New("already closed")}

	multi := NewMultiDisplay(primary, extra)

	require.NoError(t, multi.Close())
	require.Equal(t, 1, primary.closes)
	require.Equal(t, 1, extra.closes)
}

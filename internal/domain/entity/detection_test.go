package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxRescale_FullWorkingFrame(t *testing.T) {
	b := Box{X1: 0, Y1: 0, X2: 640, Y2: 640}
	scaled := b.Rescale(640, 640, 1980, 1080)
	require.Equal(t, Box{X1: 0, Y1: 0, X2: 1980, Y2: 1080}, scaled)
}

func TestBoxRescale_TruncatesToPixels(t *testing.T) {
	b := Box{X1: 10, Y1: 10, X2: 100, Y2: 100}
	scaled := b.Rescale(640, 640, 1000, 500)
	// 10*1.5625=15.625, 100*1.5625=156.25, 10*0.78125=7.8125, 100*0.78125=78.125
	require.Equal(t, Box{X1: 15, Y1: 7, X2: 156, Y2: 78}, scaled)
}

func TestBoxRescale_DoesNotClamp(t *testing.T) {
	// Рамка за границей рабочего кадра остаётся за границей исходного.
	b := Box{X1: -16, Y1: 0, X2: 656, Y2: 640}
	scaled := b.Rescale(640, 640, 640, 640)
	require.Equal(t, Box{X1: -16, Y1: 0, X2: 656, Y2: 640}, scaled)
}

func TestBoxWidthHeight(t *testing.T) {
	b := Box{X1: 10, Y1: 20, X2: 40, Y2: 80}
	require.Equal(t, 30, b.Width())
	require.Equal(t, 60, b.Height())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultFlaggedClasses(t *testing.T) {
	flagged := DefaultFlaggedClasses()

	require.True(t, flagged.Contains(LabelPedra))
	require.True(t, flagged.Contains(LabelPedraNaBatata))
	require.True(t, flagged.Contains(LabelBatataComPedra))
	require.False(t, flagged.Contains(LabelOK))
	require.False(t, flagged.Contains(LabelPodre))
}

func TestNewClassSet(t *testing.T) {
	set := NewClassSet("A", "B")
	require.True(t, set.Contains("A"))
	require.True(t, set.Contains("B"))
	require.False(t, set.Contains("C"))
}

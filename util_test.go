package heapless_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearthware/heapless"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, heapless.CheckPow2(uint(1), "value"))
	require.NoError(t, heapless.CheckPow2(uint(2), "value"))
	require.NoError(t, heapless.CheckPow2(uint(64), "value"))

	err := heapless.CheckPow2(uint(3), "value")
	require.ErrorIs(t, err, heapless.PowerOfTwoError)

	err = heapless.CheckPow2(uint(48), "value")
	require.ErrorIs(t, err, heapless.PowerOfTwoError)
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, heapless.AlignUp(0, 16))
	require.Equal(t, 16, heapless.AlignUp(1, 16))
	require.Equal(t, 16, heapless.AlignUp(16, 16))
	require.Equal(t, 32, heapless.AlignUp(17, 16))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, 0, heapless.AlignDown(15, 16))
	require.Equal(t, 16, heapless.AlignDown(16, 16))
	require.Equal(t, 16, heapless.AlignDown(31, 16))
}

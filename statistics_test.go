package heapless_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearthware/heapless"
)

func TestStatisticsAdd(t *testing.T) {
	var total heapless.Statistics
	total.Clear()

	total.AddStatistics(&heapless.Statistics{
		BlockCount:    4,
		AcquiredCount: 2,
		BlockBytes:    512,
		AcquiredBytes: 256,
	})
	total.AddStatistics(&heapless.Statistics{
		BlockCount:    8,
		AcquiredCount: 1,
		BlockBytes:    64,
		AcquiredBytes: 8,
	})

	require.Equal(t, heapless.Statistics{
		BlockCount:    12,
		AcquiredCount: 3,
		BlockBytes:    576,
		AcquiredBytes: 264,
	}, total)
}

func TestDetailedStatisticsFreeRuns(t *testing.T) {
	var stats heapless.DetailedStatistics
	stats.Clear()
	require.Equal(t, math.MaxInt, stats.FreeRunBlocksMin)
	require.Equal(t, 0, stats.FreeRunBlocksMax)

	stats.AddFreeRun(3)
	stats.AddFreeRun(1)
	stats.AddFreeRun(7)

	require.Equal(t, 3, stats.FreeRunCount)
	require.Equal(t, 1, stats.FreeRunBlocksMin)
	require.Equal(t, 7, stats.FreeRunBlocksMax)
}

func TestDetailedStatisticsAdd(t *testing.T) {
	var first heapless.DetailedStatistics
	first.Clear()
	first.AddFreeRun(2)
	first.Statistics.BlockCount = 4

	var second heapless.DetailedStatistics
	second.Clear()
	second.AddFreeRun(5)
	second.AddFreeRun(1)
	second.Statistics.BlockCount = 8

	first.AddDetailedStatistics(&second)

	require.Equal(t, 12, first.BlockCount)
	require.Equal(t, 3, first.FreeRunCount)
	require.Equal(t, 1, first.FreeRunBlocksMin)
	require.Equal(t, 5, first.FreeRunBlocksMax)
}

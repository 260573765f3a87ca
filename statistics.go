package heapless

import "math"

type Statistics struct {
	BlockCount    int
	AcquiredCount int
	BlockBytes    int
	AcquiredBytes int
}

func (s *Statistics) Clear() {
	s.BlockCount = 0
	s.AcquiredCount = 0
	s.BlockBytes = 0
	s.AcquiredBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BlockCount += other.BlockCount
	s.AcquiredCount += other.AcquiredCount
	s.BlockBytes += other.BlockBytes
	s.AcquiredBytes += other.AcquiredBytes
}

// DetailedStatistics extends Statistics with data about runs of contiguous
// free blocks. With fixed-size blocks, the length of the longest free run is
// the largest contiguous region a caller could map over several neighboring
// acquisitions, so it is the fragmentation signal worth tracking.
type DetailedStatistics struct {
	Statistics
	FreeRunCount     int
	FreeRunBlocksMin int
	FreeRunBlocksMax int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.FreeRunCount = 0
	s.FreeRunBlocksMin = math.MaxInt
	s.FreeRunBlocksMax = 0
}

func (s *DetailedStatistics) AddFreeRun(blocks int) {
	s.FreeRunCount++

	if blocks < s.FreeRunBlocksMin {
		s.FreeRunBlocksMin = blocks
	}

	if blocks > s.FreeRunBlocksMax {
		s.FreeRunBlocksMax = blocks
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.FreeRunCount += other.FreeRunCount

	if other.FreeRunBlocksMin < s.FreeRunBlocksMin {
		s.FreeRunBlocksMin = other.FreeRunBlocksMin
	}

	if other.FreeRunBlocksMax > s.FreeRunBlocksMax {
		s.FreeRunBlocksMax = other.FreeRunBlocksMax
	}
}

package blockpool

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"

	"github.com/hearthware/heapless"
)

// CreateInfo contains the fixed geometry of a Pool, plus optional consumer
// hooks. It is consumed by New and not retained.
type CreateInfo struct {
	// BlockCount is the number of blocks in the pool. It must be at least 1.
	BlockCount int
	// BlockSize is the size in bytes of each block. It must be at least 1.
	BlockSize int
	// BlockAlignment, when nonzero, must be a power of two. BlockSize is
	// rounded up to the next multiple of it, so that block start offsets
	// within the pool's storage are all BlockAlignment-aligned.
	BlockAlignment uint
	// Callbacks optionally receives a notification after every successful
	// Acquire and Release.
	Callbacks *CallbackOptions
}

type blockInfo struct {
	sequence uint64
	userData any
}

// Pool hands out fixed-size blocks of bytes from a single backing allocation
// made at construction. Acquire always selects the lowest-index free block,
// and Release zeroes a block before returning it to the pool, so a freshly
// acquired block always reads as all zeroes.
//
// The caller of Acquire has exclusive use of the returned block view until it
// passes the block's index to Release. Writing through a view after releasing
// its index is a caller bug; build with the debug_heapless tag to make
// Validate panic on the stale bytes such a write leaves behind.
//
// Pool does not synchronize internally.
type Pool struct {
	blockSize int
	storage   []byte
	used      []bool
	available int

	// sequence numbers every successful Acquire so that diagnostics can tell
	// apart reuses of the same index
	sequence    uint64
	outstanding *swiss.Map[int, blockInfo]
	callbacks   poolCallbacks
}

var _ heapless.Validatable = &Pool{}

// New creates a Pool with all info.BlockCount blocks free and zeroed.
func New(info CreateInfo) (*Pool, error) {
	if info.BlockCount < 1 {
		return nil, errors.Newf("info.BlockCount is %d, but a pool requires at least 1 block", info.BlockCount)
	}
	if info.BlockSize < 1 {
		return nil, errors.Newf("info.BlockSize is %d, but blocks must be at least 1 byte", info.BlockSize)
	}

	blockSize := info.BlockSize
	if info.BlockAlignment != 0 {
		err := heapless.CheckPow2(info.BlockAlignment, "info.BlockAlignment")
		if err != nil {
			return nil, err
		}
		blockSize = heapless.AlignUp(blockSize, info.BlockAlignment)
	}

	pool := &Pool{
		blockSize:   blockSize,
		storage:     make([]byte, info.BlockCount*blockSize),
		used:        make([]bool, info.BlockCount),
		available:   info.BlockCount,
		outstanding: swiss.NewMap[int, blockInfo](uint32(info.BlockCount)),
	}
	pool.callbacks = poolCallbacks{
		Callbacks: info.Callbacks,
		Pool:      pool,
	}
	return pool, nil
}

// BlockCount returns the fixed number of blocks in the pool.
func (p *Pool) BlockCount() int {
	return len(p.used)
}

// BlockSize returns the size in bytes of every block, after any alignment
// rounding requested at creation.
func (p *Pool) BlockSize() int {
	return p.blockSize
}

// Available returns the number of blocks that are currently free.
func (p *Pool) Available() int {
	return p.available
}

// IsEmpty will return true if no blocks are currently acquired.
func (p *Pool) IsEmpty() bool {
	return p.available == len(p.used)
}

func (p *Pool) block(index int) []byte {
	start := index * p.blockSize
	end := start + p.blockSize
	return p.storage[start:end:end]
}

// Acquire marks the lowest-index free block as used and returns its index
// together with a view of its bytes. The view is exactly BlockSize bytes with
// no spare capacity, and reads as all zeroes. When every block is in use,
// Acquire returns an error matching heapless.ErrExhausted and the pool is
// unchanged.
//
// The returned index is stable for the lifetime of the acquisition and is the
// only valid way to refer to the block in Release, SetBlockUserData, and
// BlockUserData.
func (p *Pool) Acquire() (int, []byte, error) {
	for index := 0; index < len(p.used); index++ {
		if p.used[index] {
			continue
		}

		p.used[index] = true
		p.available--
		p.sequence++
		p.outstanding.Put(index, blockInfo{sequence: p.sequence})

		block := p.block(index)
		p.callbacks.Acquire(index, block)
		return index, block, nil
	}

	return 0, nil, errors.Wrapf(heapless.ErrExhausted, "all %d blocks are in use", len(p.used))
}

// Release zeroes block index and marks it free again. Any views of the block
// obtained from Acquire must not be used afterward.
//
// Releasing an out-of-range or currently-free index is a caller bug. It is
// reported as a descriptive error rather than a panic, and the pool is left
// untouched.
func (p *Pool) Release(index int) error {
	if index < 0 || index >= len(p.used) {
		return errors.Newf("block index %d is out of range for a pool of %d blocks", index, len(p.used))
	}
	if !p.used[index] {
		return errors.Newf("block %d is already free", index)
	}

	block := p.block(index)
	for i := range block {
		block[i] = 0
	}

	p.used[index] = false
	p.available++
	p.outstanding.Delete(index)
	p.callbacks.Release(index)
	return nil
}

// SetBlockUserData attaches consumer data to a currently-acquired block. The
// data is retrievable with BlockUserData until the block is released, and is
// included in PrintDetailedMap and DebugLogAllBlocks output.
func (p *Pool) SetBlockUserData(index int, userData any) error {
	info, err := p.liveBlockInfo(index)
	if err != nil {
		return err
	}

	info.userData = userData
	p.outstanding.Put(index, info)
	return nil
}

// BlockUserData retrieves the data attached to a currently-acquired block
// with SetBlockUserData, or nil if none was attached.
func (p *Pool) BlockUserData(index int) (any, error) {
	info, err := p.liveBlockInfo(index)
	if err != nil {
		return nil, err
	}

	return info.userData, nil
}

func (p *Pool) liveBlockInfo(index int) (blockInfo, error) {
	if index < 0 || index >= len(p.used) {
		return blockInfo{}, errors.Newf("block index %d is out of range for a pool of %d blocks", index, len(p.used))
	}

	info, live := p.outstanding.Get(index)
	if !live {
		return blockInfo{}, errors.Newf("block %d is free", index)
	}

	return info, nil
}

// Validate performs internal consistency checks on the pool. These checks
// walk every block and so are not cheap. When the implementation is
// functioning correctly, it should not be possible for this method to return
// an error, but this may assist in diagnosing issues with the implementation.
func (p *Pool) Validate() error {
	if p.available < 0 || p.available > len(p.used) {
		return errors.Newf("%d blocks are marked available, but the pool only has %d blocks", p.available, len(p.used))
	}

	usedCount := 0
	for index, used := range p.used {
		if used {
			usedCount++
			if !p.outstanding.Has(index) {
				return errors.Newf("block %d is marked used, but has no outstanding acquisition entry", index)
			}
			continue
		}

		if p.outstanding.Has(index) {
			return errors.Newf("block %d is marked free, but has an outstanding acquisition entry", index)
		}
		heapless.DebugCheckZeroed(p.block(index), fmt.Sprintf("free block %d", index))
	}

	if usedCount != len(p.used)-p.available {
		return errors.Newf("counted %d used blocks, but the available count of %d indicates there should be %d", usedCount, p.available, len(p.used)-p.available)
	}
	if p.outstanding.Count() != usedCount {
		return errors.Newf("counted %d used blocks, but there are %d outstanding acquisition entries", usedCount, p.outstanding.Count())
	}
	return nil
}

// AddStatistics sums this pool's block statistics into the statistics
// currently present in the provided heapless.Statistics object.
func (p *Pool) AddStatistics(stats *heapless.Statistics) {
	usedCount := len(p.used) - p.available

	stats.BlockCount += len(p.used)
	stats.BlockBytes += len(p.used) * p.blockSize
	stats.AcquiredCount += usedCount
	stats.AcquiredBytes += usedCount * p.blockSize
}

// AddDetailedStatistics sums this pool's block statistics and free-run data
// into the statistics currently present in the provided
// heapless.DetailedStatistics object.
func (p *Pool) AddDetailedStatistics(stats *heapless.DetailedStatistics) {
	p.AddStatistics(&stats.Statistics)

	runLength := 0
	for _, used := range p.used {
		if used {
			if runLength > 0 {
				stats.AddFreeRun(runLength)
				runLength = 0
			}
			continue
		}
		runLength++
	}
	if runLength > 0 {
		stats.AddFreeRun(runLength)
	}
}

// PrintDetailedMap writes a JSON snapshot of the pool to the provided writer:
// its geometry, availability, and the state of each block in index order.
// Acquired blocks include the acquire sequence number and any attached user
// data.
func (p *Pool) PrintDetailedMap(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	objState.Name("BlockCount").Int(len(p.used))
	objState.Name("BlockSize").Int(p.blockSize)
	objState.Name("Available").Int(p.available)

	arrayState := objState.Name("Blocks").Array()
	defer arrayState.End()

	for index, used := range p.used {
		obj := arrayState.Object()

		obj.Name("Index").Int(index)
		if !used {
			obj.Name("State").String("Free")
			obj.End()
			continue
		}

		obj.Name("State").String("Acquired")
		info, _ := p.outstanding.Get(index)
		obj.Name("Sequence").Int(int(info.sequence))
		if info.userData != nil {
			obj.Name("CustomData").String(fmt.Sprintf("%+v", info.userData))
		}
		obj.End()
	}
}

// DebugLogAllBlocks calls logFunc once for each currently-acquired block, in
// index order. Depending on the consumer's logFunc this can be slow and
// should generally not be done except for diagnostic purposes.
func (p *Pool) DebugLogAllBlocks(logger *slog.Logger, logFunc func(log *slog.Logger, index int, sequence uint64, userData any)) {
	for index, used := range p.used {
		if !used {
			continue
		}

		info, _ := p.outstanding.Get(index)
		logFunc(logger.With(slog.String("block", strconv.Itoa(index))), index, info.sequence, info.userData)
	}
}

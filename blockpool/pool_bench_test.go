package blockpool_test

import (
	"testing"

	"github.com/hearthware/heapless/blockpool"
)

func BenchmarkPool_AcquireRelease(b *testing.B) {
	pool, err := blockpool.New(blockpool.CreateInfo{
		BlockCount: 64,
		BlockSize:  256,
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index, _, err := pool.Acquire()
		if err != nil {
			b.Fatal(err)
		}
		err = pool.Release(index)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPool_AcquireReleaseNearlyFull(b *testing.B) {
	pool, err := blockpool.New(blockpool.CreateInfo{
		BlockCount: 64,
		BlockSize:  256,
	})
	if err != nil {
		b.Fatal(err)
	}

	// Leave a single free block so every Acquire pays the full first-fit scan.
	for i := 0; i < 63; i++ {
		_, _, err = pool.Acquire()
		if err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index, _, err := pool.Acquire()
		if err != nil {
			b.Fatal(err)
		}
		err = pool.Release(index)
		if err != nil {
			b.Fatal(err)
		}
	}
}

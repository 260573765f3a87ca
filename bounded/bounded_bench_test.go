package bounded_test

import (
	"testing"

	"github.com/hearthware/heapless/bounded"
)

func BenchmarkVector_PushClear(b *testing.B) {
	vector := bounded.NewVector[int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if vector.Len() == vector.Cap() {
			vector.Clear()
		}
		err := vector.Push(i)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString_AppendClear(b *testing.B) {
	str := bounded.NewString(4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if str.Remaining() < 8 {
			str.Clear()
		}
		err := str.Append("fragment")
		if err != nil {
			b.Fatal(err)
		}
	}
}

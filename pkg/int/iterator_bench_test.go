package int

import (
	"testing"

	"github.com/gubsey/garlic"
)

func BenchmarkCyclicIterator(b *testing.B) {
	cll := garlic.New[int]()
	for i := 0; i < 10; i++ {
		cll.Push(i)
	}

	citr := cll.Iter()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		citr.Next()
	}
}

func BenchmarkOnceIterator(b *testing.B) {
	cll := garlic.New[int]()
	n := 1 << 10
	for i := 0; i < n; i++ {
		cll.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := cll.IterOnce()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

package int

import (
	"testing"

	"github.com/gubsey/garlic"
)

func BenchmarkPush_10(b *testing.B) { push(b, 1<<10) }
func BenchmarkPush_12(b *testing.B) { push(b, 1<<12) }
func BenchmarkPush_13(b *testing.B) { push(b, 1<<13) }

func push(b *testing.B, nodeCount int) {
	for i := 0; i < b.N; i++ {
		cll := garlic.New[int]()
		for j := 0; j < nodeCount; j++ {
			cll.Push(j)
		}
	}
}

var Len int

func BenchmarkLen(b *testing.B) {
	cll := garlic.New[int]()
	n := 1 << 10
	for i := 0; i < n; i++ {
		cll.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Len = cll.Len()
	}
}

package region_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/region"
)

// BenchmarkFind measures Find on a random 512×512 grid with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkFind(b *testing.B) {
	const n = 512
	r := rand.New(rand.NewSource(42))
	g, err := grid.New[int](n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for _, p := range g.Positions() {
		g.Set(p, r.Intn(5))
	}
	opts := region.Options[int]{Conn: region.Conn4, Ignore: func(v int) bool { return v == 0 }}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = region.Find(g, opts)
	}
}

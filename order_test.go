package buddy

import "testing"

// TestSizeForRequest cross-checks sizeForRequest against its own formula
// (order = ceil(log2(max(r, 16) + 8)), the payload clamped up to the
// minimum block size before the header cost is added) by direct
// computation.
func TestSizeForRequest(t *testing.T) {
	cases := []struct {
		r    int
		want uint
	}{
		{-1, 5},    // negative clamps to 0, then to 16; 16+8=24 -> order 5
		{0, 5},     // 0 clamps to 16; 16+8=24 -> order 5
		{8, 5},     // 8 clamps to 16; 16+8=24 -> order 5
		{9, 5},     // 9 clamps to 16; 16+8=24 -> order 5
		{24, 5},    // 24+8=32, exact fit
		{120, 7},   // 120+8=128 -> order 7 (128 bytes)
		{248, 8},   // 248+8=256 -> order 8 (256 bytes), exact fit
		{504, 9},   // 504+8=512 -> order 9 (512 bytes), exact fit
		{1016, 10}, // 1016+8=1024 -> order 10, exact fit
	}
	for _, c := range cases {
		if got := sizeForRequest(c.r); got != c.want {
			t.Errorf("sizeForRequest(%d) = %d, want %d", c.r, got, c.want)
		}
	}
}

func TestOrderForClampsToMinOrder(t *testing.T) {
	for _, n := range []uint64{0, 1, 15, 16} {
		if got := orderFor(n); got != MinOrder {
			t.Errorf("orderFor(%d) = %d, want %d", n, got, MinOrder)
		}
	}
}

func TestOrderForExactPowersOfTwo(t *testing.T) {
	for order := uint(MinOrder); order <= MaxOrder; order++ {
		n := uint64(1) << order
		if got := orderFor(n); got != order {
			t.Errorf("orderFor(%d) = %d, want %d", n, got, order)
		}
	}
}

package filter

import (
	"math"
	"testing"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name      string
		r, g, b   uint8
		intensity int
		levels    int
		want      int
	}{
		{"black", 0, 0, 0, 15, 256, 0},
		{"white reference", 255, 255, 255, 15, 256, 15},
		{"mid gray", 128, 128, 128, 15, 256, 7},
		{"just below step", 16, 17, 17, 15, 256, 0}, // 50*15/765 = 0.98
		{"exact step", 17, 17, 17, 15, 256, 1},      // 51*15/765 = 1
		{"full resolution", 100, 101, 102, 255, 256, 101},
		{"clamped to levels", 255, 255, 255, 15, 8, 7},
		{"single level", 200, 10, 30, 15, 1, 0},
		{"zero intensity", 255, 255, 255, 0, 256, 0},
		{"overflow guard", 255, 255, 255, 300, 256, 255},
		{"max intensity white", 255, 255, 255, math.MaxInt, 256, 255},
		{"max intensity black", 0, 0, 0, math.MaxInt, 256, 0},
		{"wrapping intensity dimmest", 1, 0, 0, math.MaxInt/765 + 1, 256, 255},
		{"max intensity and levels", 255, 255, 255, math.MaxInt, math.MaxInt, math.MaxInt / 765},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bucket(tt.r, tt.g, tt.b, tt.intensity, tt.levels)
			if got != tt.want {
				t.Errorf("Bucket(%d,%d,%d, %d, %d) = %d, want %d",
					tt.r, tt.g, tt.b, tt.intensity, tt.levels, got, tt.want)
			}
		})
	}
}

// TestBucketMatchesFloatTruncation checks the integer form against the
// floating-point truncation formula over every channel sum.
func TestBucketMatchesFloatTruncation(t *testing.T) {
	for _, intensity := range []int{1, 7, 15, 64, 255} {
		for sum := 0; sum <= 765; sum++ {
			r := uint8(min(sum, 255))
			g := uint8(min(max(sum-255, 0), 255))
			b := uint8(max(sum-510, 0))

			avg := float64(sum) / 3.0
			want := int(math.Trunc(avg*float64(intensity))) / 255
			want = min(want, 255)

			if got := Bucket(r, g, b, intensity, 256); got != want {
				t.Fatalf("intensity %d sum %d: Bucket = %d, want %d", intensity, sum, got, want)
			}
		}
	}
}

func TestBucketMap(t *testing.T) {
	src := newTestSurface(3, 2, 0, 0, 0)
	setTestPixel(src, 2, 1, 255, 255, 255)
	setTestPixel(src, 0, 1, 17, 17, 17)

	got := BucketMap(src, 15, 256)
	want := []int32{0, 0, 0, 1, 0, 15}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("buckets[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBucketMapEmpty(t *testing.T) {
	if got := BucketMap(NewSurface(0, 0), 15, 256); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestUsedLevels(t *testing.T) {
	tests := []struct {
		intensity, levels int
		want              int
	}{
		{15, 256, 16},
		{0, 256, 1},
		{255, 256, 256},
		{300, 256, 256},
		{15, 8, 8},
		{15, math.MaxInt, 16},
		{math.MaxInt, 256, 256},
	}

	for _, tt := range tests {
		if got := UsedLevels(tt.intensity, tt.levels); got != tt.want {
			t.Errorf("UsedLevels(%d, %d) = %d, want %d", tt.intensity, tt.levels, got, tt.want)
		}
	}
}

// TestBucketSameWithUsedLevels checks that shrinking levels to UsedLevels
// and capping intensity leave every bucket unchanged.
func TestBucketSameWithUsedLevels(t *testing.T) {
	for _, levels := range []int{1, 4, 256} {
		for _, intensity := range []int{0, 1, 15, 255, 1000} {
			used := UsedLevels(intensity, levels)
			for sum := 0; sum <= 765; sum++ {
				r := uint8(min(sum, 255))
				g := uint8(min(max(sum-255, 0), 255))
				b := uint8(max(sum-510, 0))

				want := Bucket(r, g, b, intensity, levels)
				if got := Bucket(r, g, b, intensity, used); got != want {
					t.Fatalf("levels %d intensity %d sum %d: %d with UsedLevels, want %d",
						levels, intensity, sum, got, want)
				}
			}
		}

		limit := levels * 765
		for sum := 0; sum <= 765; sum++ {
			r := uint8(min(sum, 255))
			g := uint8(min(max(sum-255, 0), 255))
			b := uint8(max(sum-510, 0))

			want := Bucket(r, g, b, limit, levels)
			if got := Bucket(r, g, b, math.MaxInt, levels); got != want {
				t.Fatalf("levels %d sum %d: max intensity bucket %d, want %d", levels, sum, got, want)
			}
		}
	}
}

func TestBucketMapMaxIntensity(t *testing.T) {
	src := newTestSurface(2, 2, 255, 255, 255)
	setTestPixel(src, 0, 0, 0, 0, 0)

	got := BucketMap(src, math.MaxInt/765+1, 256)
	want := []int32{0, 255, 255, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("buckets[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

//go:build darwin || dragonfly || freebsd || linux || openbsd || solaris || netbsd

package buddy

import "testing"

func TestMmapSourceObtainRelease(t *testing.T) {
	var src MmapSource

	b, err := src.Obtain(1 << 16)
	if err != nil {
		t.Skipf("mmap unavailable in this environment: %v", err)
	}
	if len(b) != 1<<16 {
		t.Fatalf("len(Obtain(1<<16)) = %d, want %d", len(b), 1<<16)
	}

	b[0] = 0xAB
	if b[0] != 0xAB {
		t.Fatal("mmapped region is not writable")
	}

	if err := src.Release(b); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestAllocatorOverMmapSource(t *testing.T) {
	a, err := Init(1024-HeaderBytes, MmapSource{})
	if err != nil {
		t.Skipf("mmap unavailable in this environment: %v", err)
	}
	defer a.Deinit()

	p, err := a.Malloc(100)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	p[0] = 42
	a.Free(p)
}

//go:build windows

package buddy

import (
	"syscall"
	"unsafe"
)

const (
	memCommit     = 0x1000
	memReserve    = 0x2000
	memRelease    = 0x8000
	pageReadWrite = 0x04
)

var (
	modkernel32      = syscall.NewLazyDLL("kernel32.dll")
	procVirtualAlloc = modkernel32.NewProc("VirtualAlloc")
	procVirtualFree  = modkernel32.NewProc("VirtualFree")
)

// MmapSource is a Source backed directly by OS virtual memory, obtained
// and released a whole arena at a time via VirtualAlloc/VirtualFree.
type MmapSource struct{}

func (MmapSource) Obtain(n int) ([]byte, error) {
	addr, _, err := procVirtualAlloc.Call(0, uintptr(n), memCommit|memReserve, pageReadWrite)
	if addr == 0 {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

func (MmapSource) Release(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&b[0]))
	r, _, err := procVirtualFree.Call(addr, 0, memRelease)
	if r == 0 {
		return err
	}
	return nil
}

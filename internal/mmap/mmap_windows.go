//go:build windows

package mmap

import (
	"os"
	"syscall"
	"unsafe"
)

// Map maps size bytes of fd read-only.
func Map(fd *os.File, size int64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	maxsizehi := uint32(size >> 32)
	maxsizelo := uint32(size & 0xffffffff)

	handle, err := syscall.CreateFileMapping(syscall.Handle(fd.Fd()), nil,
		syscall.PAGE_READONLY, maxsizehi, maxsizelo, nil)
	if err != nil {
		return nil, os.NewSyscallError("CreateFileMapping", err)
	}

	addr, err := syscall.MapViewOfFile(handle, syscall.FILE_MAP_READ, 0, 0, uintptr(size))
	if addr == 0 {
		_ = syscall.CloseHandle(handle)
		return nil, os.NewSyscallError("MapViewOfFile", err)
	}

	if err := syscall.CloseHandle(handle); err != nil {
		return nil, os.NewSyscallError("CloseHandle", err)
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size)), nil
}

func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return syscall.UnmapViewOfFile(uintptr(unsafe.Pointer(&b[0])))
}

//go:build windows

package pin

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func currentPlatform(pid int32) ([]int, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION, false, uint32(pid))
	if err != nil {
		return nil, fmt.Errorf("could not open process with PID %d: %w", pid, err)
	}
	defer windows.CloseHandle(h)

	var processMask, systemMask uintptr
	ret, _, callErr := procGetProcessAffinityMask.Call(uintptr(h),
		uintptr(unsafe.Pointer(&processMask)),
		uintptr(unsafe.Pointer(&systemMask)))
	if ret == 0 {
		return nil, fmt.Errorf("GetProcessAffinityMask: %w", callErr)
	}
	var cores []int
	for c := 0; c < 64; c++ {
		if processMask&(uintptr(1)<<uint(c)) != 0 {
			cores = append(cores, c)
		}
	}
	return cores, nil
}

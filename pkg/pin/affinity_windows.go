//go:build windows

package pin

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const platformName = "Windows"

// SetProcessAffinityMask is not exported by x/sys/windows, so it is resolved
// from kernel32 at first use.
var (
	modkernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procSetProcessAffinityMask = modkernel32.NewProc("SetProcessAffinityMask")
	procGetProcessAffinityMask = modkernel32.NewProc("GetProcessAffinityMask")
)

// applyPlatform opens the target process with the two rights the affinity
// call needs, nothing broader, and applies a one-bit mask. The handle is
// closed on every return path.
func applyPlatform(req Request) error {
	h, err := windows.OpenProcess(
		windows.PROCESS_SET_INFORMATION|windows.PROCESS_QUERY_INFORMATION,
		false, uint32(req.PID))
	if err != nil {
		return fmt.Errorf("%w with PID %d: %v (error code %d)",
			ErrProcessAccess, req.PID, err, errCode(err))
	}
	defer windows.CloseHandle(h)

	// A core index past the DWORD_PTR width shifts to a zero mask, which
	// SetProcessAffinityMask rejects on its own.
	mask := uintptr(1) << uint(req.Core)
	ret, _, callErr := procSetProcessAffinityMask.Call(uintptr(h), mask)
	if ret == 0 {
		return fmt.Errorf("%w: %v (error code %d)",
			ErrAffinityApply, callErr, errCode(callErr))
	}
	return nil
}

func errCode(err error) uintptr {
	if errno, ok := err.(windows.Errno); ok {
		return uintptr(errno)
	}
	return 0
}

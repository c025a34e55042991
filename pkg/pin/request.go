// Package pin sets the CPU affinity of an already-running process,
// restricting it to a single logical core. Platform-specific implementations
// live in affinity_linux.go, affinity_windows.go and affinity_stub.go,
// selected by build tags.
package pin

import (
	"errors"
	"fmt"
	"strconv"
)

// Request is one affinity change: pin process PID to logical core Core.
// PIDs and core indices are kept at 32 bits; that is pid_t on Linux, fits a
// Windows process ID, and matches gopsutil's process API.
type Request struct {
	PID  int32
	Core int32
}

// ParseRequest turns the positional arguments <pid> <core_id> into a Request.
func ParseRequest(args []string) (Request, error) {
	if len(args) != 2 {
		return Request{}, fmt.Errorf("%w (got %d)", ErrUsage, len(args))
	}
	pid, err := parseInt32(args[0], "pid")
	if err != nil {
		return Request{}, err
	}
	core, err := parseInt32(args[1], "core_id")
	if err != nil {
		return Request{}, err
	}
	return Request{PID: pid, Core: core}, nil
}

func parseInt32(tok, name string) (int32, error) {
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s %q", ErrOutOfRange, name, tok)
		}
		return 0, fmt.Errorf("%w: %s %q", ErrNotANumber, name, tok)
	}
	return int32(v), nil
}

// CheckCore validates core against the number of logical cores ncpu. An
// unknown count (0) skips the check entirely rather than rejecting every
// core: the affinity syscall itself is the backstop for absurd indices.
func CheckCore(core int32, ncpu uint) error {
	if ncpu == 0 {
		return nil
	}
	if core < 0 || uint(core) >= ncpu {
		return fmt.Errorf("%w: core %d not available, this system has cores 0 to %d",
			ErrCoreOutOfBounds, core, ncpu-1)
	}
	return nil
}

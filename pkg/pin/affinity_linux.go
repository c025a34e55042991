//go:build linux

package pin

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const platformName = "Linux"

// applyPlatform pins the process via sched_setaffinity(2). Linux addresses
// the process by PID directly; there is no handle to acquire or release.
func applyPlatform(req Request) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(int(req.Core))

	if err := unix.SchedSetaffinity(int(req.PID), &set); err != nil {
		return fmt.Errorf("%w: sched_setaffinity: %v", ErrAffinityApply, err)
	}
	return nil
}

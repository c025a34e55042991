//go:build linux

package pin

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// cpuSetBits is the capacity of unix.CPUSet in bits.
const cpuSetBits = 1024

func currentPlatform(pid int32) ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(int(pid), &set); err != nil {
		return nil, fmt.Errorf("sched_getaffinity: %w", err)
	}
	var cores []int
	for c := 0; c < cpuSetBits; c++ {
		if set.IsSet(c) {
			cores = append(cores, c)
		}
	}
	return cores, nil
}

package pin

import "github.com/shirou/gopsutil/v4/cpu"

// LogicalCores returns the number of logical CPUs the OS reports as online,
// or 0 when the count cannot be determined. Callers must treat 0 as
// "unknown", not as "no cores".
func LogicalCores() uint {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return 0
	}
	return uint(n)
}

package pin

import (
	"fmt"
	"strings"
)

// Current returns the set of cores the process is currently allowed to run
// on, rendered as a collapsed range list such as "0-3,6".
func Current(pid int32) (string, error) {
	cores, err := currentPlatform(pid)
	if err != nil {
		return "", err
	}
	return coreList(cores), nil
}

// coreList renders sorted core numbers as "x-y" ranges separated by commas,
// with single-core ranges collapsed to "x".
func coreList(cores []int) string {
	var b strings.Builder
	for i := 0; i < len(cores); {
		j := i
		for j+1 < len(cores) && cores[j+1] == cores[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteString(",")
		}
		if i == j {
			fmt.Fprintf(&b, "%d", cores[i])
		} else {
			fmt.Fprintf(&b, "%d-%d", cores[i], cores[j])
		}
		i = j + 1
	}
	return b.String()
}

//go:build !linux && !windows

package pin

import "runtime"

const platformName = runtime.GOOS

func applyPlatform(Request) error {
	return ErrUnsupported
}

//go:build !linux && !windows

package pin

func currentPlatform(int32) ([]int, error) {
	return nil, ErrUnsupported
}

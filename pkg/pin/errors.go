package pin

import "errors"

var (
	ErrUsage           = errors.New("expected exactly two arguments: <pid> <core_id>")
	ErrNotANumber      = errors.New("pid and core_id must be integers")
	ErrOutOfRange      = errors.New("argument is out of range")
	ErrCoreOutOfBounds = errors.New("core_id is out of range")
	ErrProcessAccess   = errors.New("could not open process")
	ErrAffinityApply   = errors.New("failed to set process affinity")
	ErrUnsupported     = errors.New("unsupported operating system")
)

// IsUsage reports whether err should trigger the usage text: wrong argument
// count or an argument that never made it past parsing. Runtime failures
// (process access, affinity call) are not usage errors.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNotANumber) ||
		errors.Is(err, ErrOutOfRange)
}

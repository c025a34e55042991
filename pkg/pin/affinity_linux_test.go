//go:build linux

package pin

import (
	"errors"
	"math"
	"os"
	"testing"
)

func TestApply_NoSuchProcess(t *testing.T) {
	// The top of the PID range is never allocated (kernel.pid_max caps well
	// below it), so this reliably hits ESRCH without privileges.
	err := Apply(Request{PID: math.MaxInt32, Core: 0})
	if !errors.Is(err, ErrAffinityApply) {
		t.Fatalf("expected ErrAffinityApply, got %v", err)
	}
	mustContain(t, err.Error(), "sched_setaffinity")
}

func TestCurrent_OwnProcess(t *testing.T) {
	cores, err := Current(int32(os.Getpid()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cores == "" {
		t.Fatal("expected a non-empty affinity list for the current process")
	}
}

func TestLogicalCores(t *testing.T) {
	if n := LogicalCores(); n == 0 {
		t.Fatal("expected a known core count on linux")
	}
}

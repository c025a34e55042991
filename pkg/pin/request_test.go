package pin

import (
	"errors"
	"strings"
	"testing"
)

func mustContain(t *testing.T, got string, subs ...string) {
	t.Helper()
	for _, sub := range subs {
		if !strings.Contains(got, sub) {
			t.Fatalf("expected %q to contain %q", got, sub)
		}
	}
}

func TestParseRequest_ArgumentCount(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{},
		{"1234"},
		{"1234", "0", "extra"},
	} {
		_, err := ParseRequest(args)
		if !errors.Is(err, ErrUsage) {
			t.Fatalf("args %v: expected ErrUsage, got %v", args, err)
		}
	}
}

func TestParseRequest_NonNumeric(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{"alpha pid", []string{"abc", "0"}},
		{"alpha core", []string{"1234", "abc"}},
		{"float core", []string{"1234", "12.5"}},
		{"empty pid", []string{"", "0"}},
		{"trailing junk", []string{"12x", "0"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRequest(tc.args)
			if !errors.Is(err, ErrNotANumber) {
				t.Fatalf("expected ErrNotANumber, got %v", err)
			}
		})
	}
}

func TestParseRequest_OutOfRange(t *testing.T) {
	t.Run("pid too large", func(t *testing.T) {
		_, err := ParseRequest([]string{"99999999999", "0"})
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange, got %v", err)
		}
		mustContain(t, err.Error(), "pid", "99999999999")
	})

	t.Run("core too large", func(t *testing.T) {
		_, err := ParseRequest([]string{"1234", "4294967296"})
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange, got %v", err)
		}
		mustContain(t, err.Error(), "core_id")
	})
}

func TestParseRequest_Valid(t *testing.T) {
	req, err := ParseRequest([]string{"1234", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.PID != 1234 || req.Core != 3 {
		t.Fatalf("unexpected request: %+v", req)
	}

	// Negative values parse; the bound check rejects them later.
	req, err = ParseRequest([]string{"1234", "-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Core != -1 {
		t.Fatalf("unexpected core: %d", req.Core)
	}
}

func TestCheckCore(t *testing.T) {
	t.Run("unknown count skips check", func(t *testing.T) {
		for _, core := range []int32{-1, 0, 7, 1 << 20} {
			if err := CheckCore(core, 0); err != nil {
				t.Fatalf("core %d: expected nil with unknown count, got %v", core, err)
			}
		}
	})

	t.Run("negative core rejected", func(t *testing.T) {
		err := CheckCore(-1, 4)
		if !errors.Is(err, ErrCoreOutOfBounds) {
			t.Fatalf("expected ErrCoreOutOfBounds, got %v", err)
		}
		mustContain(t, err.Error(), "0 to 3")
	})

	t.Run("core equal to count rejected", func(t *testing.T) {
		err := CheckCore(4, 4)
		if !errors.Is(err, ErrCoreOutOfBounds) {
			t.Fatalf("expected ErrCoreOutOfBounds, got %v", err)
		}
		mustContain(t, err.Error(), "core 4", "0 to 3")
	})

	t.Run("boundary cores accepted", func(t *testing.T) {
		if err := CheckCore(0, 4); err != nil {
			t.Fatalf("core 0: %v", err)
		}
		if err := CheckCore(3, 4); err != nil {
			t.Fatalf("core 3: %v", err)
		}
	})
}

func TestIsUsage(t *testing.T) {
	for _, err := range []error{ErrUsage, ErrNotANumber, ErrOutOfRange} {
		if !IsUsage(err) {
			t.Fatalf("expected %v to be a usage error", err)
		}
	}
	for _, err := range []error{ErrCoreOutOfBounds, ErrProcessAccess, ErrAffinityApply, ErrUnsupported, nil} {
		if IsUsage(err) {
			t.Fatalf("expected %v not to be a usage error", err)
		}
	}
}

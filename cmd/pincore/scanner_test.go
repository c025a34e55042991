package main

import (
	"os"
	"testing"
)

func TestScanProcesses(t *testing.T) {
	procs, err := ScanProcesses()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(procs) == 0 {
		t.Fatal("expected at least one visible process")
	}

	own := int32(os.Getpid())
	found := false
	for i, p := range procs {
		if i > 0 && procs[i-1].Pid > p.Pid {
			t.Fatalf("scan not sorted by PID at index %d", i)
		}
		if p.Pid == own {
			found = true
			if p.Name == "" {
				t.Fatal("own process has an empty name")
			}
		}
	}
	if !found {
		t.Fatalf("own PID %d missing from scan", own)
	}
}

func TestToCoreRows(t *testing.T) {
	rows := toCoreRows(4)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "0" || rows[3][0] != "3" {
		t.Fatalf("unexpected core labels: %v", rows)
	}
}

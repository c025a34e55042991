package main

import (
	"sort"

	"cpupin/pkg/pin"

	"github.com/shirou/gopsutil/v4/process"
)

type ProcessInfo struct {
	Pid   int32
	Name  string
	Cores string
}

// ScanProcesses returns the visible processes sorted by PID, with the cores
// each one is currently allowed to run on. Processes that refuse inspection
// still show up, with placeholders.
func ScanProcesses() ([]ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	results := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name := "unknown"
		if n, err := p.Name(); err == nil && n != "" {
			name = n
		}
		cores := "-"
		if c, err := pin.Current(p.Pid); err == nil && c != "" {
			cores = c
		}
		results = append(results, ProcessInfo{Pid: p.Pid, Name: name, Cores: cores})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Pid < results[j].Pid })
	return results, nil
}

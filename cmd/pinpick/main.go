package main

import (
	"errors"
	"fmt"
	"strconv"

	"cpupin/pkg/lib"
	"cpupin/pkg/pin"

	"github.com/charmbracelet/huh"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/shirou/gopsutil/v4/process"
	flag "github.com/spf13/pflag"
)

type procEntry struct {
	pid  int32
	name string
}

// listProcesses returns visible processes for the fuzzy picker.
func listProcesses() ([]procEntry, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	entries := make([]procEntry, 0, len(procs))
	for _, p := range procs {
		name := "unknown"
		if n, err := p.Name(); err == nil && n != "" {
			name = n
		}
		entries = append(entries, procEntry{pid: p.Pid, name: name})
	}
	return entries, nil
}

// fzfSelect lets the user pick a process interactively, with the current
// affinity of the highlighted process shown in the preview pane.
func fzfSelect(entries []procEntry) (procEntry, error) {
	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return fmt.Sprintf("%d\t%s", entries[i].pid, entries[i].name)
		},
		fuzzyfinder.WithPromptString("Select process: "),
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i < 0 {
				return ""
			}
			cores, err := pin.Current(entries[i].pid)
			if err != nil {
				return fmt.Sprintf("PID %d: affinity unavailable (%v)", entries[i].pid, err)
			}
			return fmt.Sprintf("PID %d currently allowed on cores %s", entries[i].pid, cores)
		}),
	)
	if err != nil {
		return procEntry{}, err
	}
	return entries[idx], nil
}

// askCore prompts for a core index, validating against the known core count.
func askCore(ncpu uint) (int32, error) {
	var coreStr string
	input := huh.NewInput().
		Title("Core to pin to").
		Description(coreRangeHint(ncpu)).
		Value(&coreStr).
		Validate(func(s string) error {
			v, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return errors.New("core must be an integer")
			}
			return pin.CheckCore(int32(v), ncpu)
		})
	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(coreStr, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func coreRangeHint(ncpu uint) string {
	if ncpu == 0 {
		return "core count unknown on this system"
	}
	return fmt.Sprintf("this system has cores 0 to %d", ncpu-1)
}

func main() {
	pidArg := flag.Int32P("pid", "p", 0, "Target PID (skip the fuzzy picker)")
	coreArg := flag.Int32P("core", "c", -1, "Core index (skip the core prompt)")
	yes := flag.BoolP("yes", "y", false, "Apply without asking for confirmation")
	verbose := flag.BoolP("verbose", "v", false, "Print what would be done instead of doing it")
	flag.Parse()

	ncpu := pin.LogicalCores()

	target := procEntry{pid: *pidArg}
	if target.pid <= 0 {
		entries, err := listProcesses()
		if err != nil || len(entries) == 0 {
			lib.Exit(errors.New("no processes visible"))
		}
		target, err = fzfSelect(entries)
		if err != nil {
			lib.Exit(err)
		}
	}

	core := *coreArg
	if core < 0 {
		var err error
		core, err = askCore(ncpu)
		if err != nil {
			lib.Exit(err)
		}
	} else if err := pin.CheckCore(core, ncpu); err != nil {
		lib.Exit(err)
	}

	if *verbose {
		fmt.Printf("would pin PID %d to core %d\n", target.pid, core)
		return
	}

	if !*yes {
		ok := true
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Pin PID %d to core %d?", target.pid, core)).
			Value(&ok)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
			lib.Exit(err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := pin.Apply(pin.Request{PID: target.pid, Core: core}); err != nil {
		lib.Exitf(err, "Please ensure the PID is correct and you have sufficient privileges (e.g. run with 'sudo' or as Administrator).")
	}
	fmt.Printf("Successfully set affinity for PID %d to core %d\n", target.pid, core)
}

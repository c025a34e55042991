package main

import (
	"errors"
	"fmt"
	"os"

	"cpupin/pkg/pin"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var flagTUI bool

var rootCmd = &cobra.Command{
	Use:   "pincore <pid> <core_id>",
	Short: "Pin a running process to a single CPU core",
	Long: `pincore restricts an already-running process to a single logical CPU
core using the operating system's native affinity facility.`,
	Example: `  sudo pincore 12345 0    (Linux)
  pincore 6789 1          (Windows)`,
	// Argument count is validated in run so the error carries the tool's
	// own usage semantics instead of cobra's.
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagTUI, "tui", false, "pick the process and core interactively instead of passing arguments")
}

func main() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		switch {
		case pin.IsUsage(err):
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
			fmt.Fprintln(os.Stderr, "\nNote: this tool usually requires administrator/root privileges.")
		case errors.Is(err, pin.ErrProcessAccess), errors.Is(err, pin.ErrAffinityApply):
			fmt.Fprintln(os.Stderr, "Please ensure the PID is correct and you have sufficient privileges (e.g. run with 'sudo' or as Administrator).")
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagTUI {
		procs, err := ScanProcesses()
		if err != nil {
			return fmt.Errorf("process scan error: %w", err)
		}
		p := tea.NewProgram(newModel(procs), tea.WithAltScreen())
		_, err = p.Run()
		return err
	}

	req, err := pin.ParseRequest(args)
	if err != nil {
		return err
	}
	if err := pin.CheckCore(req.Core, pin.LogicalCores()); err != nil {
		return err
	}

	fmt.Printf("Running on %s.\n", pin.Platform)
	if err := pin.Apply(req); err != nil {
		return err
	}
	fmt.Printf("Successfully set affinity for PID %d to core %d\n", req.PID, req.Core)
	return nil
}

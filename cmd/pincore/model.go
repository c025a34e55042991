package main

import (
	"fmt"

	"cpupin/pkg/pin"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appState int

const (
	stateProcs appState = iota
	stateCores
	stateResult
)

// Core count shown when the OS will not say; the affinity call itself
// rejects indices the machine does not have.
const fallbackCores = 64

var (
	styleBase = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Padding(0, 1)

	styleErr = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Padding(0, 1)
)

type model struct {
	procTable table.Model
	coreTable table.Model
	procs     []ProcessInfo
	target    ProcessInfo
	state     appState
	resultMsg string
	resultErr error
}

func newModel(procs []ProcessInfo) model {
	procColumns := []table.Column{
		{Title: "PID", Width: 8},
		{Title: "PROCESS", Width: 26},
		{Title: "CORES", Width: 14},
	}
	pt := table.New(
		table.WithColumns(procColumns),
		table.WithRows(toProcRows(procs)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	ncpu := pin.LogicalCores()
	if ncpu == 0 {
		ncpu = fallbackCores
	}
	coreColumns := []table.Column{
		{Title: "CORE", Width: 8},
	}
	ct := table.New(
		table.WithColumns(coreColumns),
		table.WithRows(toCoreRows(ncpu)),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("99"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	pt.SetStyles(s)
	ct.SetStyles(s)

	return model{
		procTable: pt,
		coreTable: ct,
		procs:     procs,
		state:     stateProcs,
	}
}

func toProcRows(procs []ProcessInfo) []table.Row {
	rows := make([]table.Row, len(procs))
	for i, p := range procs {
		rows[i] = table.Row{fmt.Sprintf("%d", p.Pid), p.Name, p.Cores}
	}
	return rows
}

func toCoreRows(ncpu uint) []table.Row {
	rows := make([]table.Row, ncpu)
	for i := range rows {
		rows[i] = table.Row{fmt.Sprintf("%d", i)}
	}
	return rows
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateProcs:
		return m.updateProcs(msg)
	case stateCores:
		return m.updateCores(msg)
	case stateResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m model) updateProcs(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if idx := m.procTable.Cursor(); idx >= 0 && idx < len(m.procs) {
				m.target = m.procs[idx]
				m.procTable.Blur()
				m.coreTable.Focus()
				m.state = stateCores
			}
			return m, nil
		case "r":
			procs, err := ScanProcesses()
			if err == nil {
				m.procs = procs
				m.procTable.SetRows(toProcRows(procs))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.procTable, cmd = m.procTable.Update(msg)
	return m, cmd
}

func (m model) updateCores(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.coreTable.Blur()
			m.procTable.Focus()
			m.state = stateProcs
			return m, nil
		case "enter":
			core := int32(m.coreTable.Cursor())
			err := pin.Apply(pin.Request{PID: m.target.Pid, Core: core})
			m.resultErr = err
			if err == nil {
				m.resultMsg = fmt.Sprintf("Successfully set affinity for PID %d to core %d", m.target.Pid, core)
			} else {
				m.resultMsg = fmt.Sprintf("Failed to pin PID %d: %v", m.target.Pid, err)
			}
			m.state = stateResult
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.coreTable, cmd = m.coreTable.Update(msg)
	return m, cmd
}

func (m model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "enter", "r":
			procs, err := ScanProcesses()
			if err == nil {
				m.procs = procs
				m.procTable.SetRows(toProcRows(procs))
			}
			m.coreTable.Blur()
			m.procTable.Focus()
			m.state = stateProcs
			return m, nil
		}
	}
	return m, nil
}

func (m model) View() string {
	title := styleTitle.Render("PINCORE — running on " + pin.Platform)

	switch m.state {
	case stateCores:
		header := styleTitle.Render(fmt.Sprintf("Pin %s (PID %d) to which core?", m.target.Name, m.target.Pid))
		help := styleHelp.Render("↑/↓  navigate    enter  pin    esc  back    q  quit")
		return title + "\n" + header + "\n" + styleBase.Render(m.coreTable.View()) + "\n" + help

	case stateResult:
		var msg string
		if m.resultErr != nil {
			msg = styleErr.Render(m.resultMsg)
		} else {
			msg = styleOK.Render(m.resultMsg)
		}
		help := styleHelp.Render("enter / r  back to list    q  quit")
		return title + "\n" + styleBase.Render(m.procTable.View()) + "\n" + msg + "\n" + help

	default:
		var help string
		if len(m.procs) == 0 {
			help = styleHelp.Render("No processes visible.  r  refresh    q  quit")
		} else {
			help = styleHelp.Render("↑/↓  navigate    enter  choose core    r  refresh    q  quit")
		}
		return title + "\n" + styleBase.Render(m.procTable.View()) + "\n" + help
	}
}

// Package sweep is the interactive artifact browser shown by `bm clean` on a
// TTY: scan with a spinner, review and toggle artifacts, delete on confirm.
package sweep

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/buildmole/internal/filter"
	"github.com/lakshaymaurya-felt/buildmole/internal/pool"
	"github.com/lakshaymaurya-felt/buildmole/internal/remove"
	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
	"github.com/lakshaymaurya-felt/buildmole/internal/size"
)

// ─── Phases ──────────────────────────────────────────────────────────────────

type phase int

const (
	phaseScanning phase = iota
	phaseSizing
	phaseSelect
	phaseDeleting
	phaseDone
)

// ─── Messages ────────────────────────────────────────────────────────────────

type scanDoneMsg struct {
	artifacts []scan.Artifact
}

type sizeDoneMsg struct{}

type deleteDoneMsg struct {
	report remove.Report
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for the interactive sweep.
type Model struct {
	root   string
	filter *filter.Filter
	pool   *pool.Pool

	phase     phase
	spinner   spinner.Model
	artifacts []scan.Artifact
	selected  []bool
	report    remove.Report

	cursor   int
	offset   int // viewport scroll offset
	width    int
	height   int
	quitting bool
}

// New creates a sweep Model for the given canonical root.
func New(root string, f *filter.Filter, p *pool.Pool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		root:    root,
		filter:  f,
		pool:    p,
		spinner: sp,
		width:   80,
		height:  24,
	}
}

// Report returns the removal report once the sweep has finished.
func (m Model) Report() remove.Report {
	return m.report
}

func (m Model) scanCmd() tea.Cmd {
	root, f := m.root, m.filter
	return func() tea.Msg {
		artifacts := f.Apply(root, scan.Scan(root))
		return scanDoneMsg{artifacts: artifacts}
	}
}

func (m Model) sizeCmd() tea.Cmd {
	p, artifacts := m.pool, m.artifacts
	return func() tea.Msg {
		size.Compute(p, artifacts)
		return sizeDoneMsg{}
	}
}

func (m Model) deleteCmd() tea.Cmd {
	p := m.pool
	var picked []scan.Artifact
	for i, a := range m.artifacts {
		if m.selected[i] {
			picked = append(picked, a)
		}
	}
	return func() tea.Msg {
		return deleteDoneMsg{report: remove.Remove(p, picked)}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scanCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanDoneMsg:
		m.artifacts = msg.artifacts
		if len(m.artifacts) == 0 {
			m.phase = phaseDone
			return m, tea.Quit
		}
		m.phase = phaseSizing
		return m, m.sizeCmd()

	case sizeDoneMsg:
		m.phase = phaseSelect
		// Everything found is selected by default.
		m.selected = make([]bool, len(m.artifacts))
		for i := range m.selected {
			m.selected[i] = true
		}
		return m, nil

	case deleteDoneMsg:
		m.report = msg.report
		m.phase = phaseDone
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.phase != phaseSelect {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.artifacts)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		all := m.selectedCount() == len(m.artifacts)
		for i := range m.selected {
			m.selected[i] = !all
		}
	case "enter":
		if m.selectedCount() == 0 {
			return m, nil
		}
		m.phase = phaseDeleting
		return m, tea.Batch(m.spinner.Tick, m.deleteCmd())
	}

	m.clampViewport()
	return m, nil
}

func (m Model) selectedCount() int {
	var n int
	for _, s := range m.selected {
		if s {
			n++
		}
	}
	return n
}

func (m Model) selectedBytes() int64 {
	var total int64
	for i, a := range m.artifacts {
		if m.selected[i] {
			total += a.Size
		}
	}
	return total
}

// clampViewport keeps the cursor inside the visible window.
func (m *Model) clampViewport() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m Model) viewportHeight() int {
	// Header, footer, and padding take eight rows.
	vh := m.height - 8
	if vh < 3 {
		vh = 3
	}
	return vh
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

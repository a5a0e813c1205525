package sweep

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
	"github.com/lakshaymaurya-felt/buildmole/internal/ui"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	clrDim    = ui.ColorMuted
	clrItem   = ui.ColorText
	clrCursor = ui.ColorPrimary
	clrSize   = ui.ColorWarning
	clrErr    = ui.ColorDanger
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	switch m.phase {
	case phaseScanning:
		s.WriteString(fmt.Sprintf("  %s Scanning %s ...\n", m.spinner.View(), m.root))
	case phaseSizing:
		s.WriteString(fmt.Sprintf("  %s Sizing %d artifacts ...\n", m.spinner.View(), len(m.artifacts)))
	case phaseSelect:
		s.WriteString(m.renderList(w))
	case phaseDeleting:
		s.WriteString(fmt.Sprintf("  %s Deleting %d artifacts ...\n", m.spinner.View(), m.selectedCount()))
	case phaseDone:
		s.WriteString(m.renderReport())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter(w))
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorCoral).
		Render("  " + ui.IconDiamond + " Build Sweeper")

	pathLine := lipgloss.NewStyle().
		Foreground(clrDim).
		Render("  " + m.root)

	inner := lipgloss.JoinVertical(lipgloss.Left, title, pathLine)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorCoral).
		Width(w - 2).
		Render(inner)
}

// ─── Artifact list ───────────────────────────────────────────────────────────

func (m Model) renderList(w int) string {
	var s strings.Builder

	vh := m.viewportHeight()
	end := m.offset + vh
	if end > len(m.artifacts) {
		end = len(m.artifacts)
	}

	for i := m.offset; i < end; i++ {
		s.WriteString(m.renderItem(i, w))
		s.WriteString("\n")
	}

	if len(m.artifacts) > vh {
		s.WriteString(lipgloss.NewStyle().Foreground(clrDim).
			Render(fmt.Sprintf("  (%d-%d of %d)", m.offset+1, end, len(m.artifacts))))
		s.WriteString("\n")
	}

	sel := fmt.Sprintf("  %d selected, %s", m.selectedCount(), ui.FormatSize(m.selectedBytes()))
	s.WriteString(lipgloss.NewStyle().Foreground(clrSize).Render(sel))
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderItem(i, w int) string {
	a := m.artifacts[i]

	check := "[ ]"
	if m.selected[i] {
		check = "[" + ui.IconCheck + "]"
	}

	cursor := "  "
	if i == m.cursor {
		cursor = ui.IconChevron + " "
	}

	line := fmt.Sprintf("%s%s %-12s %10s  %s",
		cursor, check, a.BuildSystem, ui.FormatSize(a.Size), displayPath(a, w))

	style := lipgloss.NewStyle().Foreground(clrItem)
	if i == m.cursor {
		style = lipgloss.NewStyle().Foreground(clrCursor).Bold(true)
	} else if !m.selected[i] {
		style = lipgloss.NewStyle().Foreground(clrDim)
	}
	return style.Render(line)
}

// displayPath truncates long paths from the left so the artifact name stays
// visible.
func displayPath(a scan.Artifact, w int) string {
	path := a.Path
	max := w - 34
	if max < 16 {
		max = 16
	}
	if len(path) <= max {
		return path
	}
	return "…" + path[len(path)-max+1:]
}

// ─── Final report ────────────────────────────────────────────────────────────

func (m Model) renderReport() string {
	var s strings.Builder

	if len(m.artifacts) == 0 {
		s.WriteString("  No build artifacts found.\n")
		return s.String()
	}

	line := fmt.Sprintf("  Deleted %d artifact directories, freed %s",
		m.report.Deleted, ui.FormatSize(m.report.FreedBytes))
	s.WriteString(lipgloss.NewStyle().Foreground(clrSize).Render(line))
	s.WriteString("\n")

	for _, f := range m.report.Failures {
		s.WriteString(lipgloss.NewStyle().Foreground(clrErr).
			Render(fmt.Sprintf("  %s %v", ui.IconCross, f.Err)))
		s.WriteString("\n")
	}
	return s.String()
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter(w int) string {
	var hint string
	switch m.phase {
	case phaseSelect:
		hint = "  ↑/↓ move · space toggle · a all · enter delete · q quit"
	case phaseDone:
		hint = ""
	default:
		hint = "  q cancel"
	}
	return lipgloss.NewStyle().Foreground(clrDim).Width(w).Render(hint)
}

// Package ui holds shared terminal styling: color tokens, icons, and
// formatting helpers used by the report and the interactive sweep view.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.Color("81")  // cyan: selection, headers
	ColorCoral   = lipgloss.Color("209") // coral: artifact highlights
	ColorWarning = lipgloss.Color("214") // amber: large sizes, prompts
	ColorDanger  = lipgloss.Color("203") // red: deletion errors
	ColorMuted   = lipgloss.Color("241") // gray: footers, hints
	ColorText    = lipgloss.Color("252")
)

// Icons used across views.
const (
	IconDiamond = "◆"
	IconChevron = "›"
	IconCheck   = "✓"
	IconCross   = "✗"
)

// IsTTY reports whether stdout is an interactive terminal. Styled output and
// the interactive sweep UI are only offered on a TTY.
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ─── Size formatting ─────────────────────────────────────────────────────────

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

// FormatSize renders a byte count as a human-readable string.
func FormatSize(bytes int64) string {
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

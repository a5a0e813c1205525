// Package report renders the artifact summary table.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
	"github.com/lakshaymaurya-felt/buildmole/internal/ui"
)

// group accumulates per-build-system totals.
type group struct {
	count int
	bytes int64
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	mutedStyle  = lipgloss.NewStyle().Foreground(ui.ColorMuted)
)

// Summary writes a table of artifacts grouped by build system, with a total
// line. With verbose set, each group also lists its artifact paths. Styling
// is applied only when color is true.
func Summary(w io.Writer, artifacts []scan.Artifact, verbose, color bool) {
	if len(artifacts) == 0 {
		fmt.Fprintln(w, "No build artifacts found.")
		return
	}

	groups := make(map[string]*group)
	paths := make(map[string][]scan.Artifact)
	for _, a := range artifacts {
		g := groups[a.BuildSystem]
		if g == nil {
			g = &group{}
			groups[a.BuildSystem] = g
		}
		g.count++
		g.bytes += a.Size
		if verbose {
			paths[a.BuildSystem] = append(paths[a.BuildSystem], a)
		}
	}

	systems := make([]string, 0, len(groups))
	systemWidth := len("Build System")
	for sys := range groups {
		systems = append(systems, sys)
		if len(sys) > systemWidth {
			systemWidth = len(sys)
		}
	}
	sort.Strings(systems)

	const countWidth, sizeWidth = 5, 10
	row := func(system, count, size string) string {
		return fmt.Sprintf("%-*s  %*s  %*s", systemWidth, system, countWidth, count, sizeWidth, size)
	}
	rule := row(strings.Repeat("-", systemWidth), strings.Repeat("-", countWidth), strings.Repeat("-", sizeWidth))

	header := row("Build System", "Count", "Size")
	if color {
		header = headerStyle.Render(header)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, rule)

	var totalCount int
	var totalBytes int64
	for _, sys := range systems {
		g := groups[sys]
		fmt.Fprintln(w, row(sys, fmt.Sprint(g.count), ui.FormatSize(g.bytes)))
		totalCount += g.count
		totalBytes += g.bytes

		if verbose {
			for _, a := range paths[sys] {
				line := fmt.Sprintf("  %s (%s)", a.Path, ui.FormatSize(a.Size))
				if color {
					line = mutedStyle.Render(line)
				}
				fmt.Fprintln(w, line)
			}
		}
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, row("Total", fmt.Sprint(totalCount), ui.FormatSize(totalBytes)))
}

// DryRunFooter tells the user how to actually delete what was found.
func DryRunFooter(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bm clean' to remove these artifacts.")
}

// DiskLine reports free space on the volume holding path, e.g.
// "Disk: 213.4 GB free of 467.7 GB". Best effort; returns an error when the
// volume cannot be queried.
func DiskLine(path string) (string, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return "", fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return fmt.Sprintf("Disk: %s free of %s",
		ui.FormatSize(int64(usage.Free)), ui.FormatSize(int64(usage.Total))), nil
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/buildmole/internal/remove"
	"github.com/lakshaymaurya-felt/buildmole/internal/report"
	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
	"github.com/lakshaymaurya-felt/buildmole/internal/size"
	"github.com/lakshaymaurya-felt/buildmole/internal/sweep"
	"github.com/lakshaymaurya-felt/buildmole/internal/ui"
)

var (
	cleanInclude []string
	cleanExclude []string
	cleanVerbose bool
	cleanWorkers int
	cleanYes     bool
	cleanDryRun  bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove build artifacts",
	Long: `Scan a directory tree for build artifacts and delete them.

On a terminal this opens an interactive picker. With --yes (or when
output is piped) it prints the summary, asks once for confirmation,
and deletes everything found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(args, cleanInclude, cleanExclude, cleanWorkers)
		if err != nil {
			return err
		}

		// Interactive picker on a TTY, unless the user opted out of
		// confirmation entirely.
		if !cleanYes && !cleanDryRun && ui.IsTTY() {
			m, err := tea.NewProgram(sweep.New(p.root, p.filter, p.pool)).Run()
			if err != nil {
				return fmt.Errorf("interactive sweep: %w", err)
			}
			printFailures(m.(sweep.Model).Report())
			return nil
		}

		artifacts := p.filter.Apply(p.root, scan.Scan(p.root))
		size.Compute(p.pool, artifacts)
		report.Summary(os.Stdout, artifacts, cleanVerbose, p.color())
		if len(artifacts) == 0 {
			return nil
		}

		if cleanDryRun {
			report.DryRunFooter(os.Stdout)
			return nil
		}

		if !cleanYes && !confirm(os.Stdin, os.Stdout, len(artifacts), scan.TotalSize(artifacts)) {
			fmt.Println("Aborted.")
			return nil
		}

		rep := remove.Remove(p.pool, artifacts)
		fmt.Printf("\nDeleted %d of %d artifact directories (%s).\n",
			rep.Deleted, len(artifacts), ui.FormatSize(rep.FreedBytes))
		printFailures(rep)
		return nil
	},
}

// confirm asks once before deletion. Only "y" or "yes" proceeds.
func confirm(in io.Reader, out io.Writer, count int, totalBytes int64) bool {
	fmt.Fprintf(out, "\nDelete %d artifact directories (%s)? [y/N] ", count, ui.FormatSize(totalBytes))
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printFailures(rep remove.Report) {
	for _, f := range rep.Failures {
		fmt.Fprintf(os.Stderr, "Error: %v\n", f.Err)
	}
}

func init() {
	cleanCmd.Flags().StringArrayVar(&cleanInclude, "include", nil, "Only delete artifacts matching this glob (repeatable)")
	cleanCmd.Flags().StringArrayVar(&cleanExclude, "exclude", nil, "Skip artifacts matching this glob (repeatable)")
	cleanCmd.Flags().BoolVarP(&cleanVerbose, "verbose", "v", false, "List individual artifact paths")
	cleanCmd.Flags().IntVar(&cleanWorkers, "workers", 0, "Worker pool size (default: CPU count)")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip the confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Preview without deleting")
}

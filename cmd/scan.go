package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/buildmole/internal/report"
	"github.com/lakshaymaurya-felt/buildmole/internal/scan"
	"github.com/lakshaymaurya-felt/buildmole/internal/size"
)

var (
	scanInclude []string
	scanExclude []string
	scanVerbose bool
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Find build artifacts",
	Long:  "Scan a directory tree for build artifacts and show their sizes. Never deletes anything.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(args, scanInclude, scanExclude, scanWorkers)
		if err != nil {
			return err
		}

		artifacts := p.filter.Apply(p.root, scan.Scan(p.root))
		size.Compute(p.pool, artifacts)

		report.Summary(os.Stdout, artifacts, scanVerbose, p.color())
		if line, err := report.DiskLine(p.root); err == nil {
			cmd.Println()
			cmd.Println(line)
		} else {
			logrus.Debugf("scan: %v", err)
		}
		if len(artifacts) > 0 {
			report.DryRunFooter(os.Stdout)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringArrayVar(&scanInclude, "include", nil, "Only report artifacts matching this glob (repeatable)")
	scanCmd.Flags().StringArrayVar(&scanExclude, "exclude", nil, "Skip artifacts matching this glob (repeatable)")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "List individual artifact paths")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "Worker pool size (default: CPU count)")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/buildmole/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the artifact detection rules",
	Long:  "Print the built-in catalog: build system, artifact directory, and the marker that confirms a match.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range rules.Catalog() {
			fmt.Printf("%-16s %-16s %s\n", r.BuildSystem, r.Dir, describeMarker(r))
		}
	},
}

func describeMarker(r rules.Rule) string {
	var marker string
	switch r.MarkerKind {
	case rules.MarkerAlways:
		marker = "(always)"
	case rules.MarkerSuffix:
		marker = "any *" + r.MarkerSuffix + " file"
	default:
		marker = strings.Join(r.MarkerFiles, " | ")
	}
	if r.Scope == rules.ScopeGrandparent {
		marker += " (two levels up, under " + r.ParentName + "/)"
	}
	return marker
}

package fixup

import (
	"fmt"

	"github.com/cklose/sqlxfix/pkg/rewrite"
	"github.com/fatih/color"
)

// summaryIndent lines the count up under the status prefix
const summaryIndent = "   "

// formatSummary renders the one-line count report shown after a run.
// The count reflects chained bind calls present in the output, not the
// substitutions performed.
func formatSummary(result *rewrite.Result) string {
	countColor := color.New(color.FgGreen, color.Bold)
	if !result.WasModified {
		countColor = color.New(color.FgYellow)
	}
	return fmt.Sprintf("%sFixed %s queries", summaryIndent, countColor.Sprintf("%d", result.MarkerCount))
}

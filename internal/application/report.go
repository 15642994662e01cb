package application

import (
	"fmt"
	"strings"

	"github.com/veltraco/dispatch-match-cli/internal/domain"
)

const (
	summaryAllMet     = "This executor meets all demands of all clients!"
	summaryPartialFmt = "This executor meets the demands of only %d out of %d clients"
	headerByReward    = "Available clients sorted by highest reward:"
	headerByDistance  = "Available clients sorted by distance to executor:"
)

// FormatReport renders the ranked report as plain text. The wording and
// layout are part of the CLI output contract.
func FormatReport(report RankedReport) (string, error) {
	if len(report.Eligible) == 0 {
		return "", domain.ErrNoEligibleClients
	}

	var b strings.Builder

	if len(report.Eligible) == report.Total {
		b.WriteString(summaryAllMet)
	} else {
		fmt.Fprintf(&b, summaryPartialFmt, len(report.Eligible), report.Total)
	}
	b.WriteString("\n\n")

	if report.SortBy == SortByReward {
		b.WriteString(headerByReward)
	} else {
		b.WriteString(headerByDistance)
	}

	for _, stat := range report.Eligible {
		b.WriteString("\n")
		fmt.Fprintf(&b, "name: %s, distance: %.3f, reward: %s", stat.Client.Name, stat.Distance, stat.Client.Reward)
	}

	return b.String(), nil
}

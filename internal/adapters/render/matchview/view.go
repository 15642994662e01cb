package matchview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/veltraco/dispatch-match-cli/internal/application"
	"github.com/veltraco/dispatch-match-cli/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Dispatch Match"),
		s.header.Render(fmt.Sprintf("clients: %d, eligible: %d", len(snapshot.Clients), countEligible(snapshot.Clients))),
		s.section.Render(renderExecutor(snapshot.Executor, s)),
	}

	if len(snapshot.Clients) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No clients in the pool.")))
	} else {
		clientLines := make([]string, 0, len(snapshot.Clients))
		for _, stat := range snapshot.Clients {
			clientLines = append(clientLines, renderClient(stat, s))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, clientLines...)))
	}

	lines = append(lines, s.footer.Render(fetchedAtLine(snapshot.FetchedAt, opts.Now)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderExecutor(executor domain.Executor, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.detail.Render(fmt.Sprintf("executor at (%.1f, %.1f)", executor.Position.X, executor.Position.Y)),
		s.tag.Render("possibilities: "+demandList(executor.Possibilities)),
	)
}

func renderClient(stat application.ClientStat, s styles) string {
	marker := s.ineligible.Render("✗")
	if stat.MeetsDemands {
		marker = s.eligible.Render("✓")
	}

	detail := s.detail.Render(fmt.Sprintf("distance: %.3f, reward: %s", stat.Distance, stat.Client.Reward))

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		marker,
		" ",
		s.clientName.Render(stat.Client.Name),
		"  ",
		detail,
	)

	if len(stat.Client.Demands) > 0 {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, "  ", s.tag.Render("demands: "+demandList(stat.Client.Demands)))
	}

	return line
}

func demandList(demands []domain.Demand) string {
	if len(demands) == 0 {
		return "none"
	}

	tags := make([]string, 0, len(demands))
	for _, demand := range demands {
		tags = append(tags, string(demand))
	}

	return strings.Join(tags, ", ")
}

func countEligible(stats []application.ClientStat) int {
	eligible := 0
	for _, stat := range stats {
		if stat.MeetsDemands {
			eligible++
		}
	}

	return eligible
}

func fetchedAtLine(fetchedAt, now time.Time) string {
	if fetchedAt.IsZero() {
		return "fetched: unknown"
	}
	if now.IsZero() {
		return "fetched: " + fetchedAt.Format(time.RFC3339)
	}

	age := now.Sub(fetchedAt)
	if age < time.Second {
		return "fetched: just now"
	}

	return fmt.Sprintf("fetched: %s ago", age.Round(time.Second))
}

package matchview

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltraco/dispatch-match-cli/internal/application"
	"github.com/veltraco/dispatch-match-cli/internal/domain"
)

func TestRenderSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.Snapshot{
		Executor: domain.Executor{
			Position:      domain.Position{X: 1, Y: 2},
			Possibilities: []domain.Demand{"towing", "fuel"},
		},
		Clients: []application.ClientStat{
			{
				Client: domain.Client{
					Name:    "Ada",
					Reward:  decimal.RequireFromString("12.5"),
					Demands: []domain.Demand{"towing"},
				},
				Distance:     2.236,
				MeetsDemands: true,
			},
			{
				Client: domain.Client{
					Name:    "Bram",
					Reward:  decimal.NewFromInt(7),
					Demands: []domain.Demand{"lockout"},
				},
				Distance:     4.031,
				MeetsDemands: false,
			},
		},
		FetchedAt: now.Add(-3 * time.Second),
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Dispatch Match")
	assert.Contains(t, output, "clients: 2, eligible: 1")
	assert.Contains(t, output, "executor at (1.0, 2.0)")
	assert.Contains(t, output, "possibilities: towing, fuel")
	assert.Contains(t, output, "Ada")
	assert.Contains(t, output, "distance: 2.236, reward: 12.5")
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "Bram")
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "demands: lockout")
	assert.Contains(t, output, "fetched: 3s ago")
}

func TestRenderEmptySnapshot(t *testing.T) {
	output, err := Render(application.Snapshot{
		Executor: domain.Executor{Possibilities: []domain.Demand{"towing"}},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "clients: 0, eligible: 0")
	assert.Contains(t, output, "No clients in the pool.")
	assert.Contains(t, output, "fetched: unknown")
}

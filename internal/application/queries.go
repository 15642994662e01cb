package application

import (
	"time"

	"github.com/veltraco/dispatch-match-cli/internal/domain"
)

// ClientStat is a per-invocation view of one client evaluated against the
// fetched executor. It is derived, never persisted.
type ClientStat struct {
	Client       domain.Client
	Distance     float64
	MeetsDemands bool
}

type Snapshot struct {
	Executor  domain.Executor
	Clients   []ClientStat
	FetchedAt time.Time
}

type RankedReport struct {
	Total    int
	Eligible []ClientStat
	SortBy   SortBy
}

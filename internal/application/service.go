package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/veltraco/dispatch-match-cli/internal/domain"
	"github.com/veltraco/dispatch-match-cli/internal/ports"
)

type ReportService struct {
	clients   ports.ClientSource
	executors ports.ExecutorSource
	distance  domain.DistanceFunc
	clock     ports.Clock
	logger    zerolog.Logger
}

func NewReportService(clients ports.ClientSource, executors ports.ExecutorSource, distance domain.DistanceFunc, clock ports.Clock) *ReportService {
	if distance == nil {
		distance = domain.EuclideanDistance
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ReportService{
		clients:   clients,
		executors: executors,
		distance:  distance,
		clock:     clock,
		logger:    zerolog.Nop(),
	}
}

func (s *ReportService) SetLogger(l zerolog.Logger) {
	s.logger = l
}

// Snapshot fetches the client pool and the executor concurrently, waits for
// both, and evaluates every client against the executor. When both fetches
// fail the clients error takes precedence.
func (s *ReportService) Snapshot(ctx context.Context) (Snapshot, error) {
	var (
		clients     []domain.Client
		clientsErr  error
		executor    domain.Executor
		executorErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		clients, clientsErr = s.clients.FetchClients(ctx)
		return nil
	})
	g.Go(func() error {
		executor, executorErr = s.executors.FetchExecutor(ctx)
		return nil
	})
	_ = g.Wait()

	if clientsErr != nil {
		return Snapshot{}, clientsErr
	}
	if executorErr != nil {
		return Snapshot{}, executorErr
	}

	stats := make([]ClientStat, 0, len(clients))
	for _, client := range clients {
		stats = append(stats, ClientStat{
			Client:       client,
			Distance:     s.distance(client.Position, executor.Position),
			MeetsDemands: executor.MeetsDemands(client),
		})
	}

	s.logger.Debug().Int("clients", len(stats)).Msg("snapshot assembled")

	return Snapshot{Executor: executor, Clients: stats, FetchedAt: s.clock.Now()}, nil
}

// Report runs the pipeline up to ranking: fetch, evaluate, keep eligible
// clients, order them by the requested key.
func (s *ReportService) Report(ctx context.Context, sortBy SortBy) (RankedReport, error) {
	if !sortBy.Valid() {
		return RankedReport{}, fmt.Errorf("%w: %q", ErrUnsupportedSortKey, sortBy)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return RankedReport{}, err
	}

	return rankEligible(snap, sortBy)
}

// GenerateReport runs the full pipeline and renders the report text.
func (s *ReportService) GenerateReport(ctx context.Context, sortBy SortBy) (string, error) {
	report, err := s.Report(ctx, sortBy)
	if err != nil {
		return "", err
	}

	return FormatReport(report)
}

func rankEligible(snap Snapshot, sortBy SortBy) (RankedReport, error) {
	eligible := make([]ClientStat, 0, len(snap.Clients))
	for _, stat := range snap.Clients {
		if !stat.MeetsDemands {
			continue
		}
		eligible = append(eligible, stat)
	}

	if len(eligible) == 0 {
		return RankedReport{}, domain.ErrNoEligibleClients
	}

	// SliceStable keeps fetch order for equal keys; there is no secondary key.
	switch sortBy {
	case SortByReward:
		sort.SliceStable(eligible, func(i, j int) bool {
			return eligible[i].Client.Reward.GreaterThan(eligible[j].Client.Reward)
		})
	default:
		sort.SliceStable(eligible, func(i, j int) bool {
			return eligible[i].Distance < eligible[j].Distance
		})
	}

	return RankedReport{Total: len(snap.Clients), Eligible: eligible, SortBy: sortBy}, nil
}

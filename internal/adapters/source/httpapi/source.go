// Package httpapi fetches clients and the executor from the dispatch HTTP
// API. One GET per data set, JSON payloads, no retries.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/veltraco/dispatch-match-cli/internal/domain"
	"github.com/veltraco/dispatch-match-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

type Source struct {
	client  *http.Client
	baseURL string
	logger  zerolog.Logger
}

var (
	_ ports.ClientSource   = (*Source)(nil)
	_ ports.ExecutorSource = (*Source)(nil)
)

func NewSource(client *http.Client, baseURL string) *Source {
	if client == nil {
		client = http.DefaultClient
	}

	return &Source{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zerolog.Nop(),
	}
}

func (s *Source) SetLogger(l zerolog.Logger) {
	s.logger = l.With().Str("component", "httpapi").Logger()
}

type positionPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// clientPayload keeps demands as a pointer: the wire format distinguishes a
// literal null (no requirements) from a list, and both must survive decoding.
// Reward decodes through decimal, which accepts both bare and quoted numbers.
type clientPayload struct {
	Name     string          `json:"name"`
	Position positionPayload `json:"position"`
	Reward   decimal.Decimal `json:"reward"`
	Demands  *[]string       `json:"demands"`
}

type executorPayload struct {
	Position      positionPayload `json:"position"`
	Possibilities []string        `json:"possibilities"`
}

func (s *Source) FetchClients(ctx context.Context) ([]domain.Client, error) {
	body, err := s.get(ctx, "/clients")
	if err != nil {
		return nil, fmt.Errorf("fetch clients: %w", err)
	}

	var payloads []clientPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("fetch clients: decode payload: %w", err)
	}

	clients := make([]domain.Client, 0, len(payloads))
	for _, payload := range payloads {
		clients = append(clients, payload.toDomain())
	}

	s.logger.Debug().Int("clients", len(clients)).Msg("clients fetched")

	return clients, nil
}

func (s *Source) FetchExecutor(ctx context.Context) (domain.Executor, error) {
	body, err := s.get(ctx, "/executor")
	if err != nil {
		return domain.Executor{}, fmt.Errorf("fetch executor: %w", err)
	}

	var payload executorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Executor{}, fmt.Errorf("fetch executor: decode payload: %w", err)
	}

	possibilities := make([]domain.Demand, 0, len(payload.Possibilities))
	for _, tag := range payload.Possibilities {
		possibilities = append(possibilities, domain.Demand(tag))
	}

	s.logger.Debug().Int("possibilities", len(possibilities)).Msg("executor fetched")

	return domain.Executor{
		Position:      domain.Position{X: payload.Position.X, Y: payload.Position.Y},
		Possibilities: possibilities,
	}, nil
}

func (s *Source) get(ctx context.Context, path string) ([]byte, error) {
	endpoint := s.baseURL + path
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "dm/report")

	s.logger.Debug().Str("endpoint", endpoint).Msg("request started")

	response, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

func (p clientPayload) toDomain() domain.Client {
	// A null or absent demands field decodes to a nil slice: no requirements.
	var demands []domain.Demand
	if p.Demands != nil {
		demands = make([]domain.Demand, 0, len(*p.Demands))
		for _, tag := range *p.Demands {
			demands = append(demands, domain.Demand(tag))
		}
	}

	return domain.Client{
		Name:     p.Name,
		Position: domain.Position{X: p.Position.X, Y: p.Position.Y},
		Reward:   p.Reward,
		Demands:  demands,
	}
}

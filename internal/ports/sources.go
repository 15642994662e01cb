package ports

import (
	"context"

	"github.com/veltraco/dispatch-match-cli/internal/domain"
)

type ClientSource interface {
	FetchClients(ctx context.Context) ([]domain.Client, error)
}

type ExecutorSource interface {
	FetchExecutor(ctx context.Context) (domain.Executor, error)
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"result_ingestor/internal/domain"
)

type Source interface {
	ID() string
	Name() string
	FetchResults(ctx context.Context, compType string) ([]domain.ProviderResult, error)
}

type EventIDMapStore interface {
	GetEventIDs(ctx context.Context, apiEventIDs []string) (map[string]int64, error)
}

type ResultMappingStore interface {
	GetByAPIEventIDs(ctx context.Context, apiEventIDs []string) (map[string]domain.ResultEventMapping, error)
	ApplyResult(ctx context.Context, r domain.AppliedResult) (*domain.ResultEventMapping, error)
	ListCompleted(ctx context.Context) ([]domain.ResultEventMapping, error)
	Reset(ctx context.Context, apiEventID string) (bool, error)
}

type IngestStateStore interface {
	Get(ctx context.Context, compType string) (*domain.IngestState, error)
	Update(ctx context.Context, state *domain.IngestState) error
	IncrementApplied(ctx context.Context, compType string, n int) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, mapping *domain.ResultEventMapping) error
	Close() error
}

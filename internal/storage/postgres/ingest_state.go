package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"result_ingestor/internal/domain"
)

type IngestStateStore struct {
	db *sqlx.DB
}

func NewIngestStateStore(db *sqlx.DB) *IngestStateStore {
	return &IngestStateStore{db: db}
}

func (s *IngestStateStore) Get(ctx context.Context, compType string) (*domain.IngestState, error) {
	var state domain.IngestState
	query := `
		SELECT comp_type, last_synced_at, last_status_code, total_applied
		FROM ingest_state
		WHERE comp_type = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, compType)
	if errors.Is(err, sql.ErrNoRows) {
		// Competitions never ingested start empty
		return &domain.IngestState{CompType: compType}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Update records the outcome of the last run. total_applied is owned by
// IncrementApplied and is not overwritten here.
func (s *IngestStateStore) Update(ctx context.Context, state *domain.IngestState) error {
	query := `
		INSERT INTO ingest_state (comp_type, last_synced_at, last_status_code, total_applied)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (comp_type) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			last_status_code = EXCLUDED.last_status_code`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.CompType,
		state.LastSyncedAt,
		state.LastStatusCode,
	)
	return err
}

func (s *IngestStateStore) IncrementApplied(ctx context.Context, compType string, n int) error {
	query := `
		INSERT INTO ingest_state (comp_type, last_synced_at, last_status_code, total_applied)
		VALUES ($1, now(), 0, $2)
		ON CONFLICT (comp_type) DO UPDATE SET
			total_applied = ingest_state.total_applied + EXCLUDED.total_applied`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, compType, n)
	return err
}

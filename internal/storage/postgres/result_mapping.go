package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"result_ingestor/internal/domain"
)

const mappingColumns = `event_id, api_event_id, comp_type, completed, outcome, score, last_updated_dt`

type ResultMappingStore struct {
	db *sqlx.DB
}

func NewResultMappingStore(db *sqlx.DB) *ResultMappingStore {
	return &ResultMappingStore{db: db}
}

func (s *ResultMappingStore) GetByAPIEventIDs(ctx context.Context, apiEventIDs []string) (map[string]domain.ResultEventMapping, error) {
	if len(apiEventIDs) == 0 {
		return make(map[string]domain.ResultEventMapping), nil
	}

	query := `SELECT ` + mappingColumns + ` FROM result_event_mapping WHERE api_event_id = ANY($1)`

	var rows []domain.ResultEventMapping
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, pq.Array(apiEventIDs)); err != nil {
		return nil, err
	}

	result := make(map[string]domain.ResultEventMapping, len(rows))
	for _, m := range rows {
		result[m.APIEventID] = m
	}
	return result, nil
}

// ApplyResult completes an open mapping. The guard is evaluated by the same
// statement that writes, so of two concurrent callers only one gets a row
// back. A nil mapping means the record was no longer open.
func (s *ResultMappingStore) ApplyResult(ctx context.Context, r domain.AppliedResult) (*domain.ResultEventMapping, error) {
	query := `
		UPDATE result_event_mapping SET
			completed = true,
			score = $2,
			outcome = $3,
			last_updated_dt = $4
		WHERE api_event_id = $1
			AND completed = false
			AND COALESCE(score, '') = ''
			AND COALESCE(outcome, '') = ''
		RETURNING ` + mappingColumns

	var m domain.ResultEventMapping
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		r.APIEventID,
		r.Score,
		r.Outcome,
		r.UpdatedAt,
	).StructScan(&m)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ResultMappingStore) ListCompleted(ctx context.Context) ([]domain.ResultEventMapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM result_event_mapping WHERE completed = true ORDER BY event_id`

	mappings := []domain.ResultEventMapping{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &mappings, query)
	return mappings, err
}

// Reset reopens a mapping. It is the only way to modify a completed record.
func (s *ResultMappingStore) Reset(ctx context.Context, apiEventID string) (bool, error) {
	query := `
		UPDATE result_event_mapping SET
			completed = false,
			score = NULL,
			outcome = NULL,
			last_updated_dt = NULL
		WHERE api_event_id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, apiEventID)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

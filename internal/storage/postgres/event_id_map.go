package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"result_ingestor/internal/domain"
)

// EventIDMapStore reads the provider to internal event id correlation.
type EventIDMapStore struct {
	db *sqlx.DB
}

func NewEventIDMapStore(db *sqlx.DB) *EventIDMapStore {
	return &EventIDMapStore{db: db}
}

func (s *EventIDMapStore) GetEventIDs(ctx context.Context, apiEventIDs []string) (map[string]int64, error) {
	if len(apiEventIDs) == 0 {
		return make(map[string]int64), nil
	}

	query := `SELECT event_id, api_event_id, comp_type FROM event_id_map WHERE api_event_id = ANY($1)`

	var rows []domain.EventIDMap
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, pq.Array(apiEventIDs)); err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.APIEventID] = r.EventID
	}
	return result, nil
}

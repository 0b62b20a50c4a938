package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"result_ingestor/internal/config"
	"result_ingestor/internal/domain"
	"result_ingestor/internal/metrics"
	"result_ingestor/internal/result"
)

// ResultService runs the fetch, map, classify, gate and persist pipeline and
// serves the result read operations.
type ResultService struct {
	source      Source
	eventIDs    EventIDMapStore
	mappings    ResultMappingStore
	ingestState IngestStateStore
	txManager   TransactionManager
	publisher   Publisher
	metrics     *metrics.Manager
	logger      *slog.Logger
	config      config.SyncConfig
	now         func() time.Time
}

func NewResultService(
	source Source,
	eventIDs EventIDMapStore,
	mappings ResultMappingStore,
	ingestState IngestStateStore,
	txManager TransactionManager,
	publisher Publisher,
	metricsManager *metrics.Manager,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *ResultService {
	return &ResultService{
		source:      source,
		eventIDs:    eventIDs,
		mappings:    mappings,
		ingestState: ingestState,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metricsManager,
		logger:      logger.With("source", source.ID()),
		config:      cfg,
		now:         time.Now,
	}
}

// RetrieveResults fetches and maps the latest results of a competition.
// Failures are reported through the status code, never as an error.
func (s *ResultService) RetrieveResults(ctx context.Context, compType string) domain.ResultResponse {
	_, events, err := s.fetchAndMap(ctx, compType)
	if err != nil {
		s.logger.Warn("retrieve results failed", "comp_type", compType, "error", err)
		code := statusCode(err)
		return domain.ResultResponse{
			StatusCode:    code,
			ResultMessage: statusMessage(code),
		}
	}

	return domain.ResultResponse{
		ResultEvent: events,
		StatusCode:  domain.StatusOK,
	}
}

// RetrieveCompletedResults returns every completed mapping in store order.
func (s *ResultService) RetrieveCompletedResults(ctx context.Context) ([]domain.ResultEventMapping, error) {
	mappings, err := s.mappings.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return mappings, nil
}

// IngestState returns the last recorded ingestion of a competition.
func (s *ResultService) IngestState(ctx context.Context, compType string) (*domain.IngestState, error) {
	state, err := s.ingestState.Get(ctx, compType)
	if err != nil {
		return nil, fmt.Errorf("get ingest state: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return state, nil
}

// ResetResult reopens a mapping so the next ingestion can apply it again.
func (s *ResultService) ResetResult(ctx context.Context, apiEventID string) error {
	ok, err := s.mappings.Reset(ctx, apiEventID)
	if err != nil {
		return fmt.Errorf("reset result: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("mapping %s: %w", apiEventID, domain.ErrNotFound)
	}

	s.logger.Info("result reset", "api_event_id", apiEventID)
	return nil
}

// Sync ingests every configured competition. Provider and mapping failures
// are confined to their competition; store and data-integrity failures stop
// the cycle.
func (s *ResultService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	s.logger.Info("starting sync",
		"source_name", s.source.Name(),
		"competitions", s.config.Competitions,
	)

	stats := &domain.SyncStats{}
	for _, compType := range s.config.Competitions {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		compStats, err := s.Ingest(ctx, compType)
		if compStats != nil {
			stats.Competitions = append(stats.Competitions, *compStats)
			stats.Applied += compStats.Applied
		}
		if err == nil {
			continue
		}

		if errors.Is(err, domain.ErrProviderUnavailable) || errors.Is(err, domain.ErrMappingFailed) {
			stats.Failed++
			continue
		}
		return stats, fmt.Errorf("ingest %s: %w", compType, err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"competitions", len(stats.Competitions),
		"applied", stats.Applied,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)

	return stats, nil
}

// Ingest runs one ingestion of a competition. Each open mapping whose event
// the provider reports as completed is written exactly once.
func (s *ResultService) Ingest(ctx context.Context, compType string) (*domain.IngestStats, error) {
	startTime := time.Now()
	stats := &domain.IngestStats{CompType: compType}

	err := s.ingest(ctx, stats)
	stats.Duration = time.Since(startTime)
	s.metrics.RecordIngest(compType, statusLabel(err), stats.Duration)

	if err != nil {
		s.logger.Error("ingest failed",
			"comp_type", compType,
			"status_code", stats.StatusCode,
			"error", err,
		)
		return stats, err
	}

	s.logger.Info("ingest completed",
		"comp_type", compType,
		"fetched", stats.Fetched,
		"completed", stats.Completed,
		"applied", stats.Applied,
		"rejected", stats.Rejected,
		"unmapped", stats.Unmapped,
		"published", stats.Published,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (s *ResultService) ingest(ctx context.Context, stats *domain.IngestStats) error {
	raw, events, err := s.fetchAndMap(ctx, stats.CompType)
	if err != nil {
		stats.StatusCode = statusCode(err)
		if stateErr := s.updateIngestState(ctx, stats); stateErr != nil {
			return errors.Join(err, stateErr)
		}
		return err
	}
	stats.Fetched = len(events)

	finished := completedResults(raw)
	stats.Completed = len(finished)

	if err := s.applyResults(ctx, stats, finished); err != nil {
		return err
	}

	return s.updateIngestState(ctx, stats)
}

func (s *ResultService) fetchAndMap(ctx context.Context, compType string) ([]domain.ProviderResult, []domain.ResultEvent, error) {
	raw, err := s.source.FetchResults(ctx, compType)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch results: %w: %w", domain.ErrProviderUnavailable, err)
	}

	events, err := result.Map(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("map results: %w: %w", domain.ErrMappingFailed, err)
	}

	return raw, events, nil
}

func (s *ResultService) applyResults(ctx context.Context, stats *domain.IngestStats, finished []domain.ProviderResult) error {
	if len(finished) == 0 {
		return nil
	}

	apiEventIDs := make([]string, len(finished))
	for i, r := range finished {
		apiEventIDs[i] = r.ID
	}

	known, err := s.eventIDs.GetEventIDs(ctx, apiEventIDs)
	if err != nil {
		return fmt.Errorf("lookup event ids: %w: %w", domain.ErrStoreUnavailable, err)
	}

	mapped := make([]string, 0, len(apiEventIDs))
	for _, id := range apiEventIDs {
		if _, ok := known[id]; ok {
			mapped = append(mapped, id)
		}
	}

	existing := map[string]domain.ResultEventMapping{}
	if len(mapped) > 0 {
		existing, err = s.mappings.GetByAPIEventIDs(ctx, mapped)
		if err != nil {
			return fmt.Errorf("load mappings: %w: %w", domain.ErrStoreUnavailable, err)
		}
	}

	for _, r := range finished {
		m, ok := existing[r.ID]
		if !ok {
			stats.Unmapped++
			s.logger.Debug("no mapping for result", "api_event_id", r.ID)
			continue
		}

		if !result.CanApplyUpdate(m) {
			stats.Rejected++
			s.metrics.RecordRejected(stats.CompType)
			continue
		}

		if err := s.applyOne(ctx, stats, r); err != nil {
			return err
		}
	}

	s.metrics.RecordUnmapped(stats.CompType, stats.Unmapped)
	return nil
}

func (s *ResultService) applyOne(ctx context.Context, stats *domain.IngestStats, r domain.ProviderResult) error {
	home, _ := r.HomeScore()
	away, _ := r.AwayScore()

	outcome, err := result.ClassifyOutcome(home, away)
	if err != nil {
		return fmt.Errorf("classify event %s: %w", r.ID, err)
	}

	applied, err := s.saveResult(ctx, stats.CompType, domain.AppliedResult{
		APIEventID: r.ID,
		Score:      result.FormatScore(r),
		Outcome:    outcome,
		UpdatedAt:  s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save result %s: %w: %w", r.ID, domain.ErrStoreUnavailable, err)
	}

	if applied == nil {
		// Completed by a concurrent ingestion after the mappings were read
		stats.Rejected++
		s.metrics.RecordRejected(stats.CompType)
		return nil
	}

	stats.Applied++
	s.metrics.RecordApplied(stats.CompType)
	s.logger.Info("result applied",
		"event_id", applied.EventID,
		"api_event_id", applied.APIEventID,
		"outcome", outcome,
	)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, applied); err != nil {
			stats.Errors++
			s.metrics.RecordPublishError()
			s.logger.Error("publish result failed", "api_event_id", applied.APIEventID, "error", err)
		} else {
			stats.Published++
		}
	}

	return nil
}

func (s *ResultService) saveResult(ctx context.Context, compType string, r domain.AppliedResult) (*domain.ResultEventMapping, error) {
	var applied *domain.ResultEventMapping

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		m, err := s.mappings.ApplyResult(txCtx, r)
		if err != nil {
			return fmt.Errorf("apply result: %w", err)
		}
		if m == nil {
			return nil
		}

		if err := s.ingestState.IncrementApplied(txCtx, compType, 1); err != nil {
			return fmt.Errorf("increment applied: %w", err)
		}

		applied = m
		return nil
	})

	return applied, err
}

func (s *ResultService) updateIngestState(ctx context.Context, stats *domain.IngestStats) error {
	err := s.ingestState.Update(ctx, &domain.IngestState{
		CompType:       stats.CompType,
		LastSyncedAt:   s.now().UTC(),
		LastStatusCode: stats.StatusCode,
	})
	if err != nil {
		return fmt.Errorf("update ingest state: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// completedResults keeps the provider records that carry a final score.
func completedResults(raw []domain.ProviderResult) []domain.ProviderResult {
	var finished []domain.ProviderResult
	for _, r := range raw {
		if !r.Completed {
			continue
		}
		if _, ok := r.HomeScore(); !ok {
			continue
		}
		if _, ok := r.AwayScore(); !ok {
			continue
		}
		finished = append(finished, r)
	}
	return finished
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrProviderUnavailable):
		return domain.StatusProviderUnavailable
	case errors.Is(err, domain.ErrMappingFailed):
		return domain.StatusMappingFailed
	default:
		return domain.StatusOK
	}
}

func statusMessage(code int) string {
	switch code {
	case domain.StatusProviderUnavailable:
		return domain.MsgProviderUnavailable
	case domain.StatusMappingFailed:
		return domain.MsgDateParse
	default:
		return ""
	}
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, domain.ErrMappingFailed):
		return "mapping_failed"
	case errors.Is(err, domain.ErrInvalidScore):
		return "invalid_score"
	default:
		return "store_unavailable"
	}
}

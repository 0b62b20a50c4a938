// Package result holds the pure result-processing rules: mapping provider
// records into result events, classifying outcomes and gating updates.
package result

import (
	"fmt"
	"time"

	"result_ingestor/internal/domain"
)

// ProviderTimeLayout is the fixed start time format of the results provider.
const ProviderTimeLayout = "2006-01-02T15:04:05Z"

// Map converts provider records into result events. A single unparsable
// start time fails the whole batch and no events are returned.
func Map(raw []domain.ProviderResult) ([]domain.ResultEvent, error) {
	events := make([]domain.ResultEvent, 0, len(raw))

	for _, r := range raw {
		event, err := mapOne(r)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func mapOne(r domain.ProviderResult) (domain.ResultEvent, error) {
	startTime, err := time.Parse(ProviderTimeLayout, r.CommenceTime)
	if err != nil {
		return domain.ResultEvent{}, fmt.Errorf("event %s start time %q: %w", r.ID, r.CommenceTime, domain.ErrDateParse)
	}

	return domain.ResultEvent{
		HomeTeam:    r.HomeTeam,
		AwayTeam:    r.AwayTeam,
		EventDesc:   r.HomeTeam + " vs " + r.AwayTeam,
		StartTime:   startTime,
		Score:       FormatScore(r),
		Competition: r.SportTitle,
	}, nil
}

// FormatScore renders the provider scores as "H-A", or an empty string when
// either side has not been reported.
func FormatScore(r domain.ProviderResult) string {
	home, okHome := r.HomeScore()
	away, okAway := r.AwayScore()
	if !okHome || !okAway {
		return ""
	}
	return home + "-" + away
}

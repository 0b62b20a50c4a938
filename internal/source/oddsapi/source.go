package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"result_ingestor/internal/domain"
)

const (
	SourceID   = "oddsapi"
	SourceName = "The Odds API scores"
)

// Config holds results provider configuration.
type Config struct {
	BaseURL  string
	APIKey   string
	DaysFrom int
	Timeout  time.Duration
}

// Source fetches raw results from the provider. Failures are returned as is;
// the next scheduled cycle is the retry.
type Source struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	daysFrom   int
	logger     *slog.Logger
}

// New creates a new provider source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		daysFrom: cfg.DaysFrom,
		logger:   logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchResults fetches the raw results of one competition.
func (s *Source) FetchResults(ctx context.Context, compType string) ([]domain.ProviderResult, error) {
	reqURL, err := s.buildURL(compType)
	if err != nil {
		return nil, err
	}

	apiResults, err := s.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetched results",
		"comp_type", compType,
		"results", len(apiResults),
	)

	return toDomain(apiResults), nil
}

func (s *Source) buildURL(compType string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("competition", compType)
	if s.apiKey != "" {
		q.Set("apiKey", s.apiKey)
	}
	if s.daysFrom > 0 {
		q.Set("daysFrom", strconv.Itoa(s.daysFrom))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (s *Source) doRequest(ctx context.Context, url string) ([]APIResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ResultIngestor/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var results []APIResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return results, nil
}

func toDomain(results []APIResult) []domain.ProviderResult {
	out := make([]domain.ProviderResult, 0, len(results))

	for _, r := range results {
		pr := domain.ProviderResult{
			ID:           r.ID,
			SportKey:     r.SportKey,
			SportTitle:   r.SportTitle,
			CommenceTime: r.CommenceTime,
			Completed:    r.Completed,
			HomeTeam:     r.HomeTeam,
			AwayTeam:     r.AwayTeam,
			LastUpdate:   r.LastUpdate,
		}
		for _, sc := range r.Scores {
			pr.Scores = append(pr.Scores, domain.ProviderScore{
				Name:  sc.Name,
				Score: sc.Score,
			})
		}
		out = append(out, pr)
	}

	return out
}

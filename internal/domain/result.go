package domain

import "time"

// Outcome codes of a finished match.
const (
	OutcomeHomeWin = "01"
	OutcomeDraw    = "02"
	OutcomeAwayWin = "03"
)

// ProviderResult is a raw record as returned by the results provider.
type ProviderResult struct {
	ID           string
	SportKey     string
	SportTitle   string
	CommenceTime string
	Completed    bool
	HomeTeam     string
	AwayTeam     string
	Scores       []ProviderScore
	LastUpdate   *string
}

type ProviderScore struct {
	Name  string
	Score string
}

// HomeScore returns the score reported for the home team.
func (r ProviderResult) HomeScore() (string, bool) {
	return r.scoreOf(r.HomeTeam)
}

// AwayScore returns the score reported for the away team.
func (r ProviderResult) AwayScore() (string, bool) {
	return r.scoreOf(r.AwayTeam)
}

func (r ProviderResult) scoreOf(team string) (string, bool) {
	for _, s := range r.Scores {
		if s.Name == team {
			return s.Score, true
		}
	}
	return "", false
}

// ResultEvent is the normalized read model returned to callers.
type ResultEvent struct {
	HomeTeam    string    `json:"homeTeam"`
	AwayTeam    string    `json:"awayTeam"`
	EventDesc   string    `json:"eventDesc"`
	StartTime   time.Time `json:"startTime"`
	Score       string    `json:"score"`
	Competition string    `json:"competition"`
}

// ResultEventMapping is the persisted completion state of a bettable event,
// keyed by the provider event id.
type ResultEventMapping struct {
	EventID       int64      `db:"event_id" json:"eventId"`
	APIEventID    string     `db:"api_event_id" json:"apiEventId"`
	CompType      string     `db:"comp_type" json:"compType"`
	Completed     bool       `db:"completed" json:"completed"`
	Outcome       *string    `db:"outcome" json:"outcome"`
	Score         *string    `db:"score" json:"score"`
	LastUpdatedDt *time.Time `db:"last_updated_dt" json:"lastUpdatedDt"`
}

// EventIDMap correlates a provider event id with the internal event id.
type EventIDMap struct {
	EventID    int64  `db:"event_id"`
	APIEventID string `db:"api_event_id"`
	CompType   string `db:"comp_type"`
}

// AppliedResult is the data written to an open mapping.
type AppliedResult struct {
	APIEventID string
	Score      string
	Outcome    string
	UpdatedAt  time.Time
}

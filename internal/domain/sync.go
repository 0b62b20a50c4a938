package domain

import "time"

// Status codes reported by result retrieval and ingestion.
const (
	StatusOK                  = 0
	StatusProviderUnavailable = 1
	StatusMappingFailed       = 2
)

const (
	MsgProviderUnavailable = "Error retrieving results from the results provider"
	MsgDateParse           = "Error parsing event start time from the results provider"
)

// ResultResponse is the payload of a result retrieval.
type ResultResponse struct {
	ResultEvent   []ResultEvent `json:"resultEvent"`
	StatusCode    int           `json:"statusCode"`
	ResultMessage string        `json:"resultMessage,omitempty"`
}

// IngestStats holds statistics about a single competition ingestion.
type IngestStats struct {
	CompType   string        `json:"compType"`
	Fetched    int           `json:"fetched"`
	Completed  int           `json:"completed"`
	Unmapped   int           `json:"unmapped"`
	Applied    int           `json:"applied"`
	Rejected   int           `json:"rejected"`
	Published  int           `json:"published"`
	Errors     int           `json:"errors"`
	StatusCode int           `json:"statusCode"`
	Duration   time.Duration `json:"duration"`
}

// SyncStats aggregates the ingestions of one scheduled cycle.
type SyncStats struct {
	Competitions []IngestStats
	Applied      int
	Failed       int
	Duration     time.Duration
}

// IngestState is the persisted outcome of the last ingestion of a competition.
type IngestState struct {
	CompType       string    `db:"comp_type" json:"compType"`
	LastSyncedAt   time.Time `db:"last_synced_at" json:"lastSyncedAt"`
	LastStatusCode int       `db:"last_status_code" json:"lastStatusCode"`
	TotalApplied   int64     `db:"total_applied" json:"totalApplied"`
}

package oddsapi

// APIResult represents a single record of the provider scores response.
type APIResult struct {
	ID           string     `json:"id"`
	SportKey     string     `json:"sport_key"`
	SportTitle   string     `json:"sport_title"`
	CommenceTime string     `json:"commence_time"`
	Completed    bool       `json:"completed"`
	HomeTeam     string     `json:"home_team"`
	AwayTeam     string     `json:"away_team"`
	Scores       []APIScore `json:"scores"`
	LastUpdate   *string    `json:"last_update"`
}

type APIScore struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

package models

// Company is an immutable catalog entry a portfolio can allocate capital to
type Company struct {
	ID            string  `json:"id" toml:"id"`
	Name          string  `json:"name" toml:"name"`
	Ticker        string  `json:"ticker" toml:"ticker"`
	Sector        string  `json:"sector" toml:"sector"`
	Region        string  `json:"region" toml:"region"`
	MarketCap     float64 `json:"market_cap" toml:"market_cap"`
	Price         float64 `json:"price" toml:"price"`
	DividendYield float64 `json:"dividend_yield" toml:"dividend_yield"` // percent, e.g. 3.2
	Volatility    float64 `json:"volatility" toml:"volatility"`         // percent, e.g. 18
}

// RiskOption is one fixed-score answer to a risk question
type RiskOption struct {
	Score int    `json:"score" toml:"score"`
	Text  string `json:"text" toml:"text"`
}

// RiskQuestion is one entry of the risk questionnaire
type RiskQuestion struct {
	ID       string       `json:"id" toml:"id"`
	Question string       `json:"question" toml:"question"`
	Options  []RiskOption `json:"options" toml:"options"`
}

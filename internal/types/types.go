package types

// CandleView is one OHLCV row as rendered by the dashboard.
type CandleView struct {
	Time   int64   `json:"time"` // unix seconds
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type CandlesRequest struct {
	Symbol   string `path:"symbol"`
	Interval string `form:"interval,default=1d"`
}

type CandlesResponse struct {
	Symbol   string       `json:"symbol"`
	Interval string       `json:"interval"`
	Source   string       `json:"source"`
	Live     bool         `json:"live"`
	Candles  []CandleView `json:"candles"`
}

type MetricsRequest struct {
	Symbol   string `path:"symbol"`
	Interval string `form:"interval,default=1d"`
}

type MetricsResponse struct {
	Symbol        string  `json:"symbol"`
	Interval      string  `json:"interval"`
	Source        string  `json:"source"`
	Live          bool    `json:"live"`
	CurrentPrice  float64 `json:"currentPrice"`
	PreviousPrice float64 `json:"previousPrice"`
	ChangeAbs     float64 `json:"changeAbs"`
	ChangePct     float64 `json:"changePct"`
	High24        float64 `json:"high24"`
	Low24         float64 `json:"low24"`
}

type SentimentResponse struct {
	Score     float64  `json:"score"`
	Label     string   `json:"label"`
	Headlines []string `json:"headlines"`
}

type AssetView struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type AssetsResponse struct {
	Assets    []AssetView `json:"assets"`
	Intervals []string    `json:"intervals"`
}

type DashboardRequest struct {
	Symbol   string `path:"symbol"`
	Interval string `form:"interval,default=1d"`
}

type DashboardResponse struct {
	Symbol    string            `json:"symbol"`
	Interval  string            `json:"interval"`
	Source    string            `json:"source"`
	Live      bool              `json:"live"`
	FetchedAt int64             `json:"fetchedAt"` // unix seconds
	Candles   []CandleView      `json:"candles"`
	Metrics   MetricsResponse   `json:"metrics"`
	Sentiment SentimentResponse `json:"sentiment"`
}

// RefreshRequest invalidates one cached series (or everything when
// empty) and re-fetches it fresh.
type RefreshRequest struct {
	Symbol   string `json:"symbol,optional"`
	Interval string `json:"interval,optional,default=1d"`
}

type RefreshResponse struct {
	Refreshed bool   `json:"refreshed"`
	Symbol    string `json:"symbol,omitempty"`
	Interval  string `json:"interval,omitempty"`
	Source    string `json:"source,omitempty"`
	Live      bool   `json:"live"`
}

type ResetResponse struct {
	Cleared bool `json:"cleared"`
}

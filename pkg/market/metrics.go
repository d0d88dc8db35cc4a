package market

// Metrics holds the KPI values the dashboard header renders. All fields
// are derived from the latest series and recomputed on every request.
type Metrics struct {
	CurrentPrice  float64
	PreviousPrice float64
	ChangeAbs     float64
	ChangePct     float64
	High24        float64
	Low24         float64
}

// metricsWindow is the number of trailing candles used for the 24-period
// high/low. Shorter series use every candle.
const metricsWindow = 24

// ComputeMetrics derives the KPI set from a candle series. A single-row
// series yields zero change; an empty series yields zero metrics.
func ComputeMetrics(series Series) Metrics {
	if len(series) == 0 {
		return Metrics{}
	}

	current := series[len(series)-1].Close
	previous := current
	if len(series) > 1 {
		previous = series[len(series)-2].Close
	}

	m := Metrics{
		CurrentPrice:  current,
		PreviousPrice: previous,
		ChangeAbs:     current - previous,
	}
	if previous != 0 {
		m.ChangePct = m.ChangeAbs / previous * 100
	}

	window := series
	if len(series) >= metricsWindow {
		window = series[len(series)-metricsWindow:]
	}
	m.High24 = window[0].High
	m.Low24 = window[0].Low
	for _, candle := range window[1:] {
		if candle.High > m.High24 {
			m.High24 = candle.High
		}
		if candle.Low < m.Low24 {
			m.Low24 = candle.Low
		}
	}
	return m
}

package ohlc

// Config holds the candlestick options. It is read-only during a draw cycle.
type Config struct {
	RangeWidth      float64 `yaml:"rangeWidth" json:"rangeWidth"`
	RangeColor      string  `yaml:"rangeColor" json:"rangeColor"`
	OHLCBarWidth    float64 `yaml:"ohlcBarWidth" json:"ohlcBarWidth"`
	AvgThicknessMul float64 `yaml:"avgThicknessMul" json:"avgThicknessMul"`
	// BodyWidth is accepted for compatibility; geometry does not read it.
	BodyWidth string `yaml:"bodyWidth" json:"bodyWidth"`
}

func DefaultConfig() Config {
	return Config{
		RangeWidth:      4,
		RangeColor:      "rgb(255,255,255)",
		OHLCBarWidth:    0.5,
		AvgThicknessMul: 3.0,
		BodyWidth:       "80%",
	}
}

package dto

// PricePoint is one daily OHLCV bar of a stock's history.
type PricePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Stock is a catalog record with embedded daily price history.
// The engines only read it, never mutate it.
type Stock struct {
	Ticker        string       `json:"ticker"`
	Name          string       `json:"name"`
	Sector        string       `json:"sector"`
	Description   string       `json:"description"`
	Price         float64      `json:"price"`
	PreviousClose float64      `json:"previous_close"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"change_percent"`
	MarketCap     float64      `json:"market_cap"`
	Volume        float64      `json:"volume"`
	AvgVolume     float64      `json:"avg_volume"`
	High52Week    float64      `json:"high_52_week"`
	Low52Week     float64      `json:"low_52_week"`
	PE            *float64     `json:"pe"`
	EPS           *float64     `json:"eps"`
	Dividend      *float64     `json:"dividend"`
	Beta          float64      `json:"beta"`
	PriceHistory  []PricePoint `json:"price_history"`
}

// StockSummary is the list-view projection of a stock plus its rating headline.
type StockSummary struct {
	Ticker        string      `json:"ticker"`
	Name          string      `json:"name"`
	Sector        string      `json:"sector"`
	Price         float64     `json:"price"`
	ChangePercent float64     `json:"change_percent"`
	MarketCap     string      `json:"market_cap"`
	Rating        int         `json:"rating"`
	RatingLabel   RatingLabel `json:"rating_label"`
	RatingColor   RatingColor `json:"rating_color"`
}

// StockDetail bundles a stock with its full derived analysis.
type StockDetail struct {
	Stock      *Stock           `json:"stock"`
	Rating     *StockRating     `json:"rating"`
	Prediction *StockPrediction `json:"prediction"`
}

package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"

	"gopkg.in/yaml.v3"
)

//go:embed stocks.yaml
var seedData []byte

type seedFile struct {
	Stocks []seedStock `yaml:"stocks"`
}

type seedStock struct {
	Ticker      string   `yaml:"ticker"`
	Name        string   `yaml:"name"`
	Sector      string   `yaml:"sector"`
	Description string   `yaml:"description"`
	BasePrice   float64  `yaml:"base_price"`
	MarketCap   float64  `yaml:"market_cap"`
	AvgVolume   float64  `yaml:"avg_volume"`
	PE          *float64 `yaml:"pe"`
	EPS         *float64 `yaml:"eps"`
	Dividend    *float64 `yaml:"dividend"`
	Beta        float64  `yaml:"beta"`
	Drift       float64  `yaml:"drift"`
	DailyVol    float64  `yaml:"daily_vol"`
}

// Catalog holds the mocked stock universe. Stocks are seeded from the
// embedded YAML file and given a deterministic synthetic price history, so
// the same build always produces the same catalog. Reads hand out copies;
// only Advance mutates, under the write lock.
type Catalog struct {
	log *logger.Logger

	mu     sync.RWMutex
	stocks map[string]*dto.Stock
	order  []string
	seeds  map[string]seedStock
	bars   int
}

// New builds the catalog with historyDays business days of synthetic history
// ending today.
func New(log *logger.Logger, historyDays int) (*Catalog, error) {
	if historyDays < 1 {
		return nil, fmt.Errorf("history days must be at least 1, got %d", historyDays)
	}

	var file seedFile
	if err := yaml.Unmarshal(seedData, &file); err != nil {
		return nil, fmt.Errorf("parse stock seed: %w", err)
	}
	if len(file.Stocks) == 0 {
		return nil, fmt.Errorf("stock seed is empty")
	}

	c := &Catalog{
		log:    log,
		stocks: make(map[string]*dto.Stock, len(file.Stocks)),
		order:  make([]string, 0, len(file.Stocks)),
		seeds:  make(map[string]seedStock, len(file.Stocks)),
		bars:   historyDays,
	}

	end := time.Now()
	for _, seed := range file.Stocks {
		history := generateHistory(seed.Ticker, seed.BasePrice, seed.Drift, seed.DailyVol, seed.AvgVolume, historyDays, end)
		stock := &dto.Stock{
			Ticker:       seed.Ticker,
			Name:         seed.Name,
			Sector:       seed.Sector,
			Description:  seed.Description,
			MarketCap:    seed.MarketCap,
			AvgVolume:    seed.AvgVolume,
			PE:           seed.PE,
			EPS:          seed.EPS,
			Dividend:     seed.Dividend,
			Beta:         seed.Beta,
			PriceHistory: history,
		}
		deriveQuote(stock)

		c.stocks[seed.Ticker] = stock
		c.order = append(c.order, seed.Ticker)
		c.seeds[seed.Ticker] = seed
	}

	log.Info("stock catalog loaded",
		logger.IntField("stocks", len(c.order)),
		logger.IntField("history_days", historyDays),
	)
	return c, nil
}

// deriveQuote refreshes the quote fields from the price history tail.
func deriveQuote(s *dto.Stock) {
	n := len(s.PriceHistory)
	last := s.PriceHistory[n-1]
	s.Price = last.Close
	s.Volume = last.Volume
	if n > 1 {
		s.PreviousClose = s.PriceHistory[n-2].Close
	} else {
		s.PreviousClose = last.Open
	}
	s.Change = s.Price - s.PreviousClose
	if s.PreviousClose != 0 {
		s.ChangePercent = s.Change / s.PreviousClose * 100
	} else {
		s.ChangePercent = 0
	}

	high, low := math.Inf(-1), math.Inf(1)
	for _, p := range lastYear(s.PriceHistory) {
		high = math.Max(high, p.High)
		low = math.Min(low, p.Low)
	}
	s.High52Week = high
	s.Low52Week = low
}

func lastYear(history []dto.PricePoint) []dto.PricePoint {
	if len(history) <= 252 {
		return history
	}
	return history[len(history)-252:]
}

// All returns copies of every stock in seed order.
func (c *Catalog) All() []*dto.Stock {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stocks := make([]*dto.Stock, 0, len(c.order))
	for _, ticker := range c.order {
		stocks = append(stocks, copyStock(c.stocks[ticker]))
	}
	return stocks
}

// Get returns a copy of the stock for the ticker, or false when unknown.
func (c *Catalog) Get(ticker string) (*dto.Stock, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stock, ok := c.stocks[strings.ToUpper(strings.TrimSpace(ticker))]
	if !ok {
		return nil, false
	}
	return copyStock(stock), true
}

// Trending returns the n stocks with the largest absolute daily move.
func (c *Catalog) Trending(n int) []*dto.Stock {
	stocks := c.All()
	sort.SliceStable(stocks, func(i, j int) bool {
		return math.Abs(stocks[i].ChangePercent) > math.Abs(stocks[j].ChangePercent)
	})
	if n < len(stocks) {
		stocks = stocks[:n]
	}
	return stocks
}

// Match finds stocks mentioned in a free-text query by ticker, full name or
// the name's leading word ("apple" finds Apple Inc.).
func (c *Catalog) Match(query string) []*dto.Stock {
	lower := strings.ToLower(query)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matches []*dto.Stock
	for _, ticker := range c.order {
		stock := c.stocks[ticker]
		if containsWord(lower, strings.ToLower(stock.Ticker)) ||
			strings.Contains(lower, strings.ToLower(stock.Name)) ||
			matchesNameKey(lower, stock.Name) {
			matches = append(matches, copyStock(stock))
		}
	}
	return matches
}

// matchesNameKey checks the name's first significant word as a whole word.
// Short keys are skipped so they cannot shadow tickers.
func matchesNameKey(query, name string) bool {
	key := nameKey(name)
	if len(key) < 4 {
		return false
	}
	return containsWord(query, key)
}

func nameKey(name string) string {
	lower := strings.ToLower(name)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	for _, word := range words {
		if word == "the" {
			continue
		}
		return word
	}
	return ""
}

// containsWord reports whether the query contains the token as a whole word,
// so "tell me about KO" does not match inside "stocks".
func containsWord(query, token string) bool {
	idx := 0
	for {
		i := strings.Index(query[idx:], token)
		if i < 0 {
			return false
		}
		i += idx
		beforeOK := i == 0 || !isAlnum(query[i-1])
		after := i + len(token)
		afterOK := after == len(query) || !isAlnum(query[after])
		if beforeOK && afterOK {
			return true
		}
		idx = i + 1
	}
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// Advance appends the next synthetic daily bar to every stock and refreshes
// the quote fields. The bar is seeded per (ticker, total bars generated), so
// every tick draws a new return yet replaying the simulator from a fresh
// catalog produces the same tape. The history window is fixed size; the bar
// counter keeps increasing even though the window length does not.
func (c *Catalog) Advance(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ticker := range c.order {
		stock := c.stocks[ticker]
		seed := c.seeds[ticker]

		prev := stock.PriceHistory[len(stock.PriceHistory)-1]
		prevDate, err := time.Parse(dateLayout, prev.Date)
		if err != nil {
			prevDate = now
		}

		rng := rand.New(rand.NewSource(historySeed(ticker) + int64(c.bars)))
		bar := synthesizeBar(rng, prev.Close, seed.Drift, seed.DailyVol, seed.AvgVolume, nextBusinessDay(prevDate))
		stock.PriceHistory = append(stock.PriceHistory[1:], bar)
		deriveQuote(stock)
	}
	c.bars++

	c.log.Info("advanced mock market by one trading day", logger.IntField("stocks", len(c.order)))
}

func copyStock(s *dto.Stock) *dto.Stock {
	clone := *s
	clone.PriceHistory = make([]dto.PricePoint, len(s.PriceHistory))
	copy(clone.PriceHistory, s.PriceHistory)
	return &clone
}

// Package oracle reads ETH/USDT market data from the Binance REST API.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/internal/metrics"
	"github.com/chainsafe/swap-fee-watcher/pkg/config"
)

const (
	tickerPath = "/api/v3/ticker/price"
	klinesPath = "/api/v3/klines"

	klineInterval = "1m"
	minuteMs      = int64(60_000)

	// kline rows are [open_time, open, high, low, close, volume, close_time, ...]
	klineOpenTimeIdx  = 0
	klineOpenPriceIdx = 1
)

// ErrUpstreamUnavailable wraps every network, status and parse failure.
var ErrUpstreamUnavailable = errors.New("price oracle unavailable")

// PriceSample is the open price of a one-minute bar
type PriceSample struct {
	Symbol    string
	Timestamp time.Time
	OpenPrice float64
}

// Client queries spot and historical prices.
// Requests are neither retried nor bounded by a client timeout; callers
// control lifetime through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a market-data client. A nil httpClient uses a default
// client without timeout.
func NewClient(cfg *config.OracleConfig, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// SpotPrice returns the latest traded price of symbol
func (c *Client) SpotPrice(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var resp tickerResponse
	if err := c.get(ctx, "ticker", tickerPath, q, &resp); err != nil {
		return 0, err
	}

	price, err := strconv.ParseFloat(resp.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse ticker price %q: %w", ErrUpstreamUnavailable, resp.Price, err)
	}
	return price, nil
}

// PriceAt returns the open price of the minute bar containing timestampMs
// (unix milliseconds).
func (c *Client) PriceAt(ctx context.Context, symbol string, timestampMs int64) (float64, error) {
	sample, err := c.PriceSampleAt(ctx, symbol, timestampMs)
	if err != nil {
		return 0, err
	}
	return sample.OpenPrice, nil
}

// PriceSampleAt is PriceAt returning the whole bar sample
func (c *Client) PriceSampleAt(ctx context.Context, symbol string, timestampMs int64) (*PriceSample, error) {
	barStart := minuteStart(timestampMs)

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", klineInterval)
	q.Set("startTime", strconv.FormatInt(barStart, 10))
	q.Set("endTime", strconv.FormatInt(barStart+minuteMs-1, 10))
	q.Set("limit", "1")

	var rows [][]json.RawMessage
	if err := c.get(ctx, "klines", klinesPath, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) <= klineOpenPriceIdx {
		return nil, fmt.Errorf("%w: no %s kline for %s at %d", ErrUpstreamUnavailable, klineInterval, symbol, timestampMs)
	}

	var openTime int64
	if err := json.Unmarshal(rows[0][klineOpenTimeIdx], &openTime); err != nil {
		return nil, fmt.Errorf("%w: parse kline open time: %w", ErrUpstreamUnavailable, err)
	}
	var openStr string
	if err := json.Unmarshal(rows[0][klineOpenPriceIdx], &openStr); err != nil {
		return nil, fmt.Errorf("%w: parse kline open price: %w", ErrUpstreamUnavailable, err)
	}
	open, err := strconv.ParseFloat(openStr, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: parse kline open price %q: %w", ErrUpstreamUnavailable, openStr, err)
	}

	return &PriceSample{
		Symbol:    symbol,
		Timestamp: time.UnixMilli(openTime).UTC(),
		OpenPrice: open,
	}, nil
}

// minuteStart floors ts to the open time of its 1m bar
func minuteStart(ts int64) int64 {
	rem := ts % minuteMs
	if rem < 0 {
		rem += minuteMs
	}
	return ts - rem
}

func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values, out any) (err error) {
	start := time.Now()
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.OracleRequestDuration.WithLabelValues(endpoint, status).Observe(time.Since(start).Seconds())
	}()

	reqURL := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s response: %w", ErrUpstreamUnavailable, endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Oracle request rejected",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return fmt.Errorf("%w: %s returned status %d", ErrUpstreamUnavailable, endpoint, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrUpstreamUnavailable, endpoint, err)
	}
	return nil
}

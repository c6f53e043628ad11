package binance

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strconv"
    "time"

    "github.com/avi0x/swapline/pkg/metrics"
)

const (
    defaultBaseURL = "https://api.binance.com"
    aggTradesPath  = "/api/v3/aggTrades"

    // Fixed one-minute window the one-shot run queries
    windowSymbol  = "ETHUSDC"
    windowStartMs = 1733240400000
    windowEndMs   = 1733240460000
)

// AggTradesParams holds the query parameters of GET /api/v3/aggTrades.
// Symbol is required; nil optionals are omitted from the query string.
type AggTradesParams struct {
    Symbol    string
    FromID    *int64 // ID to get aggregate trades from, inclusive
    StartTime *int64 // ms timestamp, inclusive
    EndTime   *int64 // ms timestamp, inclusive
    Limit     *int   // default 500, max 1000
}

// API is the slice of the exchange's REST surface this repo uses. It exists
// so the price provider can be tested against a fake.
type API interface {
    AggTrades(ctx context.Context, params AggTradesParams) ([]byte, error)
}

// Client talks to the exchange's public REST endpoint.
type Client struct {
    httpClient *http.Client
    baseURL    string
}

// New constructs a Client against the production endpoint.
func New() *Client {
    return NewWithBaseURL(defaultBaseURL)
}

// NewWithBaseURL points the client at an alternate endpoint; tests use this
// with an httptest server.
func NewWithBaseURL(baseURL string) *Client {
    return &Client{
        httpClient: &http.Client{
            Timeout: 5 * time.Second,
            Transport: &http.Transport{
                MaxIdleConns:        10,
                MaxIdleConnsPerHost: 5,
                IdleConnTimeout:     30 * time.Second,
            },
        },
        baseURL: baseURL,
    }
}

// AggTrades issues one GET and returns the raw response body. It does not
// retry, and non-2xx statuses are printed rather than turned into errors.
func (c *Client) AggTrades(ctx context.Context, params AggTradesParams) ([]byte, error) {
    start := time.Now()
    body, err := c.aggTrades(ctx, params)
    metrics.TradeQueryLatency.Observe(time.Since(start).Seconds())
    if err != nil {
        metrics.TradeQueryErrors.Inc()
        return nil, err
    }
    metrics.TradeQueryCounter.Inc()
    return body, nil
}

func (c *Client) aggTrades(ctx context.Context, params AggTradesParams) ([]byte, error) {
    q := url.Values{}
    q.Set("symbol", params.Symbol)
    if params.FromID != nil {
        q.Set("fromId", strconv.FormatInt(*params.FromID, 10))
    }
    if params.StartTime != nil {
        q.Set("startTime", strconv.FormatInt(*params.StartTime, 10))
    }
    if params.EndTime != nil {
        q.Set("endTime", strconv.FormatInt(*params.EndTime, 10))
    }
    if params.Limit != nil {
        q.Set("limit", strconv.Itoa(*params.Limit))
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+aggTradesPath+"?"+q.Encode(), nil)
    if err != nil {
        return nil, fmt.Errorf("binance: build request: %w", err)
    }

    resp, err := c.httpClient.Do(req)
    if err != nil {
        return nil, fmt.Errorf("binance: get: %w", err)
    }
    defer resp.Body.Close()

    // The status code is the one observable side effect on stdout
    fmt.Println(resp.StatusCode)

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, fmt.Errorf("binance: read response: %w", err)
    }
    return body, nil
}

// QueryTrades issues the fixed ETHUSDC window request and returns the decoded
// body verbatim: no field remapping, no validation of the trade records.
func (c *Client) QueryTrades(ctx context.Context) (interface{}, error) {
    startMs, endMs := int64(windowStartMs), int64(windowEndMs)
    body, err := c.AggTrades(ctx, AggTradesParams{
        Symbol:    windowSymbol,
        StartTime: &startMs,
        EndTime:   &endMs,
    })
    if err != nil {
        return nil, err
    }

    var out interface{}
    if err := json.Unmarshal(body, &out); err != nil {
        return nil, fmt.Errorf("binance: decode response: %w", err)
    }
    return out, nil
}

package graph

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "time"

    "go.uber.org/zap"

    "github.com/avi0x/swapline/pkg/logger"
    "github.com/avi0x/swapline/pkg/metrics"
    "github.com/avi0x/swapline/pkg/models"
)

// Client issues the fixed swaps query against a subgraph gateway.
type Client struct {
    httpClient *http.Client
    gateway    string
}

// New constructs a Client against the production gateway.
func New() *Client {
    return NewWithGateway(gatewayURL)
}

// NewWithGateway points the client at an alternate gateway endpoint; tests use
// this with an httptest server.
func NewWithGateway(gateway string) *Client {
    return &Client{
        httpClient: &http.Client{
            Timeout: 5 * time.Second,
            Transport: &http.Transport{
                MaxIdleConns:        10,
                MaxIdleConnsPerHost: 5,
                IdleConnTimeout:     30 * time.Second,
            },
        },
        gateway: gateway,
    }
}

// QuerySwaps POSTs the swaps document and returns the decoded `data` field of
// the response verbatim. It issues exactly one request: no retry, and non-2xx
// statuses are printed but not acted on. A response without a `data` field
// (e.g. a GraphQL error envelope) is an error.
func (c *Client) QuerySwaps(ctx context.Context) (map[string]interface{}, error) {
    start := time.Now()
    data, err := c.querySwaps(ctx)
    metrics.GraphQueryLatency.Observe(time.Since(start).Seconds())
    if err != nil {
        metrics.GraphQueryErrors.Inc()
        return nil, err
    }
    metrics.GraphQueryCounter.Inc()
    return data, nil
}

func (c *Client) querySwaps(ctx context.Context) (map[string]interface{}, error) {
    body, err := json.Marshal(queryRequest{Query: swapsDocument})
    if err != nil {
        return nil, fmt.Errorf("graph: marshal request: %w", err)
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gateway, bytes.NewReader(body))
    if err != nil {
        return nil, fmt.Errorf("graph: build request: %w", err)
    }
    req.Header.Set("Content-Type", "application/json")

    resp, err := c.httpClient.Do(req)
    if err != nil {
        return nil, fmt.Errorf("graph: post: %w", err)
    }
    defer resp.Body.Close()

    // The status code is the one observable side effect on stdout
    fmt.Println(resp.StatusCode)

    var envelope models.GraphEnvelope
    if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
        return nil, fmt.Errorf("graph: decode response: %w", err)
    }
    if envelope.Data == nil {
        if len(envelope.Errors) > 0 {
            return nil, fmt.Errorf("graph: gateway returned errors: %s", envelope.Errors[0].Message)
        }
        return nil, fmt.Errorf("graph: response has no data field")
    }

    logger.Log.Debug("swaps query completed", zap.Int("status", resp.StatusCode))
    return envelope.Data, nil
}

package binance

import (
    "context"
    "errors"
    "math"
    "testing"
)

const (
    singlePriceResponse = `[{"a": 26129,"p": "0.01633102","q": "4.70443515","f": 27781,"l": 27781,"T": 1498793709153,"m": true,"M": true }]`

    multiplePricesResponse = `[{"a": 26129,"p": "1.0","q": "4.70443515","f": 27781,"l": 27781,"T": 1498793709153,"m": true,"M": true },` +
        `{"a": 26130,"p": "2.5","q": "4.70443515","f": 27782,"l": 27782,"T": 1498793709153,"m": true,"M": true },` +
        `{"a": 26131,"p": "3.5","q": "4.70443515","f": 27783,"l": 27783,"T": 1498793709153,"m": true,"M": true }]`

    missingPriceResponse = `[{"a": 26129,"q": "4.70443515","f": 27781,"l": 27781,"T": 1498793709153,"m": true,"M": true }]`

    invalidPriceResponse = `[{"a": 26129,"p": "notafloat","q": "4.70443515","f": 27781,"l": 27781,"T": 1498793709153,"m": true,"M": true }]`
)

// aggTradesFunc adapts a function to the API interface.
type aggTradesFunc func(ctx context.Context, params AggTradesParams) ([]byte, error)

func (f aggTradesFunc) AggTrades(ctx context.Context, params AggTradesParams) ([]byte, error) {
    return f(ctx, params)
}

func newProviderFixture(t *testing.T, response string, err error) *PriceProvider {
    t.Helper()
    api := aggTradesFunc(func(ctx context.Context, params AggTradesParams) ([]byte, error) {
        if params.Symbol != "BTCUSDC" {
            t.Errorf("symbol = %q; want BTCUSDC", params.Symbol)
        }
        if err != nil {
            return nil, err
        }
        return []byte(response), nil
    })
    return NewPriceProvider(api, "BTCUSDC")
}

func TestAveragePrice_NoTrades(t *testing.T) {
    provider := newProviderFixture(t, `[]`, nil)

    avg, ok, err := provider.AveragePrice(context.Background())
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if ok {
        t.Errorf("ok = true with avg %v; want no price for an empty window", avg)
    }
}

func TestAveragePrice_SingleTrade(t *testing.T) {
    provider := newProviderFixture(t, singlePriceResponse, nil)

    avg, ok, err := provider.AveragePrice(context.Background())
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if !ok {
        t.Fatal("ok = false; want a price")
    }
    if math.Abs(avg-0.01633102) > 1e-9 {
        t.Errorf("avg = %v; want 0.01633102", avg)
    }
}

func TestAveragePrice_ManyTrades(t *testing.T) {
    provider := newProviderFixture(t, multiplePricesResponse, nil)

    avg, ok, err := provider.AveragePrice(context.Background())
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if !ok {
        t.Fatal("ok = false; want a price")
    }
    if math.Abs(avg-2.333333333) > 1e-6 {
        t.Errorf("avg = %v; want 2.333333333", avg)
    }
}

func TestAveragePrice_Errors(t *testing.T) {
    cases := []struct {
        name     string
        response string
        apiErr   error
    }{
        {name: "api error", apiErr: errors.New("some error")},
        {name: "missing price field", response: missingPriceResponse},
        {name: "non-numeric price", response: invalidPriceResponse},
        {name: "malformed body", response: `not json`},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            provider := newProviderFixture(t, c.response, c.apiErr)
            if _, _, err := provider.AveragePrice(context.Background()); err == nil {
                t.Error("expected error, got nil")
            }
        })
    }
}

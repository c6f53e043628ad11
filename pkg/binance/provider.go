package binance

import (
    "context"
    "encoding/json"
    "fmt"

    "github.com/avi0x/swapline/pkg/models"
)

// PriceProvider averages aggregate-trade prices for one symbol.
type PriceProvider struct {
    api    API
    symbol string
}

// NewPriceProvider binds a provider to an exchange API and a symbol.
func NewPriceProvider(api API, symbol string) *PriceProvider {
    return &PriceProvider{api: api, symbol: symbol}
}

// Symbol returns the trading pair this provider is bound to.
func (p *PriceProvider) Symbol() string {
    return p.symbol
}

// AveragePrice fetches the symbol's aggregate trades and returns their mean
// price. ok is false when the exchange reported no trades. A trade record
// with a missing or non-numeric price is an error, not a skip.
func (p *PriceProvider) AveragePrice(ctx context.Context) (avg float64, ok bool, err error) {
    body, err := p.api.AggTrades(ctx, AggTradesParams{Symbol: p.symbol})
    if err != nil {
        return 0, false, err
    }

    var trades []models.AggTrade
    if err := json.Unmarshal(body, &trades); err != nil {
        return 0, false, fmt.Errorf("binance: decode trades: %w", err)
    }
    if len(trades) == 0 {
        return 0, false, nil
    }

    var sum float64
    for _, trade := range trades {
        price, err := trade.PriceFloat()
        if err != nil {
            return 0, false, err
        }
        sum += price
    }
    return sum / float64(len(trades)), true, nil
}

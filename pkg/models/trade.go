package models

import (
    "encoding/json"
    "fmt"
    "strconv"

    "github.com/avi0x/swapline/pkg/validation"
)

// AggTrade is one aggregate trade per the exchange's public REST schema.
//
//	a  Aggregate tradeId
//	p  Price
//	q  Quantity
//	f  First tradeId
//	l  Last tradeId
//	T  Timestamp (ms)
//	m  Was the buyer the maker?
//	M  Was the trade the best price match?
type AggTrade struct {
    ID           int64  `json:"a"`
    Price        string `json:"p"`
    Quantity     string `json:"q"`
    FirstTradeID int64  `json:"f"`
    LastTradeID  int64  `json:"l"`
    Timestamp    int64  `json:"T"`
    BuyerMaker   bool   `json:"m"`
    BestMatch    bool   `json:"M"`
}

// PriceFloat parses the string-encoded price. An absent price field decodes to
// the empty string and fails here, so price-less records surface as errors.
func (at AggTrade) PriceFloat() (float64, error) {
    p, err := strconv.ParseFloat(at.Price, 64)
    if err != nil {
        return 0, fmt.Errorf("trade %d: price parse error: %w", at.ID, err)
    }
    return p, nil
}

// Quote is the averaged price we cache and publish.
type Quote struct {
    Symbol    string  `json:"symbol" validate:"required,symbol"`
    Price     float64 `json:"price" validate:"required,price"`
    Timestamp int64   `json:"timestamp" validate:"required,timestamp"` // milliseconds since epoch (UTC)
}

// Validate validates the Quote struct
func (q Quote) Validate() error {
    if errors := validation.ValidateStruct(q); len(errors) > 0 {
        return errors
    }
    return nil
}

// Sanitize cleans the Quote fields in place
func (q *Quote) Sanitize() {
    q.Symbol = validation.SanitizeString(q.Symbol)
    q.Price = validation.SanitizePrice(q.Price)
    q.Timestamp = validation.SanitizeTimestamp(q.Timestamp)
}

// ToMap converts Quote to a map for Redis hash storage
func (q Quote) ToMap() map[string]interface{} {
    return map[string]interface{}{
        "symbol": q.Symbol,
        "price":  fmt.Sprintf("%.8f", q.Price),
        "ts_ms":  q.Timestamp,
    }
}

// ToJSON converts to JSON string for pub/sub
func (q Quote) ToJSON() (string, error) {
    data, err := json.Marshal(q)
    if err != nil {
        return "", fmt.Errorf("json marshal error: %w", err)
    }
    return string(data), nil
}

// QuoteFromJSON parses and validates a Quote from its pub/sub form
func QuoteFromJSON(data string) (Quote, error) {
    var q Quote
    if err := json.Unmarshal([]byte(data), &q); err != nil {
        return q, fmt.Errorf("json unmarshal error: %w", err)
    }

    q.Sanitize()
    if err := q.Validate(); err != nil {
        return q, fmt.Errorf("validation failed: %w", err)
    }

    return q, nil
}

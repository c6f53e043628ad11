package models

import (
    "encoding/json"
    "testing"
    "time"
)

func TestAggTrade_Decode(t *testing.T) {
    raw := `{"a": 26129,"p": "0.01633102","q": "4.70443515","f": 27781,"l": 27781,"T": 1498793709153,"m": true,"M": true}`

    var trade AggTrade
    if err := json.Unmarshal([]byte(raw), &trade); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if trade.ID != 26129 {
        t.Errorf("ID = %d; want 26129", trade.ID)
    }
    if trade.Timestamp != 1498793709153 {
        t.Errorf("Timestamp = %d; want 1498793709153", trade.Timestamp)
    }
    p, err := trade.PriceFloat()
    if err != nil {
        t.Fatalf("PriceFloat: %v", err)
    }
    if p != 0.01633102 {
        t.Errorf("PriceFloat = %v; want 0.01633102", p)
    }
}

func TestAggTrade_PriceFloat_Invalid(t *testing.T) {
    cases := []struct {
        name  string
        trade AggTrade
    }{
        {name: "missing price", trade: AggTrade{ID: 1}},
        {name: "non-numeric price", trade: AggTrade{ID: 2, Price: "notafloat"}},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            if _, err := c.trade.PriceFloat(); err == nil {
                t.Error("expected error, got nil")
            }
        })
    }
}

func TestQuoteFromJSON(t *testing.T) {
    now := time.Now().UnixMilli()
    q := Quote{Symbol: "ETHUSDC", Price: 3000.5, Timestamp: now}

    s, err := q.ToJSON()
    if err != nil {
        t.Fatalf("ToJSON: %v", err)
    }

    got, err := QuoteFromJSON(s)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if got != q {
        t.Errorf("QuoteFromJSON = %+v; want %+v", got, q)
    }
}

func TestQuoteFromJSON_Invalid(t *testing.T) {
    cases := []struct {
        name string
        in   string
    }{
        {name: "not json", in: "garbage"},
        {name: "missing symbol", in: `{"price": 1.0, "timestamp": 1733240400000}`},
        {name: "lowercase symbol", in: `{"symbol": "ethusdc", "price": 1.0, "timestamp": 1733240400000}`},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            if _, err := QuoteFromJSON(c.in); err == nil {
                t.Error("expected error, got nil")
            }
        })
    }
}

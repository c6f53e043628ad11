package main

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    "github.com/avi0x/swapline/pkg/metrics"
    "github.com/avi0x/swapline/pkg/models"
    "github.com/avi0x/swapline/pkg/redisclient"
)

// publishQuote updates the latest-quote hash and publishes on quotes:pubsub.
func publishQuote(ctx context.Context, rdb *redisclient.Client, quote models.Quote) error {
    quote.Sanitize()
    if err := quote.Validate(); err != nil {
        metrics.PublishErrors.Inc()
        return fmt.Errorf("invalid quote: %w", err)
    }

    // 1) Prepare Redis pipeline for atomicity & performance
    pipe := rdb.Client().Pipeline()

    // 2) Update hash: HSET quotes:latest:<symbol>
    hashKey := "quotes:latest:" + quote.Symbol
    pipe.HSet(ctx, hashKey, map[string]interface{}{
        "price": quote.Price,
        "ts_ms": quote.Timestamp,
    })

    // 3) Publish full JSON payload for subscribers
    payload, _ := json.Marshal(quote) // error unlikely; quote is well-typed
    pipe.Publish(ctx, "quotes:pubsub", payload)

    // 4) Execute pipeline with timeout
    execCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
    defer cancel()

    if _, err := pipe.Exec(execCtx); err != nil {
        metrics.PublishErrors.Inc()
        return err
    }
    metrics.PublishCounter.Inc()
    return nil
}

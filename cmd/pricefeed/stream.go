package main

import (
    "context"

    "go.uber.org/zap"

    "github.com/avi0x/swapline/pkg/binance"
    "github.com/avi0x/swapline/pkg/logger"
    "github.com/avi0x/swapline/pkg/metrics"
    "github.com/avi0x/swapline/pkg/models"
    "github.com/avi0x/swapline/pkg/redisclient"
)

// runStream republishes each live trade as the symbol's latest quote.
func runStream(ctx context.Context, rdb *redisclient.Client, symbol string) {
    logger.Log.Info("starting trade stream", zap.String("symbol", symbol))

    // Buffer up to 1k trades before the reader starts dropping
    trades := make(chan models.AggTrade, 1000)
    go binance.StreamAggTrades(ctx, binance.DefaultStreamURL, symbol, trades)

    for {
        select {
        case <-ctx.Done():
            logger.Log.Info("runStream: context cancelled")
            return
        case trade := <-trades:
            price, err := trade.PriceFloat()
            if err != nil {
                logger.Log.Warn("bad trade price", zap.Error(err))
                metrics.StreamErrors.Inc()
                continue
            }
            quote := models.Quote{Symbol: symbol, Price: price, Timestamp: trade.Timestamp}
            if err := publishQuote(ctx, rdb, quote); err != nil {
                logger.Log.Error("publishQuote failed", zap.Error(err))
            }
        }
    }
}

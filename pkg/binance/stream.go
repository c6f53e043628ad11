package binance

import (
    "context"
    "strings"

    "github.com/cenkalti/backoff/v4"
    "github.com/gorilla/websocket"
    "go.uber.org/zap"

    "github.com/avi0x/swapline/pkg/logger"
    "github.com/avi0x/swapline/pkg/metrics"
    "github.com/avi0x/swapline/pkg/models"
)

// DefaultStreamURL is the exchange's public websocket endpoint.
const DefaultStreamURL = "wss://stream.binance.com:9443/ws"

// StreamAggTrades follows the symbol's aggTrade stream until ctx is done,
// redialing with exponential backoff. Trades are dropped when the channel
// is full.
func StreamAggTrades(ctx context.Context, streamURL, symbol string, trades chan<- models.AggTrade) {
    url := streamURL + "/" + strings.ToLower(symbol) + "@aggTrade"
    bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

    err := backoff.Retry(func() error {
        logger.Log.Info("dialing trade stream", zap.String("url", url))
        conn, _, err := websocket.DefaultDialer.Dial(url, nil)
        if err != nil {
            logger.Log.Warn("stream dial error", zap.Error(err))
            return err
        }
        defer conn.Close()

        for {
            select {
            case <-ctx.Done():
                return backoff.Permanent(ctx.Err())
            default:
                var trade models.AggTrade
                if err := conn.ReadJSON(&trade); err != nil {
                    logger.Log.Warn("stream read error", zap.Error(err))
                    metrics.StreamErrors.Inc()
                    return err
                }
                // drop if buffer full
                select {
                case trades <- trade:
                    metrics.StreamCounter.Inc()
                default:
                    logger.Log.Warn("trade chan full, dropping trade")
                    metrics.StreamErrors.Inc()
                }
            }
        }
    }, bo)

    if err != nil && !strings.Contains(err.Error(), "context canceled") {
        logger.Log.Error("trade stream stopped", zap.Error(err))
    }
}

package main

import (
    "context"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "go.uber.org/zap"

    "github.com/avi0x/swapline/pkg/binance"
    "github.com/avi0x/swapline/pkg/config"
    "github.com/avi0x/swapline/pkg/graph"
    "github.com/avi0x/swapline/pkg/logger"
    "github.com/avi0x/swapline/pkg/models"
    "github.com/avi0x/swapline/pkg/redisclient"
    "github.com/avi0x/swapline/pkg/tokenstore"
)

// Seeded into Redis when the tokens-of-interest set is empty
var defaultTokens = []string{"UNI", "ZRX"}

const quoteSymbol = "ETHUSDC"

func main() {
    // 1. Load config
    cfg, err := config.Load()
    if err != nil {
        panic("config error: " + err.Error())
    }

    // 2. Init logger
    if err := logger.Init(); err != nil {
        panic("logger init: " + err.Error())
    }
    defer logger.Log.Sync()

    // 3. Connect to Redis
    rdb := redisclient.New(cfg.RedisURL)
    defer rdb.Close()

    // 4. Start Prometheus metrics endpoint
    go startMetricsServer(cfg.MetricsPort)

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    // 5. Read tokens of interest, seeding defaults on first run
    store := tokenstore.New(rdb)
    tokens, err := store.ReadOrDefaults(ctx, defaultTokens)
    if err != nil {
        logger.Log.Fatal("read tokens failed", zap.Error(err))
    }
    logger.Log.Info("tokens of interest", zap.Strings("tokens", tokens))

    // 6. One-shot queries against the subgraph gateway and the exchange
    graphClient := graph.New()
    data, err := graphClient.QuerySwaps(ctx)
    if err != nil {
        logger.Log.Fatal("swaps query failed", zap.Error(err))
    }
    logger.Log.Info("swaps query returned", zap.Any("data", data))

    exchange := binance.New()
    trades, err := exchange.QueryTrades(ctx)
    if err != nil {
        logger.Log.Fatal("trade query failed", zap.Error(err))
    }
    if seq, ok := trades.([]interface{}); ok {
        logger.Log.Info("trade query returned", zap.Int("trades", len(seq)))
    }

    // 7. Average the symbol's trades and publish the quote
    provider := binance.NewPriceProvider(exchange, quoteSymbol)
    avg, ok, err := provider.AveragePrice(ctx)
    if err != nil {
        logger.Log.Fatal("average price failed", zap.Error(err))
    }
    if !ok {
        logger.Log.Warn("no trades to average", zap.String("symbol", quoteSymbol))
    } else {
        quote := models.Quote{Symbol: quoteSymbol, Price: avg, Timestamp: time.Now().UnixMilli()}
        if err := publishQuote(ctx, rdb, quote); err != nil {
            logger.Log.Error("quote publish failed", zap.Error(err))
        }
    }

    if !cfg.EnableStream {
        return
    }

    // 8. Follow the live trade stream until shutdown
    go runStream(ctx, rdb, quoteSymbol)

    sigs := make(chan os.Signal, 1)
    signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
    <-sigs
    logger.Log.Info("shutdown signal received, exiting")
    cancel()
    // give goroutines a moment to finish
    time.Sleep(500 * time.Millisecond)
}

func startMetricsServer(port int) {
    r := chi.NewRouter()
    r.Handle("/metrics", promhttp.Handler())
    addr := fmt.Sprintf(":%d", port)
    logger.Log.Info("metrics server listening", zap.String("addr", addr))
    http.ListenAndServe(addr, r) // errors are logged by default
}

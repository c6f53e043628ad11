package metrics

import (
  "github.com/prometheus/client_golang/prometheus"
)

var (
  // Subgraph query metrics
  GraphQueryCounter = prometheus.NewCounter(
    prometheus.CounterOpts{
      Name: "pricefeed_graph_queries_total",
      Help: "Total subgraph queries issued",
    })
  GraphQueryErrors = prometheus.NewCounter(
    prometheus.CounterOpts{
      Name: "pricefeed_graph_query_errors_total",
      Help: "Subgraph query errors",
    })
  GraphQueryLatency = prometheus.NewHistogram(
    prometheus.HistogramOpts{
      Name:    "pricefeed_graph_query_latency_seconds",
      Help:    "Time to run one subgraph query",
      Buckets: prometheus.DefBuckets,
    })

  // Exchange REST metrics
  TradeQueryCounter = prometheus.NewCounter(
    prometheus.CounterOpts{
      Name: "pricefeed_trade_queries_total",
      Help: "Total aggTrades requests issued",
    })
  TradeQueryErrors = prometheus.NewCounter(
    prometheus.CounterOpts{
      Name: "pricefeed_trade_query_errors_total",
      Help: "aggTrades request errors",
    })
  TradeQueryLatency = prometheus.NewHistogram(
    prometheus.HistogramOpts{
      Name:    "pricefeed_trade_query_latency_seconds",
      Help:    "Time to run one aggTrades request",
      Buckets: prometheus.DefBuckets,
    })

  // Trade stream metrics
  StreamCounter = prometheus.NewCounter(
    prometheus.CounterOpts{
      Name: "pricefeed_stream_trades_total",
      Help: "Total trades received over the websocket stream",
    })
  StreamErrors = prometheus.NewCounter(
    prometheus.CounterOpts{
      Name: "pricefeed_stream_errors_total",
      Help: "Websocket stream errors (read failures and dropped trades)",
    })

  // Quote publish metrics
  PublishCounter = prometheus.NewCounter(
    prometheus.CounterOpts{
      Name: "pricefeed_quotes_published_total",
      Help: "Total quotes published to cache and pub/sub",
    })
  PublishErrors = prometheus.NewCounter(
    prometheus.CounterOpts{
      Name: "pricefeed_quote_publish_errors_total",
      Help: "Quote publish errors",
    })

  // Redis metrics
  RedisOperationDuration = prometheus.NewHistogramVec(
    prometheus.HistogramOpts{
      Name:    "redis_operation_duration_seconds",
      Help:    "Redis operation duration",
      Buckets: prometheus.DefBuckets,
    },
    []string{"operation", "status"},
  )
  RedisErrors = prometheus.NewCounterVec(
    prometheus.CounterOpts{
      Name: "redis_errors_total",
      Help: "Total Redis errors",
    },
    []string{"operation"},
  )
)

func init() {
  // MustRegister panics if registration fails (e.g. duplicate)
  prometheus.MustRegister(
    GraphQueryCounter, GraphQueryErrors, GraphQueryLatency,
    TradeQueryCounter, TradeQueryErrors, TradeQueryLatency,
    StreamCounter, StreamErrors,
    PublishCounter, PublishErrors,
    RedisOperationDuration, RedisErrors,
  )
}

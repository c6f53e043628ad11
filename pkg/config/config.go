package config

import (
    "flag"
    "fmt"
    "os"
    "strconv"
    "strings"

    "github.com/avi0x/swapline/pkg/validation"
)

type Config struct {
    RedisURL     string `validate:"required"`
    MetricsPort  int
    EnableStream bool
}

// Load reads environment variables and application flags (via a local FlagSet),
// strips out any -test.* flags, and validates required fields. A missing or
// invalid Redis location is fatal here rather than at first use.
func Load() (*Config, error) {
    // 1. Build a fresh FlagSet so we don't collide with `go test` flags
    fs := flag.NewFlagSet("config", flag.ContinueOnError)

    // 2. Define only the flags this package cares about
    var redisURL string
    var metricsPort int
    var enableStream bool
    fs.StringVar(&redisURL, "redis", os.Getenv("REDIS_URL"), "Redis connection URL")
    fs.IntVar(&metricsPort, "metrics-port", 8082, "Metrics server port")
    fs.BoolVar(&enableStream, "stream", false, "Keep running and follow the live trade stream")

    // 3. Filter out any -test.* args before parsing
    var appArgs []string
    for _, arg := range os.Args[1:] {
        if strings.HasPrefix(arg, "-test.") {
            continue
        }
        appArgs = append(appArgs, arg)
    }
    if err := fs.Parse(appArgs); err != nil {
        return nil, err
    }

    cfg := &Config{
        RedisURL:     redisURL,
        MetricsPort:  metricsPort,
        EnableStream: enableStream,
    }

    // METRICS_PORT env overrides flag/default if set
    if portEnv := os.Getenv("METRICS_PORT"); portEnv != "" {
        portVal, err := strconv.Atoi(portEnv)
        if err != nil {
            return nil, fmt.Errorf("invalid METRICS_PORT env var: %v", err)
        }
        cfg.MetricsPort = portVal
    }

    if streamEnv := os.Getenv("ENABLE_STREAM"); streamEnv != "" {
        enabled, err := strconv.ParseBool(streamEnv)
        if err != nil {
            return nil, fmt.Errorf("invalid ENABLE_STREAM env var: %v", err)
        }
        cfg.EnableStream = enabled
    }

    // 4. Validate required fields
    if cfg.RedisURL == "" {
        return nil, fmt.Errorf("missing required config: REDIS_URL or -redis")
    }
    if errs := validation.ValidateStruct(cfg); len(errs) > 0 {
        return nil, errs
    }

    return cfg, nil
}

package tokenstore

import (
    "context"
    "fmt"

    "go.uber.org/zap"

    "github.com/avi0x/swapline/pkg/logger"
)

const tokensKey = "tokens_of_interest"

// SetStore is the slice of Redis this package needs.
type SetStore interface {
    SMembers(ctx context.Context, key string) ([]string, error)
    SAdd(ctx context.Context, key string, members ...interface{}) error
}

// Store holds the tokens-of-interest set.
type Store struct {
    rdb SetStore
}

// New constructs a Store over an existing Redis client.
func New(rdb SetStore) *Store {
    return &Store{rdb: rdb}
}

// ReadOrDefaults reads the tokens of interest from Redis. When the set is
// empty it seeds the provided defaults and returns them.
func (s *Store) ReadOrDefaults(ctx context.Context, defaults []string) ([]string, error) {
    tokens, err := s.rdb.SMembers(ctx, tokensKey)
    if err != nil {
        return nil, fmt.Errorf("read tokens: %w", err)
    }
    if len(tokens) > 0 {
        return tokens, nil
    }

    logger.Log.Info("no tokens of interest found, seeding defaults",
        zap.Strings("defaults", defaults))
    for _, token := range defaults {
        if err := s.rdb.SAdd(ctx, tokensKey, token); err != nil {
            return nil, fmt.Errorf("seed token %q: %w", token, err)
        }
    }
    return append([]string(nil), defaults...), nil
}

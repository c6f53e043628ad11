package redisclient

import (
    "context"
    "testing"

    "github.com/go-redis/redis/v8"
    redismock "github.com/go-redis/redismock/v8"
)

// TestSMembers_Success verifies that SMembers returns the set members.
func TestSMembers_Success(t *testing.T) {
    db, mock := redismock.NewClientMock()
    client := &Client{rdb: db}

    mock.ExpectSMembers("tokens_of_interest").SetVal([]string{"UNI", "ZRX"})

    members, err := client.SMembers(context.Background(), "tokens_of_interest")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(members) != 2 {
        t.Fatalf("got %d members; want 2", len(members))
    }

    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unfulfilled expectations: %v", err)
    }
}

// TestSAdd_RetryOnError ensures SAdd retries on a transient Redis error.
func TestSAdd_RetryOnError(t *testing.T) {
    db, mock := redismock.NewClientMock()
    client := &Client{rdb: db}

    // First call fails, second call succeeds
    mock.ExpectSAdd("s", "UNI").SetErr(redis.ErrClosed)
    mock.ExpectSAdd("s", "UNI").SetVal(1)

    if err := client.SAdd(context.Background(), "s", "UNI"); err != nil {
        t.Fatalf("expected success after retry, got %v", err)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unfulfilled expectations: %v", err)
    }
}

// TestHSet_Success verifies HSet writes the hash on first attempt.
func TestHSet_Success(t *testing.T) {
    db, mock := redismock.NewClientMock()
    client := &Client{rdb: db}

    mock.ExpectHSet("quotes:latest:ETHUSDC", "price", "3000.50000000").SetVal(1)

    values := map[string]interface{}{"price": "3000.50000000"}
    if err := client.HSet(context.Background(), "quotes:latest:ETHUSDC", values); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unfulfilled expectations: %v", err)
    }
}

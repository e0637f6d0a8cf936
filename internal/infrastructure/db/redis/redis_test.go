package redis

import (
	"context"
	"testing"

	"github.com/lucamusic/event-platform/internal/infrastructure/config"
)

func TestConnectFailsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := Connect(ctx, config.RedisConfig{Addr: "localhost:6379"})
	if err == nil {
		t.Fatal("expected ping to fail with a cancelled context")
	}
	if client != nil {
		t.Error("expected nil client on failure")
	}
}

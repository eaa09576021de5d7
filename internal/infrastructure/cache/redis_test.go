package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_RoundTrip(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	// non-zero DB to make sure the option is honored
	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Set(ctx, "idemp:probe", "1", 0).Err(); err != nil {
		t.Fatalf("SET: %v", err)
	}
	v, err := c.Get(ctx, "idemp:probe").Result()
	if err != nil || v != "1" {
		t.Fatalf("GET = %q, %v", v, err)
	}
}

func TestOpenRedis_UnreachableHost(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected connection error")
	}
}

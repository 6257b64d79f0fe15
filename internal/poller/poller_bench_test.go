package poller

import (
	"context"
	"testing"
	"time"

	"sports-gateway/internal/domain/leagues"
)

func BenchmarkPollerFetchOnce(b *testing.B) {
	refresh := func(ctx context.Context, league leagues.League) (int, error) {
		return league.GameCap(), nil
	}
	p := New(refresh, nil, nil, nil, time.Second)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.fetchOnce(ctx)
	}
}

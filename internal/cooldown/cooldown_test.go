package cooldown

import (
	"sync"
	"testing"
	"time"

	"sports-gateway/internal/domain/leagues"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestMarkUsesLongerOfCooldownAndRetryAfter(t *testing.T) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	tr := NewTracker(30*time.Second, c.now)

	until := tr.Mark(leagues.NBA, 5*time.Second)
	if !until.Equal(c.t.Add(30 * time.Second)) {
		t.Fatalf("expected cooldown floor, got %v", until)
	}

	until = tr.Mark(leagues.NFL, 2*time.Minute)
	if !until.Equal(c.t.Add(2 * time.Minute)) {
		t.Fatalf("expected retry-after to win, got %v", until)
	}
}

func TestMarkKeepsLaterDeadline(t *testing.T) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	tr := NewTracker(30*time.Second, c.now)

	tr.Mark(leagues.MLB, time.Minute)
	tr.Mark(leagues.MLB, 0)
	if got := tr.Remaining(leagues.MLB); got != time.Minute {
		t.Fatalf("expected existing longer deadline, got %s", got)
	}
}

func TestRemainingExpires(t *testing.T) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	tr := NewTracker(0, c.now)

	tr.Mark(leagues.NHL, 0)
	if !tr.Active(leagues.NHL) {
		t.Fatalf("expected active cooldown")
	}
	c.t = c.t.Add(DefaultCooldown - time.Second)
	if got := tr.Remaining(leagues.NHL); got != time.Second {
		t.Fatalf("expected 1s remaining, got %s", got)
	}
	c.t = c.t.Add(time.Second)
	if tr.Active(leagues.NHL) {
		t.Fatalf("expected cooldown to end")
	}
	if tr.Active(leagues.NBA) {
		t.Fatalf("unmarked league must not be in cooldown")
	}
}

func TestClear(t *testing.T) {
	tr := NewTracker(time.Minute, nil)
	tr.Mark(leagues.NBA, 0)
	tr.Clear(leagues.NBA)
	if tr.Active(leagues.NBA) {
		t.Fatalf("expected cleared cooldown")
	}
}

func TestConcurrentMarks(t *testing.T) {
	tr := NewTracker(time.Minute, nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l := leagues.All()[i%len(leagues.All())]
			tr.Mark(l, 0)
			_ = tr.Remaining(l)
		}(i)
	}
	wg.Wait()
	for _, l := range leagues.All() {
		if !tr.Active(l) {
			t.Fatalf("expected %s in cooldown", l)
		}
	}
}

package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/logging"
	"sports-gateway/internal/metrics"
)

const defaultInterval = 5 * time.Minute

// RefreshFunc warms the cache for one league and returns how many records it now serves.
type RefreshFunc func(ctx context.Context, league leagues.League) (int, error)

// Poller refreshes every configured league on an interval so requests are served from a warm cache.
type Poller struct {
	refresh  RefreshFunc
	leagues  []leagues.League
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	// Records is the per-league record count from the last cycle.
	Records map[string]int
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults. An empty league list means every supported league.
func New(refresh RefreshFunc, ls []leagues.League, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if len(ls) == 0 {
		ls = leagues.All()
	}
	return &Poller{
		refresh:  refresh,
		leagues:  ls,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm the cache on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// fetchOnce refreshes all leagues concurrently. The cycle fails when any league fails.
func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	counts := make([]int, len(p.leagues))
	errs := make([]error, len(p.leagues))
	if p.refresh == nil {
		errs = append(errs, errors.New("poller has no refresh function"))
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for i, l := range p.leagues {
			g.Go(func() error {
				n, err := p.refresh(gctx, l)
				counts[i] = n
				if err != nil {
					errs[i] = fmt.Errorf("%s: %w", l, err)
				}
				return nil
			})
		}
		_ = g.Wait()
	}
	err := errors.Join(errs...)

	elapsed := p.now().Sub(start)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(elapsed, err)
	}

	records := make(map[string]int, len(p.leagues))
	total := 0
	for i, l := range p.leagues {
		records[l.String()] = counts[i]
		total += counts[i]
	}
	p.recordRecords(records)

	if err != nil {
		p.logError("poller refresh failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed leagues",
		logging.FieldCount, total,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordRecords(records map[string]int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Records = records
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	st := p.status
	if st.Records != nil {
		st.Records = make(map[string]int, len(p.status.Records))
		for k, v := range p.status.Records {
			st.Records[k] = v
		}
	}
	return st
}

// Leagues returns the leagues refreshed each cycle.
func (p *Poller) Leagues() []leagues.League {
	out := make([]leagues.League, len(p.leagues))
	copy(out, p.leagues)
	return out
}

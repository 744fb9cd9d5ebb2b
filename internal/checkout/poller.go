package checkout

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"tradejournal/internal/logger"
)

type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type TickerFunc func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) Chan() <-chan time.Time { return r.t.C }
func (r realTicker) Stop() { r.t.Stop() }

func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// CheckFunc runs one status check. done ends the loop.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Poller runs a CheckFunc on every tick. At most one check is in flight;
// a tick that arrives while a check is running is skipped. A maxAttempts
// of zero polls until stopped.
type Poller struct {
	name        string
	interval    time.Duration
	maxAttempts int
	newTicker   TickerFunc
	check       CheckFunc
	onExhausted func()

	inFlight atomic.Bool
	attempts atomic.Int64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(name string, interval time.Duration, maxAttempts int, newTicker TickerFunc, check CheckFunc, onExhausted func()) *Poller {
	if newTicker == nil {
		newTicker = NewRealTicker
	}
	return &Poller{
		name:        name,
		interval:    interval,
		maxAttempts: maxAttempts,
		newTicker:   newTicker,
		check:       check,
		onExhausted: onExhausted,
	}
}

// Start launches the loop. It is a no-op while the loop is running.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running() {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.loop(ctx, p.done)
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	t := p.newTicker(p.interval)
	defer t.Stop()

	logger.Debug("poller started", "poller", p.name, "interval", p.interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Debug("poller stopped", "poller", p.name)
			return
		case <-t.Chan():
			finished, ran := p.tick(ctx, true)
			if finished {
				return
			}
			if ran && p.maxAttempts > 0 && p.Attempts() >= p.maxAttempts {
				logger.Info("poller attempts exhausted", "poller", p.name, "attempts", p.Attempts())
				if p.onExhausted != nil {
					p.onExhausted()
				}
				return
			}
		}
	}
}

func (p *Poller) tick(ctx context.Context, count bool) (finished, ran bool) {
	if !p.inFlight.CompareAndSwap(false, true) {
		logger.Debug("status check already in flight, skipping", "poller", p.name)
		return false, false
	}
	defer p.inFlight.Store(false)

	if count {
		p.attempts.Add(1)
	}
	finished, err := p.check(ctx)
	if err != nil {
		logger.WithError(err).Warn("status check failed", "poller", p.name, "attempt", p.Attempts())
		return false, true
	}
	return finished, true
}

// CheckNow runs one check outside the schedule without counting an
// attempt. ran is false when another check was in flight.
func (p *Poller) CheckNow(ctx context.Context) (finished, ran bool) {
	return p.tick(ctx, false)
}

// Stop cancels the loop without waiting for it. Safe to call from a check.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
}

// Wait blocks until the loop has exited.
func (p *Poller) Wait() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (p *Poller) ResetAttempts() {
	p.attempts.Store(0)
}

func (p *Poller) Attempts() int {
	return int(p.attempts.Load())
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running()
}

func (p *Poller) running() bool {
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

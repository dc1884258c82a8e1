package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/progresser"
	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
	"github.com/superhawk610/bar"
	// See also: https://github.com/reconquest/barely
)

const tickEvery = 333 * time.Millisecond

var _ progresser.Interface = (*Progresser)(nil)

// Progresser implements progresser.Interface
type Progresser struct {
	ctx context.Context

	mu          sync.Mutex
	bar         *bar.Bar
	ticker      *time.Ticker
	stop        chan struct{}
	calls       int64
	maxCalls    int64
	ticks       int
	stateIdx    int
	terminating bool
}

// WithContext sets ctx of a progresser.Interface implementation
func (p *Progresser) WithContext(ctx context.Context) { p.ctx = ctx }

// Terminate cleans up after a progresser.Interface implementation instance
func (p *Progresser) Terminate() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.terminating {
		return nil
	}
	p.terminating = true
	if p.bar != nil {
		p.ticker.Stop()
		close(p.stop)
		p.bar.Done()
	}
	return nil
}

// Line drives the bar with the engine's status lines
// and shows every other line above it
func (p *Progresser) Line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if calls, maxCalls, ok := report.ParseProgress(s); ok {
		if p.bar == nil {
			p.start(maxCalls)
		}
		p.calls = calls
		p.tick()
		return
	}

	results, _ := report.Parse(s)
	if len(results) != 1 {
		p.show(s)
		return
	}
	prefix := as.ColorOK.Sprintf(prefixSucceeded)
	if results[0].Outcome == report.Failed {
		prefix = as.ColorERR.Sprintf(prefixFailed)
	}
	p.show(" " + prefix + " " + s)
}

func (p *Progresser) start(maxCalls int64) {
	p.maxCalls = maxCalls
	p.bar = bar.NewWithOpts(
		bar.WithDimensions(int(maxCalls), 37),
		bar.WithDisplay("", "█", "█", " ", "|"),
		bar.WithFormat(":state :bar :rate calls/s :eta"),
	)

	ctx := p.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	p.ticker = time.NewTicker(tickEvery)
	p.stop = make(chan struct{})
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-p.stop:
				return
			case <-p.ticker.C:
				p.mu.Lock()
				if !p.terminating {
					p.tick()
				}
				p.mu.Unlock()
			}
		}
	}()
}

func (p *Progresser) tick() {
	state := cliStates[p.stateIdx%len(cliStates)]
	p.stateIdx++
	p.ticks = int(p.calls)
	if p.ticks > int(p.maxCalls) {
		p.ticks = int(p.maxCalls)
	}
	p.bar.Update(p.ticks, bar.Context{bar.Ctx("state", state)})
}

func (p *Progresser) show(s string) {
	if p.bar == nil {
		fmt.Println(s)
		return
	}
	p.bar.Interrupt(s)
}

// Printf formats informational data
func (p *Progresser) Printf(format string, s ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.show(fmt.Sprintf(format, s...))
}

// Errorf formats error messages
func (p *Progresser) Errorf(format string, s ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.show(as.ColorERR.Sprintf(format, s...))
}

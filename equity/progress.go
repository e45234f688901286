package equity

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
)

// Progress reports periodic completion counts while a simulation runs.
// Fn receives the trials finished so far and the total, called from the
// reporter's timer goroutine. A nil Clock uses the real clock; tests
// inject a mock.
type Progress struct {
	Interval time.Duration
	Clock    quartz.Clock
	Fn       func(done, total int)
}

// start arms the reporter against the run's trial counter. The returned
// stop function disarms the timer and delivers one final report.
func (p *Progress) start(total int, done *atomic.Int64) (stop func()) {
	if p == nil || p.Fn == nil || p.Interval <= 0 {
		return func() {}
	}
	clock := p.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	var mu sync.Mutex
	var timer *quartz.Timer
	stopped := false

	var arm func()
	arm = func() {
		timer = clock.AfterFunc(p.Interval, func() {
			mu.Lock()
			defer mu.Unlock()
			if stopped {
				return
			}
			p.Fn(int(done.Load()), total)
			arm()
		})
	}

	mu.Lock()
	arm()
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		stopped = true
		timer.Stop()
		p.Fn(int(done.Load()), total)
	}
}

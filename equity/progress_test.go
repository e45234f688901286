package equity

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressLog struct {
	mu    sync.Mutex
	calls [][2]int
}

func (l *progressLog) record(done, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, [2]int{done, total})
}

func (l *progressLog) snapshot() [][2]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([][2]int(nil), l.calls...)
}

func TestProgressReportsOnInterval(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mockClock := quartz.NewMock(t)
	var pl progressLog
	p := &Progress{Interval: time.Second, Clock: mockClock, Fn: pl.record}

	var done atomic.Int64
	stop := p.start(100, &done)

	done.Store(40)
	mockClock.Advance(time.Second).MustWait(ctx)
	done.Store(70)
	mockClock.Advance(time.Second).MustWait(ctx)

	done.Store(100)
	stop()

	calls := pl.snapshot()
	require.Len(t, calls, 3)
	assert.Equal(t, [2]int{40, 100}, calls[0])
	assert.Equal(t, [2]int{70, 100}, calls[1])
	assert.Equal(t, [2]int{100, 100}, calls[2])
}

func TestProgressStopIsIdempotent(t *testing.T) {
	mockClock := quartz.NewMock(t)
	var pl progressLog
	p := &Progress{Interval: time.Second, Clock: mockClock, Fn: pl.record}

	var done atomic.Int64
	stop := p.start(10, &done)
	done.Store(10)
	stop()
	stop()

	require.Len(t, pl.snapshot(), 1)
}

func TestProgressNilReporterIsSafe(t *testing.T) {
	var p *Progress
	var done atomic.Int64

	stop := p.start(10, &done)
	stop()

	stop = (&Progress{}).start(10, &done)
	stop()
}

func TestSimulateDeliversFinalReport(t *testing.T) {
	ctx := context.Background()
	mockClock := quartz.NewMock(t)

	var pl progressLog
	res, err := Simulate(ctx, Request{
		Hole:      mustCards(t, "As Kh"),
		Opponents: 1,
		Trials:    600,
		Seed:      seedPtr(8),
		Progress:  &Progress{Interval: time.Minute, Clock: mockClock, Fn: pl.record},
	})
	require.NoError(t, err)
	require.Equal(t, 600, res.Trials)

	// The mock clock never fires mid-run; the run's final report is the
	// only delivery.
	calls := pl.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, [2]int{600, 600}, calls[0])
}

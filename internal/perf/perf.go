// Package perf times picker operations (renders, event dispatch) and logs
// the slow ones.
package perf

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Timer logs how long a named operation took, warning past a threshold.
type Timer struct {
	name      string
	logger    *slog.Logger
	start     time.Time
	threshold time.Duration
	recorder  *Recorder
}

// Stats is a snapshot of a Recorder.
type Stats struct {
	Name          string
	Count         int64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	SlowOps       int64
}

// Recorder aggregates durations of a repeated operation.
type Recorder struct {
	name      string
	logger    *slog.Logger
	count     int64
	totalDur  int64
	minDur    int64
	maxDur    int64
	slowOps   int64
	threshold time.Duration
}

func NewTimer(name string, logger *slog.Logger, threshold time.Duration) *Timer {
	return &Timer{
		name:      name,
		logger:    logger,
		start:     time.Now(),
		threshold: threshold,
	}
}

// Into makes Stop also feed the elapsed time to r.
func (t *Timer) Into(r *Recorder) *Timer {
	t.recorder = r
	return t
}

// Stop ends the timer and returns the elapsed time.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.recorder != nil {
		t.recorder.Record(elapsed)
	}
	if t.logger != nil {
		t.logger.Debug(t.name, "duration_us", elapsed.Microseconds())
		if elapsed > t.threshold {
			t.logger.Warn(t.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", t.threshold.Milliseconds())
		}
	}
	return elapsed
}

func NewRecorder(name string, logger *slog.Logger, threshold time.Duration) *Recorder {
	return &Recorder{
		name:      name,
		logger:    logger,
		threshold: threshold,
		minDur:    1<<63 - 1,
	}
}

func (r *Recorder) Record(elapsed time.Duration) {
	elapsedNs := elapsed.Nanoseconds()
	atomic.AddInt64(&r.count, 1)
	atomic.AddInt64(&r.totalDur, elapsedNs)

	for {
		minDur := atomic.LoadInt64(&r.minDur)
		if elapsedNs >= minDur {
			break
		}
		if atomic.CompareAndSwapInt64(&r.minDur, minDur, elapsedNs) {
			break
		}
	}

	for {
		maxDur := atomic.LoadInt64(&r.maxDur)
		if elapsedNs <= maxDur {
			break
		}
		if atomic.CompareAndSwapInt64(&r.maxDur, maxDur, elapsedNs) {
			break
		}
	}

	if elapsed >= r.threshold {
		atomic.AddInt64(&r.slowOps, 1)
	}
}

func (r *Recorder) Stats() Stats {
	minDur := atomic.LoadInt64(&r.minDur)
	if minDur == 1<<63-1 {
		minDur = 0
	}

	return Stats{
		Name:          r.name,
		Count:         atomic.LoadInt64(&r.count),
		TotalDuration: time.Duration(atomic.LoadInt64(&r.totalDur)),
		MinDuration:   time.Duration(minDur),
		MaxDuration:   time.Duration(atomic.LoadInt64(&r.maxDur)),
		SlowOps:       atomic.LoadInt64(&r.slowOps),
	}
}

func (s *Stats) AvgDuration() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Count)
}

// LogStats writes a summary at debug level. Nothing is logged before the
// first Record.
func (r *Recorder) LogStats() {
	stats := r.Stats()
	if stats.Count == 0 || r.logger == nil {
		return
	}
	r.logger.Debug(r.name+"_stats",
		"count", stats.Count,
		"avg_us", stats.AvgDuration().Microseconds(),
		"min_us", stats.MinDuration.Microseconds(),
		"max_us", stats.MaxDuration.Microseconds(),
		"slow_ops", stats.SlowOps,
	)
}

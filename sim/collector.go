// Implements the Collector, the streaming latency statistics accumulator.
// Quantiles come from an HDR histogram: single pass, fixed memory, so a run
// can record millions of completions without retaining samples.

package sim

import (
	"github.com/HdrHistogram/hdrhistogram-go"
)

// histogramSigFigs is the histogram value precision: 3 significant figures,
// at most 0.1% quantile value error.
const histogramSigFigs = 3

// LatencyStats is a snapshot of one latency series. All values are in ticks;
// the zero value is returned before any sample has been recorded.
type LatencyStats struct {
	Count int64
	Mean  float64
	P50   int64
	P95   int64
	P99   int64
	Max   int64
}

// latencySeries accumulates one series: exact running mean and max, histogram
// quantiles.
type latencySeries struct {
	hist  *hdrhistogram.Histogram
	sum   int64
	max   int64
	count int64
}

func newLatencySeries(maxTrackable int64) *latencySeries {
	if maxTrackable < 2 {
		maxTrackable = 2
	}
	return &latencySeries{
		hist: hdrhistogram.New(1, maxTrackable, histogramSigFigs),
	}
}

func (s *latencySeries) record(v int64) {
	if v < 0 {
		v = 0
	}
	s.sum += v
	if v > s.max {
		s.max = v
	}
	s.count++

	clamped := v
	if clamped < s.hist.LowestTrackableValue() {
		clamped = s.hist.LowestTrackableValue()
	}
	if clamped > s.hist.HighestTrackableValue() {
		clamped = s.hist.HighestTrackableValue()
	}
	_ = s.hist.RecordValue(clamped)
}

func (s *latencySeries) stats() LatencyStats {
	st := LatencyStats{Count: s.count, Max: s.max}
	if s.count > 0 {
		st.Mean = float64(s.sum) / float64(s.count)
	}
	if s.hist.TotalCount() > 0 {
		st.P50 = s.hist.ValueAtQuantile(50)
		st.P95 = s.hist.ValueAtQuantile(95)
		st.P99 = s.hist.ValueAtQuantile(99)
	}
	return st
}

// Collector accumulates the two latency series reported by the consumer:
// total (creation to completion) and execution (admission to completion).
// Mutated only by Consumer.Tick; read at the end of the run.
type Collector struct {
	total *latencySeries
	exec  *latencySeries
}

// NewCollector creates a Collector able to track latencies up to maxLatency
// ticks. No latency can exceed the run horizon, so callers pass that.
func NewCollector(maxLatency int64) *Collector {
	return &Collector{
		total: newLatencySeries(maxLatency),
		exec:  newLatencySeries(maxLatency),
	}
}

// Collect records one completed request. Latencies are in ticks and are
// expected to be non-negative; negative values are clamped to zero.
func (c *Collector) Collect(totalLatency, execLatency int64) {
	c.total.record(totalLatency)
	c.exec.record(execLatency)
}

// TotalStats returns the current snapshot of the total-latency series.
// Legal to call at any time; zero-valued before the first sample.
func (c *Collector) TotalStats() LatencyStats {
	return c.total.stats()
}

// ExecStats returns the current snapshot of the execution-latency series.
func (c *Collector) ExecStats() LatencyStats {
	return c.exec.stats()
}

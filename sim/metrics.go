// Final run report: the statistics the simulation exists to produce.

package sim

import (
	"fmt"
	"io"
)

// Report holds everything the driver knows at the end of a run: the
// configured rates, the peak depths, the stage counters, and the two latency
// series (mean, p95, p99, max are the reported statistics; p50 is tracked on
// the snapshot as well).
type Report struct {
	ProducerRate float64
	ConsumerRate float64

	PeakQueued   int
	PeakInFlight int

	Generated  uint64
	Dispatched uint64
	Processed  uint64

	Total LatencyStats
	Exec  LatencyStats
}

// Print writes the report in the three-line console format, latencies in
// seconds.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "producer rate: %g consumer rate: %g maximum queued: %d executing: %d\n",
		r.ProducerRate, r.ConsumerRate, r.PeakQueued, r.PeakInFlight)
	fmt.Fprintf(w, "total latencies: mean %.6f  p95 %.6f  p99 %.6f  max %.6f\n",
		ticksToSeconds(r.Total.Mean), ticksToSeconds(float64(r.Total.P95)),
		ticksToSeconds(float64(r.Total.P99)), ticksToSeconds(float64(r.Total.Max)))
	fmt.Fprintf(w, "exec latencies:  mean %.6f  p95 %.6f  p99 %.6f  max %.6f\n",
		ticksToSeconds(r.Exec.Mean), ticksToSeconds(float64(r.Exec.P95)),
		ticksToSeconds(float64(r.Exec.P99)), ticksToSeconds(float64(r.Exec.Max)))
}

func ticksToSeconds(ticks float64) float64 {
	return ticks / float64(TicksPerSecond)
}

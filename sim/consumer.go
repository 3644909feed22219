// Implements the Consumer: a single virtual server draining its in-flight
// queue in FIFO order at the pace of its service-time process.

package sim

import (
	"fmt"
	"math/rand"
)

// Consumer models the service stage. One request is in service at a time and
// admitted requests wait in the in-flight queue behind it, so the achievable
// completion rate is exactly 1/mean(service process). The in-flight count is
// bounded only by the dispatcher's admission limit.
type Consumer struct {
	pause     IntervalProcess
	inflight  *RequestQueue
	next      int64 // tick the head request finishes service
	processed uint64
	collector *Collector
	interval  float64 // mean service interval in ticks
}

// NewConsumer creates a Consumer serving rate requests per second with
// service times drawn from the given process kind.
func NewConsumer(rate float64, kind string, capFactor float64, collector *Collector, rng *rand.Rand) (*Consumer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("consumer rate must be positive, got %v", rate)
	}
	interval := float64(TicksPerSecond) / rate
	pause, err := NewIntervalProcess(kind, interval, capFactor, rng)
	if err != nil {
		return nil, fmt.Errorf("consumer process: %w", err)
	}
	return &Consumer{
		pause:     pause,
		inflight:  &RequestQueue{},
		collector: collector,
		interval:  interval,
	}, nil
}

// Execute admits a request into service at tick now. Called by the dispatcher
// only; admission control happens there, not here.
func (c *Consumer) Execute(now int64, r *Request) {
	if c.inflight.Len() == 0 {
		c.next = now + c.pause.Next()
	}
	r.DispatchedAt = now
	c.inflight.Enqueue(r)
}

// Tick completes every in-flight request whose service time has elapsed,
// reporting total and execution latency to the collector.
func (c *Consumer) Tick(now int64) {
	for c.inflight.Len() > 0 && now >= c.next {
		r := c.inflight.Dequeue()
		r.CompletedAt = now
		c.collector.Collect(now-r.CreatedAt, now-r.DispatchedAt)
		c.processed++
		c.next += c.pause.Next()
	}
}

// InFlight returns the number of admitted, unfinished requests.
func (c *Consumer) InFlight() int {
	return c.inflight.Len()
}

// Processed returns the number of completed requests.
func (c *Consumer) Processed() uint64 {
	return c.processed
}

// ServiceInterval returns the mean service interval in ticks.
func (c *Consumer) ServiceInterval() float64 {
	return c.interval
}

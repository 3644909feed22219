// Implements the Dispatcher, the admission-control stage between producer
// and consumer.

package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ErrLimitZero is returned when the computed admission limit is zero: the
// consumer cannot finish even one request inside the latency goal, so the
// system is not simulatable.
var ErrLimitZero = errors.New("consumer rate too low relative to latency goal")

// Dispatcher gates admission into the consumer. It is the sole component
// enforcing the concurrency limit: no more than limit requests are ever in
// the consumer, regardless of how fast the producer emits.
type Dispatcher struct {
	pause      IntervalProcess
	next       int64 // tick of the next dispatch attempt
	pending    *RequestQueue
	consumer   *Consumer
	limit      int
	dispatched uint64
}

// NewDispatcher computes the admission limit
// floor(latencyGoal * goalFactor / consumer service interval) and fails with
// ErrLimitZero if it is zero. latencyGoal is in ticks and doubles as the mean
// period of the dispatch-attempt cadence, mirroring the window it enforces.
func NewDispatcher(latencyGoal int64, goalFactor float64, kind string, capFactor float64, consumer *Consumer, rng *rand.Rand) (*Dispatcher, error) {
	if latencyGoal <= 0 {
		return nil, fmt.Errorf("latency goal must be positive, got %d", latencyGoal)
	}
	if goalFactor <= 0 {
		return nil, fmt.Errorf("goal factor must be positive, got %v", goalFactor)
	}
	pause, err := NewIntervalProcess(kind, float64(latencyGoal), capFactor, rng)
	if err != nil {
		return nil, fmt.Errorf("dispatcher process: %w", err)
	}

	limit := int(math.Floor(float64(latencyGoal) * goalFactor / consumer.ServiceInterval()))
	logrus.Debugf("dispatcher admission limit %d requests (goal %dus, factor %v)", limit, latencyGoal, goalFactor)
	if limit == 0 {
		return nil, ErrLimitZero
	}

	return &Dispatcher{
		pause:    pause,
		pending:  &RequestQueue{},
		consumer: consumer,
		limit:    limit,
	}, nil
}

// Queue appends a new pending request created at tick at. The queue is
// unbounded; backlog growth under overload is the observable of interest.
func (d *Dispatcher) Queue(at int64) {
	d.pending.Enqueue(&Request{CreatedAt: at})
}

// Tick runs one dispatch attempt if the cadence has fired: pending requests
// are admitted in FIFO order until the queue empties or the consumer reaches
// the admission limit.
func (d *Dispatcher) Tick(now int64) {
	if now < d.next {
		return
	}
	d.next += d.pause.Next()

	for d.pending.Len() > 0 && d.consumer.InFlight() < d.limit {
		d.consumer.Execute(now, d.pending.Dequeue())
		d.dispatched++
	}
}

// Queued returns the current pending-queue depth.
func (d *Dispatcher) Queued() int {
	return d.pending.Len()
}

// Dispatched returns the number of requests admitted so far.
func (d *Dispatcher) Dispatched() uint64 {
	return d.dispatched
}

// Limit returns the admission concurrency limit.
func (d *Dispatcher) Limit() int {
	return d.limit
}

// Implements the Producer, the synthetic load source feeding the
// dispatcher's pending queue.

package sim

import (
	"fmt"
	"math/rand"
)

// Producer emits requests at the pace of its inter-arrival process.
type Producer struct {
	pause      IntervalProcess
	dispatcher *Dispatcher
	next       int64 // scheduled tick of the next emission
	generated  uint64
}

// NewProducer creates a Producer emitting rate requests per second with
// inter-arrival gaps drawn from the given process kind.
func NewProducer(rate float64, kind string, capFactor float64, dispatcher *Dispatcher, rng *rand.Rand) (*Producer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("producer rate must be positive, got %v", rate)
	}
	pause, err := NewIntervalProcess(kind, float64(TicksPerSecond)/rate, capFactor, rng)
	if err != nil {
		return nil, fmt.Errorf("producer process: %w", err)
	}
	return &Producer{pause: pause, dispatcher: dispatcher}, nil
}

// Tick emits every request whose scheduled emission time has been reached.
// The catch-up loop keeps the configured rate correct even when one step
// spans several inter-arrival intervals; each request is stamped with its
// scheduled emission tick, not the tick the loop caught up on.
func (p *Producer) Tick(now int64) {
	for now >= p.next {
		p.dispatcher.Queue(p.next)
		p.generated++
		p.next += p.pause.Next()
	}
}

// Generated returns the number of requests emitted so far.
func (p *Producer) Generated() uint64 {
	return p.generated
}

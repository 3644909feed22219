// Defines the Request struct that models one unit of synthetic work flowing
// producer -> dispatcher -> consumer.

package sim

import (
	"fmt"
)

// Request models a single request's pass through the pipeline. Timestamps are
// in ticks and satisfy CreatedAt <= DispatchedAt <= CompletedAt once each is
// set. A request is owned by exactly one queue at a time: the dispatcher's
// pending queue from creation until admission, then the consumer's in-flight
// queue until completion.
type Request struct {
	CreatedAt    int64 // tick the producer emitted it (its scheduled emission time)
	DispatchedAt int64 // tick the dispatcher admitted it into the consumer
	CompletedAt  int64 // tick service finished
}

// This method returns a human-readable string representation of a Request.
func (r Request) String() string {
	return fmt.Sprintf("Request: (CreatedAt: %d, DispatchedAt: %d, CompletedAt: %d)", r.CreatedAt, r.DispatchedAt, r.CompletedAt)
}

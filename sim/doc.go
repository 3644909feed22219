// Package sim implements a discrete-time model of a three-stage request
// pipeline: a producer emitting synthetic load, a dispatcher applying
// admission control, and a consumer serving requests one at a time.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - request.go: the Request record and its lifecycle timestamps
//   - process.go: the interval processes pacing each stage
//   - simulator.go: the fixed-step clock ticking consumer, producer and
//     dispatcher each step
//
// # Model
//
// Logical time advances in ticks of one microsecond. Requests flow strictly
// downstream: the producer appends them to the dispatcher's pending queue,
// the dispatcher admits them into the consumer's in-flight queue, and the
// consumer finalizes them and reports their latencies to the collector.
//
// The dispatcher's admission limit is
// floor(latency goal * goal factor / consumer service interval): the number
// of requests the consumer can finish inside the latency goal, scaled by the
// goal factor. It is the only mechanism bounding consumer occupancy; the
// pending queue itself is unbounded so overload shows up as backlog growth.
//
// The collector accumulates total (creation to completion) and execution
// (admission to completion) latency in a streaming histogram, so horizon and
// rate are bounded by CPU time, not memory.
package sim

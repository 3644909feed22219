// Implements the RequestQueue FIFO used for the dispatcher's pending
// requests and the consumer's in-flight requests.

package sim

import (
	"fmt"
	"strings"
)

// RequestQueue is a FIFO of requests. The dispatcher holds pending requests
// in one, the consumer holds in-flight requests in another; a request moves
// between them and is never shared. Deliberately unbounded: overload shows up
// as backlog growth instead of silent drops.
type RequestQueue struct {
	queue []*Request
}

// Enqueue adds a request to the back of the queue.
func (q *RequestQueue) Enqueue(r *Request) {
	q.queue = append(q.queue, r)
}

// Dequeue removes and returns the request at the front of the queue.
// Returns nil if the queue is empty.
func (q *RequestQueue) Dequeue() *Request {
	if len(q.queue) == 0 {
		return nil
	}
	r := q.queue[0]
	q.queue = q.queue[1:]
	return r
}

// Peek returns the request at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *RequestQueue) Peek() *Request {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of requests in the queue.
func (q *RequestQueue) Len() int {
	return len(q.queue)
}

func (q *RequestQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range q.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// SPDX-License-Identifier: EPL-2.0

package synth

// ChordQueue relays chord codes from a controller goroutine to the
// buffer-filling goroutine. Both ends are non-blocking: Post never
// waits for the consumer and TryNext never waits for a producer, which
// is what keeps the real-time fill path free of dropouts. Codes are
// delivered strictly first-in-first-out.
//
// Backed by a buffered channel, so the capacity is fixed at
// construction. When the queue is full Post drops the new code and
// reports it; already-queued codes are never overwritten. In practice
// updates arrive at human typing speed, orders of magnitude below the
// buffer rate, so even a small capacity never fills.
type ChordQueue struct {
	codes chan string
}

// DefaultQueueDepth is plenty for interactively typed chord changes.
const DefaultQueueDepth = 16

// NewChordQueue creates a queue holding up to capacity pending codes.
// A capacity below one is raised to DefaultQueueDepth.
func NewChordQueue(capacity int) *ChordQueue {
	if capacity < 1 {
		capacity = DefaultQueueDepth
	}

	return &ChordQueue{codes: make(chan string, capacity)}
}

// Post enqueues a chord code without blocking. It may be called from
// any goroutine. Returns false if the queue was full and the code was
// dropped.
func (q *ChordQueue) Post(code string) bool {
	select {
	case q.codes <- code:
		return true
	default:
		return false
	}
}

// TryNext dequeues the oldest pending code without blocking. Intended
// to be called by the buffer-filling goroutine once per buffer, so at
// most one chord change takes effect per buffer and a buffer is never
// rendered from a half-applied update.
func (q *ChordQueue) TryNext() (string, bool) {
	select {
	case code := <-q.codes:
		return code, true
	default:
		return "", false
	}
}

// Drain discards all pending codes. Used on stream stop.
func (q *ChordQueue) Drain() {
	for {
		select {
		case <-q.codes:
		default:
			return
		}
	}
}

// Len reports the number of codes currently pending.
func (q *ChordQueue) Len() int {
	return len(q.codes)
}

// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"sync"
	"testing"
)

func TestChordQueue_PostAndTryNext(t *testing.T) {
	t.Parallel()

	q := NewChordQueue(4)

	if !q.Post("Am") {
		t.Fatal("Post() dropped a code on an empty queue")
	}

	code, ok := q.TryNext()
	if !ok || code != "Am" {
		t.Fatalf("TryNext() = (%q, %v), want (\"Am\", true)", code, ok)
	}
}

func TestChordQueue_EmptyTryNext(t *testing.T) {
	t.Parallel()

	q := NewChordQueue(4)

	code, ok := q.TryNext()
	if ok {
		t.Errorf("TryNext() = (%q, true) on empty queue, want ok=false", code)
	}
}

func TestChordQueue_FIFOOrder(t *testing.T) {
	t.Parallel()

	q := NewChordQueue(8)
	posted := []string{"Am", "Em", "C", "G"}

	for _, code := range posted {
		if !q.Post(code) {
			t.Fatalf("Post(%q) dropped", code)
		}
	}

	// One consumption per buffer: each TryNext yields the oldest
	for i, want := range posted {
		code, ok := q.TryNext()
		if !ok || code != want {
			t.Fatalf("TryNext() #%d = (%q, %v), want (%q, true)", i, code, ok, want)
		}
	}
}

func TestChordQueue_FullDropsNewest(t *testing.T) {
	t.Parallel()

	q := NewChordQueue(2)

	if !q.Post("C") || !q.Post("G") {
		t.Fatal("Post() dropped within capacity")
	}

	if q.Post("Am") {
		t.Error("Post() accepted a code beyond capacity")
	}

	// Queued codes survive the overflow untouched
	if code, _ := q.TryNext(); code != "C" {
		t.Errorf("TryNext() = %q, want \"C\"", code)
	}
	if code, _ := q.TryNext(); code != "G" {
		t.Errorf("TryNext() = %q, want \"G\"", code)
	}
}

func TestChordQueue_Drain(t *testing.T) {
	t.Parallel()

	q := NewChordQueue(8)
	q.Post("C")
	q.Post("G")
	q.Post("Am")

	q.Drain()

	if q.Len() != 0 {
		t.Errorf("Len() = %d after Drain, want 0", q.Len())
	}

	if _, ok := q.TryNext(); ok {
		t.Error("TryNext() returned a code after Drain")
	}
}

func TestChordQueue_DefaultCapacity(t *testing.T) {
	t.Parallel()

	q := NewChordQueue(0)

	for i := 0; i < DefaultQueueDepth; i++ {
		if !q.Post("C") {
			t.Fatalf("Post() #%d dropped below DefaultQueueDepth", i)
		}
	}
}

func TestChordQueue_ConcurrentPostAndTryNext(t *testing.T) {
	t.Parallel()

	// TryNext must stay non-blocking while posts are in flight. Run
	// with -race to check the enqueue/dequeue pairing.
	q := NewChordQueue(64)

	var wg sync.WaitGroup
	wg.Add(2)

	const posts = 10000

	go func() {
		defer wg.Done()
		for i := 0; i < posts; i++ {
			q.Post("Am")
		}
	}()

	consumed := 0
	go func() {
		defer wg.Done()
		for i := 0; i < posts*2; i++ {
			if _, ok := q.TryNext(); ok {
				consumed++
			}
		}
	}()

	wg.Wait()

	// Drain the rest; every post was either consumed, still queued,
	// or dropped on overflow — never lost in between.
	for {
		if _, ok := q.TryNext(); !ok {
			break
		}
		consumed++
	}

	if consumed > posts {
		t.Errorf("consumed %d codes, more than the %d posted", consumed, posts)
	}
}

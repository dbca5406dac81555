package ensure

import "sync"

// workQueue is a mutex-guarded FIFO shared by one run's workers. Pop is
// atomic: two workers can never receive the same ticker. The queue lives for
// exactly one orchestration run and is never shared across runs.
type workQueue struct {
	mu    sync.Mutex
	items []string
}

func newWorkQueue(items []string) *workQueue {
	q := &workQueue{items: make([]string, len(items))}
	copy(q.items, items)
	return q
}

// pop removes and returns the next ticker, or false if the queue is empty.
func (q *workQueue) pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return "", false
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

// remaining returns how many tickers were never dequeued.
func (q *workQueue) remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

package schedule

import "sync"

// TaskQueue is a drainable task scheduler: callbacks scheduled on it run,
// in order, on the next call to Drain. It is the next-task strategy -
// embeddings that own an event loop drain the queue at the end of each
// turn.
type TaskQueue struct {
	mu      sync.Mutex
	pending []*queueEntry
}

type queueEntry struct {
	fn       func()
	canceled bool
}

// Queue returns a new drainable task queue.
func Queue() *TaskQueue {
	return &TaskQueue{}
}

// Schedule adds fn to the queue and returns its cancel function.
func (q *TaskQueue) Schedule(fn func()) func() {
	entry := &queueEntry{fn: fn}
	q.mu.Lock()
	q.pending = append(q.pending, entry)
	q.mu.Unlock()
	return func() {
		q.mu.Lock()
		entry.canceled = true
		q.mu.Unlock()
	}
}

// Drain runs all callbacks scheduled so far, in scheduling order.
// Callbacks scheduled while draining run on the next Drain.
func (q *TaskQueue) Drain() {
	q.mu.Lock()
	entries := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, entry := range entries {
		q.mu.Lock()
		canceled := entry.canceled
		q.mu.Unlock()
		if canceled {
			continue
		}
		runScheduled("schedule.TaskQueue.Drain", entry.fn)
	}
}

// Len reports how many callbacks are waiting.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, entry := range q.pending {
		if !entry.canceled {
			n++
		}
	}
	return n
}

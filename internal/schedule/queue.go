package schedule

import (
	"sync"

	"github.com/google/uuid"
)

// Token identifies a deferred task. A token can be used to cancel the task
// before its turn runs.
type Token struct {
	id uuid.UUID
}

// Zero returns true for the zero token (no task).
func (t Token) Zero() bool {
	return t.id == uuid.Nil
}

// String returns the token's identifier.
func (t Token) String() string {
	return t.id.String()
}

type task struct {
	token Token
	fn    func()
}

// Queue is a FIFO of deferred tasks. Tasks queued during a turn run on the
// following turn, never the current one.
type Queue struct {
	mu    sync.Mutex
	tasks []task
}

// NewQueue creates an empty run queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Defer queues fn for the next turn and returns its cancellation token.
// A nil fn returns the zero token and queues nothing.
func (q *Queue) Defer(fn func()) Token {
	if fn == nil {
		return Token{}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	t := Token{id: uuid.New()}
	q.tasks = append(q.tasks, task{token: t, fn: fn})
	return t
}

// Cancel removes a queued task. Returns false if the task already ran or
// was never queued.
func (q *Queue) Cancel(t Token) bool {
	if t.Zero() {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for i, tk := range q.tasks {
		if tk.token == t {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunTurn runs every task queued before the call, in order, and returns the
// count run. Tasks deferred by a running task land on the next turn.
func (q *Queue) RunTurn() int {
	q.mu.Lock()
	batch := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, tk := range batch {
		tk.fn()
	}
	return len(batch)
}

// Flush runs turns until the queue is empty and returns the total count run.
func (q *Queue) Flush() int {
	total := 0
	for {
		n := q.RunTurn()
		if n == 0 {
			return total
		}
		total += n
	}
}

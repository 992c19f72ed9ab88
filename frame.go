package nudge

// TaskID identifies a queued frame task so it can be cancelled before it
// runs.
type TaskID int64

type frameTask struct {
	id TaskID
	fn func()
}

// frameQueue holds single-shot tasks deferred to the next frame. A task
// queued during one Update runs at the start of the next Update, after the
// intervening View has been rendered and scanned. This is how mount-time
// cursor effects wait for layout to settle instead of flashing on a handle
// that has not been drawn yet.
type frameQueue struct {
	nextID TaskID
	tasks  []frameTask
}

func (q *frameQueue) add(fn func()) TaskID {
	q.nextID++
	q.tasks = append(q.tasks, frameTask{id: q.nextID, fn: fn})
	return q.nextID
}

func (q *frameQueue) cancel(id TaskID) bool {
	for i, t := range q.tasks {
		if t.id == id {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// flush runs every task queued before this call, in queue order. Tasks
// queued by a running task land in the next flush, not this one.
func (q *frameQueue) flush() {
	if len(q.tasks) == 0 {
		return
	}
	due := q.tasks
	q.tasks = nil
	for _, t := range due {
		t.fn()
	}
}

func (q *frameQueue) len() int { return len(q.tasks) }

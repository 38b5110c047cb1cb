package locomotion

import "container/heap"

type event struct {
	at  int
	seq int
	fn  func()
}

type eventQueue []event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x any)   { *q = append(*q, x.(event)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// scheduler holds fire-once actions keyed by simulation tick. Actions due
// on the same tick run in the order they were scheduled.
type scheduler struct {
	queue eventQueue
	seq   int
}

func (s *scheduler) at(tick int, fn func()) {
	s.seq++
	heap.Push(&s.queue, event{at: tick, seq: s.seq, fn: fn})
}

// run pops every action due at or before tick. When alive reports false the
// actions are dropped instead of run.
func (s *scheduler) run(tick int, alive func() bool) {
	for len(s.queue) > 0 && s.queue[0].at <= tick {
		e := heap.Pop(&s.queue).(event)
		if alive() {
			e.fn()
		}
	}
}

func (s *scheduler) clear() {
	s.queue = s.queue[:0]
}

func (s *scheduler) pending() int { return len(s.queue) }

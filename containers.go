package aoc

import (
	"container/heap"
	"fmt"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// PQ is a binary heap of values keyed by a numeric priority.
//
// Values are identified by equality, so a value is queued at most once;
// pushing a value that is already queued moves it to the new priority.
// The order in which values of equal priority are popped is unspecified.
//
// The zero value is an empty min queue.
type PQ[T comparable, P Number] struct {
	pq pq[T, P]
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T comparable, P Number]() *PQ[T, P] {
	return &PQ[T, P]{}
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T comparable, P Number]() *PQ[T, P] {
	return &PQ[T, P]{
		pq: pq[T, P]{
			max: true,
		},
	}
}

// Push adds v with priority p.
func (q *PQ[T, P]) Push(v T, p P) {
	if i, ok := q.pq.ix[v]; ok {
		q.pq.q[i].p = p
		heap.Fix(&q.pq, i)
		return
	}
	heap.Push(&q.pq, pqItem[T, P]{v: v, p: p})
}

// Pop removes and returns the value with the lowest priority (highest,
// for a MaxQueue). It returns ErrQueueEmpty if the queue is empty.
func (q *PQ[T, P]) Pop() (T, error) {
	if q.pq.Len() == 0 {
		var zero T
		return zero, ErrQueueEmpty
	}
	return heap.Pop(&q.pq).(pqItem[T, P]).v, nil
}

// Peek returns the value Pop would return, without removing it.
func (q *PQ[T, P]) Peek() (v T, p P, ok bool) {
	if q.pq.Len() == 0 {
		return v, p, false
	}
	it := q.pq.q[0]
	return it.v, it.p, true
}

// ChangePriority moves the queued value v to priority p.
// It returns ErrValueNotFound if v is not queued.
func (q *PQ[T, P]) ChangePriority(v T, p P) error {
	i, ok := q.pq.ix[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrValueNotFound, v)
	}
	q.pq.q[i].p = p
	heap.Fix(&q.pq, i)
	return nil
}

// Priority reports the current priority of v.
func (q *PQ[T, P]) Priority(v T) (P, bool) {
	i, ok := q.pq.ix[v]
	if !ok {
		var zero P
		return zero, false
	}
	return q.pq.q[i].p, true
}

func (q *PQ[T, P]) Contains(v T) bool {
	_, ok := q.pq.ix[v]
	return ok
}

func (q *PQ[T, P]) Len() int {
	return q.pq.Len()
}

type pqItem[T comparable, P Number] struct {
	v T
	p P
}

func (i pqItem[T, P]) String() string {
	return fmt.Sprintf("%v:%v", i.v, i.p)
}

// pq implements heap.Interface. ix tracks the heap index of every
// queued value and is updated on every swap.
type pq[T comparable, P Number] struct {
	q   []pqItem[T, P]
	ix  map[T]int
	max bool
}

func (pq pq[T, P]) Len() int { return len(pq.q) }

func (pq pq[T, P]) Less(i, j int) bool {
	if pq.max {
		return pq.q[i].p > pq.q[j].p
	}
	return pq.q[i].p < pq.q[j].p
}

func (pq pq[T, P]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	pq.ix[q[i].v] = i
	pq.ix[q[j].v] = j
}

func (pq *pq[T, P]) Push(x any) {
	InitMap(&pq.ix)
	it := x.(pqItem[T, P])
	pq.ix[it.v] = len(pq.q)
	pq.q = append(pq.q, it)
}

func (pq *pq[T, P]) Pop() any {
	old := pq.q
	n := len(old)
	it := old[n-1]
	old[n-1] = pqItem[T, P]{} // avoid memory leak
	delete(pq.ix, it.v)

	pq.q = old[0 : n-1]
	return it
}

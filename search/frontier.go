package search

import "container/heap"

// pathNode is one action of a partial path. Siblings share their common
// prefix through parent, so pushing a successor costs O(1) instead of a copy
// of the whole path.
type pathNode[A any] struct {
	action A
	parent *pathNode[A]
	depth  int
}

// extend returns the path n followed by a.
func (n *pathNode[A]) extend(a A) *pathNode[A] {
	return &pathNode[A]{action: a, parent: n, depth: n.len() + 1}
}

// len reports the number of actions on the path. A nil node is the empty path.
func (n *pathNode[A]) len() int {
	if n == nil {
		return 0
	}

	return n.depth
}

// actions materializes the path, first action first. The empty path yields
// an empty, non-nil slice.
func (n *pathNode[A]) actions() []A {
	out := make([]A, n.len())
	for cur := n; cur != nil; cur = cur.parent {
		out[cur.depth-1] = cur.action
	}

	return out
}

// entry is one frontier element. seq is the insertion sequence number used to
// break priority ties in favour of the earlier insertion.
type entry[S comparable, A any] struct {
	priority float64
	seq      uint64
	state    S
	g        float64
	path     *pathNode[A]
}

// frontier is the discipline-specific container behind the shared loop.
type frontier[S comparable, A any] interface {
	push(e entry[S, A])
	pop() entry[S, A]
	len() int
}

// fifoQueue pops in insertion order (BFS).
type fifoQueue[S comparable, A any] struct {
	items []entry[S, A]
	head  int
}

func (q *fifoQueue[S, A]) push(e entry[S, A]) { q.items = append(q.items, e) }

func (q *fifoQueue[S, A]) pop() entry[S, A] {
	e := q.items[q.head]
	q.items[q.head] = entry[S, A]{}
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}

	return e
}

func (q *fifoQueue[S, A]) len() int { return len(q.items) - q.head }

// lifoStack pops the most recent insertion first (DFS).
type lifoStack[S comparable, A any] struct {
	items []entry[S, A]
}

func (s *lifoStack[S, A]) push(e entry[S, A]) { s.items = append(s.items, e) }

func (s *lifoStack[S, A]) pop() entry[S, A] {
	n := len(s.items) - 1
	e := s.items[n]
	s.items[n] = entry[S, A]{}
	s.items = s.items[:n]

	return e
}

func (s *lifoStack[S, A]) len() int { return len(s.items) }

// priorityQueue pops the lowest (priority, seq) first (UCS, Greedy, A*).
// Stale entries are left in place and skipped by the loop on pop
// (lazy decrease-key).
type priorityQueue[S comparable, A any] struct {
	h entryHeap[S, A]
}

func (pq *priorityQueue[S, A]) push(e entry[S, A]) { heap.Push(&pq.h, e) }

func (pq *priorityQueue[S, A]) pop() entry[S, A] { return heap.Pop(&pq.h).(entry[S, A]) }

func (pq *priorityQueue[S, A]) len() int { return pq.h.Len() }

// entryHeap implements heap.Interface ordered by priority, then seq.
type entryHeap[S comparable, A any] []entry[S, A]

func (h entryHeap[S, A]) Len() int { return len(h) }

func (h entryHeap[S, A]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[S, A]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[S, A]) Push(x any) { *h = append(*h, x.(entry[S, A])) }

func (h *entryHeap[S, A]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[S, A]{}
	*h = old[:n-1]

	return item
}

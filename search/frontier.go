package search

import "container/heap"

// frontier holds cells that have been discovered but not finalized.
// Cells are arena indices.
type frontier interface {
	// push inserts idx with the given priority.
	push(idx, priority int)
	// update lowers the priority of an idx already in the frontier.
	update(idx, priority int)
	// pop removes and returns the next cell; ok is false when empty.
	pop() (idx int, ok bool)
	len() int
}

// fifo is a FIFO queue; priorities are ignored.
type fifo struct {
	items []int
	head  int
}

func (q *fifo) push(idx, _ int) { q.items = append(q.items, idx) }
func (q *fifo) update(int, int) {}
func (q *fifo) len() int        { return len(q.items) - q.head }

func (q *fifo) pop() (int, bool) {
	if q.head == len(q.items) {
		return -1, false
	}
	idx := q.items[q.head]
	q.head++

	return idx, true
}

// lifo is a LIFO stack; priorities are ignored and duplicates are allowed.
type lifo struct {
	items []int
}

func (s *lifo) push(idx, _ int) { s.items = append(s.items, idx) }
func (s *lifo) update(int, int) {}
func (s *lifo) len() int        { return len(s.items) }

func (s *lifo) pop() (int, bool) {
	n := len(s.items)
	if n == 0 {
		return -1, false
	}
	idx := s.items[n-1]
	s.items = s.items[:n-1]

	return idx, true
}

// heapItem is one entry of a minQueue.
type heapItem struct {
	idx      int // arena index
	priority int // primary key
	tie      int // secondary key: insertion sequence or arena index
	pos      int // position in the heap slice
}

// itemHeap implements heap.Interface ordered by (priority, tie).
type itemHeap []*heapItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].tie < h[j].tie
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *itemHeap) Push(x any) {
	item := x.(*heapItem)
	item.pos = len(*h)
	*h = append(*h, item)
}

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	item.pos = -1

	return item
}

// minQueue is an indexed binary heap supporting decrease-key.
// Among equal priorities the smaller tie wins: with tieByIndex the tie is the
// arena index (row-major order), otherwise it is the first-insertion sequence,
// which update preserves.
type minQueue struct {
	h          itemHeap
	items      map[int]*heapItem
	seq        int
	tieByIndex bool
}

func newMinQueue(capacity int, tieByIndex bool) *minQueue {
	return &minQueue{
		h:          make(itemHeap, 0, capacity),
		items:      make(map[int]*heapItem, capacity),
		tieByIndex: tieByIndex,
	}
}

func (q *minQueue) push(idx, priority int) {
	if _, ok := q.items[idx]; ok {
		q.update(idx, priority)
		return
	}
	tie := q.seq
	if q.tieByIndex {
		tie = idx
	}
	q.seq++
	item := &heapItem{idx: idx, priority: priority, tie: tie}
	q.items[idx] = item
	heap.Push(&q.h, item)
}

func (q *minQueue) update(idx, priority int) {
	item, ok := q.items[idx]
	if !ok {
		return
	}
	item.priority = priority
	heap.Fix(&q.h, item.pos)
}

func (q *minQueue) pop() (int, bool) {
	if len(q.h) == 0 {
		return -1, false
	}
	item := heap.Pop(&q.h).(*heapItem)
	delete(q.items, item.idx)

	return item.idx, true
}

func (q *minQueue) len() int { return len(q.h) }

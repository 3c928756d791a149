package queue

import (
	"container/heap"

	"os-visualizer/internal/core"
)

// Less reports whether a should be dispatched before b.
type Less func(a, b *core.Task) bool

// taskHeap implements heap.Interface and holds Tasks.
type taskHeap struct {
	items []*core.Task
	less  Less
}

// Len returns length of the heap
func (h taskHeap) Len() int { return len(h.items) }

// Less is the function used for heap order
func (h taskHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }

// Swap swaps 2 elements
func (h taskHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push adds item in heap
func (h *taskHeap) Push(x any) {
	h.items = append(h.items, x.(*core.Task))
}

// Pop returns last item in heap and removes it
func (h *taskHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	h.items = old[0 : n-1]
	return item
}

// ReadyQueue is a priority queue of arrived tasks ordered by a scheduler's predicate.
type ReadyQueue struct {
	h *taskHeap
}

func NewReadyQueue(less Less) *ReadyQueue {
	return &ReadyQueue{h: &taskHeap{less: less}}
}

func (q *ReadyQueue) Len() int {
	return q.h.Len()
}

func (q *ReadyQueue) Push(task *core.Task) {
	heap.Push(q.h, task)
}

// Pop removes and returns the most urgent task, or nil when empty.
func (q *ReadyQueue) Pop() *core.Task {
	if q.h.Len() == 0 {
		return nil
	}
	return heap.Pop(q.h).(*core.Task)
}

// FIFO is a plain first-in first-out ready queue used by the round robin levels.
type FIFO struct {
	items []*core.Task
}

func (f *FIFO) Len() int {
	return len(f.items)
}

func (f *FIFO) Push(task *core.Task) {
	f.items = append(f.items, task)
}

func (f *FIFO) Pop() *core.Task {
	if len(f.items) == 0 {
		return nil
	}
	item := f.items[0]
	f.items[0] = nil
	f.items = f.items[1:]
	return item
}

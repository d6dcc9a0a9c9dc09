package pqueue

import "container/heap"

// Queue is an indexed binary min-heap over ids in [0, N). It
// implements heap.Interface internally (Len/Less/Swap/Push/Pop are
// exported only because container/heap requires it of its argument;
// callers should use Insert/FindMin/DeleteMin/ChangePriority instead
// of calling into container/heap directly).
//
// Queue is not safe for concurrent use; callers that share one Queue
// across queries must serialize access the same way they serialize
// use of the rest of a jps.Workspace.
type Queue struct {
	heap  []entry
	index []int // id -> position in heap, or -1 when not resident
}

// New allocates a Queue over the id universe [0, universe). universe
// should match the grid's Len() so every linear index has a slot.
func New(universe int) *Queue {
	index := make([]int, universe)
	for i := range index {
		index[i] = -1
	}

	return &Queue{heap: make([]entry, 0, universe), index: index}
}

// Reset empties the queue while retaining its backing arrays, so a
// Workspace can reuse one Queue across repeated Find calls on
// same-sized grids without reallocating (spec.md §9's "reuse across
// repeated queries to amortise allocation").
func (q *Queue) Reset() {
	q.heap = q.heap[:0]
	for i := range q.index {
		q.index[i] = -1
	}
}

// Size returns the number of resident entries.
func (q *Queue) Size() int { return len(q.heap) }

// Exists reports whether id is currently resident in the queue.
func (q *Queue) Exists(id int) bool {
	return id >= 0 && id < len(q.index) && q.index[id] != -1
}

// PriorityOf returns id's current priority and true, or (0, false) if
// id is not resident.
func (q *Queue) PriorityOf(id int) (float64, bool) {
	if !q.Exists(id) {
		return 0, false
	}

	return q.heap[q.index[id]].priority, true
}

// Insert adds id with the given priority. Returns ErrAlreadyExists if
// id is already resident.
func (q *Queue) Insert(id int, priority float64) error {
	if q.Exists(id) {
		return ErrAlreadyExists
	}
	heap.Push(q, entry{id: id, priority: priority})

	return nil
}

// ChangePriority re-keys an already-resident id and restores the heap
// invariant in O(log n), sifting up or down as required. Returns
// ErrNotFound if id is not resident.
func (q *Queue) ChangePriority(id int, newPriority float64) error {
	if !q.Exists(id) {
		return ErrNotFound
	}
	pos := q.index[id]
	q.heap[pos].priority = newPriority
	heap.Fix(q, pos)

	return nil
}

// FindMin peeks the lowest-priority resident entry without removing
// it. ok is false when the queue is empty.
func (q *Queue) FindMin() (id int, priority float64, ok bool) {
	if len(q.heap) == 0 {
		return 0, 0, false
	}

	return q.heap[0].id, q.heap[0].priority, true
}

// DeleteMin removes and returns the lowest-priority resident entry.
// ok is false when the queue is empty.
func (q *Queue) DeleteMin() (id int, priority float64, ok bool) {
	if len(q.heap) == 0 {
		return 0, 0, false
	}
	e := heap.Pop(q).(entry)

	return e.id, e.priority, true
}

// Len, Less, Swap, Push and Pop implement container/heap.Interface.
// They are exported as a side effect of that interface's requirements
// and are not part of Queue's intended public API.

func (q *Queue) Len() int { return len(q.heap) }

func (q *Queue) Less(i, j int) bool { return q.heap[i].priority < q.heap[j].priority }

func (q *Queue) Swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.index[q.heap[i].id] = i
	q.index[q.heap[j].id] = j
}

func (q *Queue) Push(x interface{}) {
	e := x.(entry)
	q.index[e.id] = len(q.heap)
	q.heap = append(q.heap, e)
}

func (q *Queue) Pop() interface{} {
	old := q.heap
	n := len(old)
	e := old[n-1]
	q.heap = old[:n-1]
	q.index[e.id] = -1

	return e
}

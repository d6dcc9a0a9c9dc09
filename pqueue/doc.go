// Package pqueue implements an indexed binary min-heap: a priority
// queue over a known universe of non-negative integer node IDs,
// augmented with an id→heap-position index so membership tests and
// priority changes are O(log n) instead of requiring a linear scan.
//
// What:
//
//   - Queue holds (id, priority) entries, id in [0, N).
//   - Insert/FindMin/DeleteMin/Exists/PriorityOf/ChangePriority all
//     run in O(log N) or better, per spec.md §4.2.
//
// Why:
//
//   - jps's A* outer loop needs "is this node already open?" and
//     "lower this node's priority" on every relaxation; a plain
//     container/heap (as dijkstra uses, via lazy-decrease-key) answers
//     neither in less than O(n) without the index, and accumulates
//     stale duplicate entries that the JPS per-query workspace reuse
//     (spec.md §5, §9) cannot tolerate across repeated Find calls.
//
// Complexity:
//
//   - Insert, DeleteMin, ChangePriority: O(log N)
//   - FindMin, Exists, PriorityOf, Size: O(1)
package pqueue

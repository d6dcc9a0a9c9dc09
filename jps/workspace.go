package jps

import (
	"github.com/katalvlaran/jps/grid"
	"github.com/katalvlaran/jps/pqueue"
)

// Workspace owns the per-query scratch state a single Find call needs
// (gScore, cameFrom, closed, and the indexed open queue). A Workspace
// is not safe for concurrent use, but a single Workspace may be reused
// sequentially across any number of Find calls — including against
// different grids — and will only reallocate its scratch arrays when
// the grid's cell count changes (spec.md §9's "dedicated per-query
// workspace... reuse across repeated queries to amortise allocation").
type Workspace struct {
	cfg Config

	grid *grid.Grid
	goal int

	gScore   []float64
	cameFrom []int
	closed   []bool
	open     *pqueue.Queue
}

// NewWorkspace constructs a Workspace with the given options applied
// over DefaultConfig(). Its scratch arrays are allocated lazily on the
// first Find call.
func NewWorkspace(opts ...Option) *Workspace {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Workspace{cfg: cfg}
}

// ensureCapacity (re)allocates the scratch arrays when n differs from
// their current size; otherwise it leaves them untouched for reset to
// clear in place.
func (w *Workspace) ensureCapacity(n int) {
	if len(w.gScore) == n {
		return
	}
	w.gScore = make([]float64, n)
	w.cameFrom = make([]int, n)
	w.closed = make([]bool, n)
	w.open = pqueue.New(n)
}

func (w *Workspace) reset() {
	for i := range w.closed {
		w.closed[i] = false
	}
	w.open.Reset()
}

// Find computes a shortest path from q.Start to q.Goal on q.Grid.
// Returns ErrInvalidQuery if q.Grid is nil or either index lies
// outside the grid. An unreachable, unwalkable, or otherwise
// pathless query is not an error: it is reported as Result{Found:false}.
func (w *Workspace) Find(q Query) (Result, error) {
	g := q.Grid
	if g == nil || !g.InBoundsIndex(q.Start) || !g.InBoundsIndex(q.Goal) {
		return Result{}, ErrInvalidQuery
	}
	if !g.WalkableIndex(q.Start) || !g.WalkableIndex(q.Goal) {
		return Result{Found: false}, nil
	}

	w.ensureCapacity(g.Len())
	w.reset()
	w.grid = g
	w.goal = q.Goal

	goalCoord := g.Coordinate(q.Goal)

	w.gScore[q.Start] = 0
	w.cameFrom[q.Start] = -1
	_ = w.open.Insert(q.Start, w.cfg.Heuristic(g.Coordinate(q.Start), goalCoord))

	for {
		current, _, ok := w.open.FindMin()
		if !ok {
			return Result{Found: false}, nil
		}
		if current == q.Goal {
			return Result{
				Path:  w.interpolate(q.Start, q.Goal),
				Cost:  w.gScore[q.Goal],
				Found: true,
			}, nil
		}
		w.open.DeleteMin()
		w.closed[current] = true

		fromDir := grid.NoDirection
		if pred := w.cameFrom[current]; pred >= 0 {
			fromDir = grid.DirectionOf(g.Coordinate(pred), g.Coordinate(current))
		}

		currentCoord := g.Coordinate(current)
		for _, dir := range permittedDirections(fromDir) {
			successor := w.jump(dir, current)
			if successor < 0 || w.closed[successor] {
				continue
			}

			successorCoord := g.Coordinate(successor)
			tentativeG := w.gScore[current] + w.cfg.PreciseDistance(currentCoord, successorCoord)

			if !w.open.Exists(successor) {
				w.cameFrom[successor] = current
				w.gScore[successor] = tentativeG
				priority := tentativeG + w.cfg.Heuristic(successorCoord, goalCoord)
				_ = w.open.Insert(successor, priority)
			} else if tentativeG < w.gScore[successor] {
				w.cameFrom[successor] = current
				w.gScore[successor] = tentativeG
				priority := tentativeG + w.cfg.Heuristic(successorCoord, goalCoord)
				_ = w.open.ChangePriority(successor, priority)
			}
		}
	}
}

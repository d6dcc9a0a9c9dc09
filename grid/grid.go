package grid

// Grid is an immutable W×H occupancy map. A cell is walkable when its
// entry is true. The zero-based linear index of (x, y) within a grid
// of width W is x + y*W; the inverse is (i % W, i / W).
//
// Grid and all of its methods are safe for concurrent use by multiple
// queries because nothing about a Grid is ever mutated after
// construction.
type Grid struct {
	width, height int
	cells         []bool
}

// New constructs a Grid directly from a packed row-major boolean
// slice. len(cells) must equal width*height; New panics otherwise,
// since a mismatched length is a programmer error, not a data error.
func New(width, height int, cells []bool) *Grid {
	if width <= 0 || height <= 0 {
		panic("grid: width and height must be positive")
	}
	if len(cells) != width*height {
		panic("grid: len(cells) must equal width*height")
	}
	cp := make([]bool, len(cells))
	copy(cp, cells)

	return &Grid{width: width, height: height, cells: cp}
}

// FromRows builds a Grid from a rectangular [][]bool, one row per y.
// Returns ErrEmptyGrid if rows has no rows or no columns, and
// ErrNonRectangular if row lengths differ.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]bool, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(cells[y*w:(y+1)*w], row)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// FromASCII builds a Grid from rows of text where walkable cells are
// '.' or 'G' and any other rune is blocked, matching the benchmark map
// convention spec.md §6 hands to map I/O collaborators: "it consumes
// ASCII grids where '.' and 'G' denote walkable cells and anything
// else denotes blocked." Reads every row and every rune of every row
// (the corrected behaviour per spec.md §9 — the original driver
// truncated the last row and column).
func FromASCII(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len([]rune(rows[0]))
	cells := make([]bool, w*h)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, ErrNonRectangular
		}
		for x, r := range runes {
			cells[y*w+x] = r == '.' || r == 'G'
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// Len returns width*height, the size of the linear index space.
func (g *Grid) Len() int { return g.width * g.height }

// Index converts (x, y) to its linear index, ignoring bounds. Callers
// must check InBounds first if c may be out of range.
func (g *Grid) Index(c Coord) int {
	return c.X + c.Y*g.width
}

// IndexByWidth converts (x, y) to a linear index for a grid of the
// given width, independent of any Grid value. Exposed as a
// convenience helper per spec.md §6's index_by_width.
func IndexByWidth(width, x, y int) int {
	return x + y*width
}

// Coordinate converts a linear index back to (x, y).
func (g *Grid) Coordinate(i int) Coord {
	return Coord{X: i % g.width, Y: i / g.width}
}

// CoordByWidth converts a linear index to (x, y) for a grid of the
// given width, independent of any Grid value. Exposed as a
// convenience helper per spec.md §6's coord_by_width.
func CoordByWidth(width, i int) (x, y int) {
	return i % width, i / width
}

// InBounds reports whether c lies within [0, Width) x [0, Height).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// InBoundsIndex reports whether i is a valid linear index into g.
func (g *Grid) InBoundsIndex(i int) bool {
	return i >= 0 && i < len(g.cells)
}

// Walkable reports whether c is in bounds and its cell is walkable.
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)]
}

// WalkableIndex reports whether linear index i is in range and its
// cell is walkable.
func (g *Grid) WalkableIndex(i int) bool {
	return i >= 0 && i < len(g.cells) && g.cells[i]
}

// Step returns the neighbour coordinate one tile from c in dir. The
// result may be out of bounds; callers must check Walkable/InBounds.
func Step(c Coord, dir Direction) Coord {
	d := deltas[Mod8(int(dir))]

	return Coord{X: c.X + d[0], Y: c.Y + d[1]}
}

// DirectionOf returns the direction of travel from 'from' to 'to',
// chosen by the signs of dx and dy alone, so it is exact for any two
// coordinates on one straight or diagonal ray (king-move neighbours,
// or consecutive jump points). Returns NoDirection if from == to.
func DirectionOf(from, to Coord) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 0 && dy == 0:
		return NoDirection
	case dx == 0 && dy < 0:
		return North
	case dx > 0 && dy < 0:
		return NorthEast
	case dx > 0 && dy == 0:
		return East
	case dx > 0 && dy > 0:
		return SouthEast
	case dx == 0 && dy > 0:
		return South
	case dx < 0 && dy > 0:
		return SouthWest
	case dx < 0 && dy == 0:
		return West
	default: // dx < 0 && dy < 0
		return NorthWest
	}
}

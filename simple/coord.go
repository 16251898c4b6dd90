package simple

import (
    "fmt"
)

// Coord is a milepost on the hex grid.  Rows are offset: odd rows are
// shifted half a hex right, so neighbor offsets depend on row parity.
type Coord struct {
    Row int
    Col int
}

func (c Coord) Key() string {
    return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

func (c Coord) String() string {
    return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Distance is the hex distance between two mileposts, used only as a
// heuristic (frontier ranking, starting hub selection).  It converts the
// offset coordinates to cube coordinates first.
func Distance(a, b Coord) int {
    ax, ay, az := cube(a)
    bx, by, bz := cube(b)
    return (abs(ax-bx) + abs(ay-by) + abs(az-bz)) / 2
}

func cube(c Coord) (int, int, int) {
    x := c.Col - (c.Row-(c.Row&1))/2
    z := c.Row
    y := -x - z
    return x, y, z
}

func abs(x int) int {
    if x < 0 {
        return -x
    }
    return x
}

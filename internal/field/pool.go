package field

import "sync"

// GridPool recycles equally shaped scratch grids to limit allocations in
// stepping loops.
type GridPool struct {
	pool       sync.Pool
	rows, cols int
}

func NewGridPool(rows, cols int) *GridPool {
	return &GridPool{
		rows: rows,
		cols: cols,
		pool: sync.Pool{
			New: func() interface{} {
				return NewGrid(rows, cols)
			},
		},
	}
}

func (p *GridPool) Get() *Grid {
	return p.pool.Get().(*Grid)
}

// Put returns a grid to the pool, zeroed. Grids of a different shape are
// dropped.
func (p *GridPool) Put(g *Grid) {
	if g == nil || g.rows != p.rows || g.cols != p.cols {
		return
	}
	g.Zero()
	p.pool.Put(g)
}

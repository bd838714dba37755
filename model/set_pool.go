package model

import "sync"

// SetToPool returns a scratch set to the pool for reuse
func SetToPool(set *CellSet, pool *SetPool) {
	if pool == nil {
		return
	}

	pool.Put(set)
}

// SetPool recycles the scratch sets a generation step allocates
type SetPool struct {
	pool sync.Pool
}

func NewSetPool() *SetPool {
	return &SetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &CellSet{m: make(map[Coord]struct{})}
			},
		},
	}
}

// Get retrieves an empty set from the pool
func (p *SetPool) Get() *CellSet {
	return p.pool.Get().(*CellSet)
}

// Put returns a set to the pool, clearing its state
func (p *SetPool) Put(s *CellSet) {
	// Clear the set before returning to pool
	s.Clear()
	p.pool.Put(s)
}

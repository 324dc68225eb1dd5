package model

import "sync"

// SetToPool returns a discarded generation to the pool for reuse
func SetToPool(set CoordSet, pool *SetPool) {
	if pool == nil || set == nil {
		return
	}

	pool.Put(set)
}

// SetPool recycles generation sets between steps
type SetPool struct {
	pool sync.Pool
}

func NewSetPool() *SetPool {
	return &SetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(CoordSet)
			},
		},
	}
}

// Get retrieves an empty set from the pool
func (p *SetPool) Get() CoordSet {
	return p.pool.Get().(CoordSet)
}

// Put returns a set to the pool, clearing its contents
func (p *SetPool) Put(set CoordSet) {
	set.Clear()
	p.pool.Put(set)
}

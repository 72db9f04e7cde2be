package model

import "sync"

// FramePool recycles snapshot worlds handed to renderers
type FramePool struct {
	pool sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &World{}
			},
		},
	}
}

// Get returns a world from the pool. The caller overwrites it with CopyTo.
// A nil pool allocates.
func (p *FramePool) Get() *World {
	if p == nil {
		return &World{}
	}
	return p.pool.Get().(*World)
}

// Put hands a snapshot back for reuse; nil pools and worlds are ignored
func (p *FramePool) Put(w *World) {
	if p == nil || w == nil {
		return
	}
	p.pool.Put(w)
}

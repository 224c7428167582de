package meshfx

import "sync"

// StreamPool manages reusable VertexStream buffers.
// A pooled stream behaves exactly like one from NewVertexStream; effects
// only need exclusive access to it for the duration of a call.
//
// Usage:
//
//	vs := meshfx.DefaultPool.Get()
//	defer meshfx.DefaultPool.Put(vs)
//	// populate vs, run effects, submit...
type StreamPool struct {
	pool sync.Pool
}

// NewStreamPool creates a new stream pool.
func NewStreamPool() *StreamPool {
	return &StreamPool{
		pool: sync.Pool{
			New: func() any {
				return NewVertexStream(64, 32)
			},
		},
	}
}

// Get retrieves a cleared stream from the pool.
func (p *StreamPool) Get() *VertexStream {
	vs := p.pool.Get().(*VertexStream)
	vs.Clear()
	return vs
}

// Put returns a stream to the pool for reuse.
func (p *StreamPool) Put(vs *VertexStream) {
	if vs == nil {
		return
	}
	p.pool.Put(vs)
}

// DefaultPool is a global stream pool for convenience.
var DefaultPool = NewStreamPool()

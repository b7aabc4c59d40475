package system

import (
	"sync"
)

// BufferPool reuses byte buffers keyed by length. Segmenting a batch of
// same-sized photos allocates the BGR copy, the mask and the label state
// once per size instead of once per image.
type BufferPool struct {
	pools map[int]*sync.Pool
	mu    sync.RWMutex
}

var globalPool = NewBufferPool()

// NewBufferPool creates an empty pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pools: make(map[int]*sync.Pool),
	}
}

// GetBuffer returns a zeroed buffer of length n from the shared pool.
func GetBuffer(n int) []uint8 {
	return globalPool.Get(n)
}

// PutBuffer hands a buffer back to the shared pool.
func PutBuffer(buf []uint8) {
	globalPool.Put(buf)
}

func (p *BufferPool) Get(n int) []uint8 {
	if n <= 0 {
		return nil
	}

	p.mu.RLock()
	pool, exists := p.pools[n]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		// Double check
		pool, exists = p.pools[n]
		if !exists {
			pool = &sync.Pool{
				New: func() interface{} {
					buf := make([]uint8, n)
					return &buf
				},
			}
			p.pools[n] = pool
		}
		p.mu.Unlock()
	}

	buf := *pool.Get().(*[]uint8)
	clear(buf)
	return buf
}

func (p *BufferPool) Put(buf []uint8) {
	if len(buf) == 0 {
		return
	}
	p.mu.RLock()
	pool, exists := p.pools[len(buf)]
	p.mu.RUnlock()

	if exists {
		pool.Put(&buf)
	}
}

package image

import "sync"

// Pool recycles scratch buffers that never escape a stage, such as the
// oversized tiling canvas or a resampled depth map.
//
// Buffers are grouped by dimensions and format. All methods are safe for
// concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a pool retaining at most maxPerBucket buffers per
// size/format. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of the given shape, reusing a pooled one when
// available. It returns nil for invalid dimensions or format.
func (p *Pool) Get(width, height int, format Format) *Buffer {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewBuffer(width, height, format)
	if err != nil {
		return nil
	}
	return buf
}

// Put clears buf and hands it back to the pool. The caller must not use buf
// afterwards. Nil buffers and buffers beyond the bucket limit are dropped.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	clear(buf.data)

	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

var defaultPool = NewPool(8)

// GetScratch retrieves a buffer from the package-level pool.
func GetScratch(width, height int, format Format) *Buffer {
	return defaultPool.Get(width, height, format)
}

// PutScratch returns a buffer to the package-level pool.
func PutScratch(buf *Buffer) {
	defaultPool.Put(buf)
}

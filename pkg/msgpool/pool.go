// Package msgpool provides the fixed-size message buffer pool that occupies
// an instance's memory region.
//
// The pool never allocates after Init: buffers are sub-slices of the region
// and the free list is a fixed array of indices.
package msgpool

import (
	"errors"
	"fmt"
)

const (
	// BufferSize is the size of one message buffer in bytes.
	BufferSize = 128

	// NumBuffers is the number of buffers carved from a region.
	NumBuffers = 44

	// RegionSize is the number of bytes a region must provide.
	RegionSize = NumBuffers * BufferSize
)

// Pool errors.
var (
	ErrNoBufs         = errors.New("message pool exhausted")
	ErrRegionTooSmall = errors.New("region too small")
	ErrForeignBuffer  = errors.New("buffer does not belong to pool")
	ErrDoubleFree     = errors.New("buffer already free")
)

// Pool hands out BufferSize-byte buffers from a caller-owned region.
// It is not safe for concurrent use.
type Pool struct {
	region []byte
	free   [NumBuffers]uint8
	inUse  [NumBuffers]bool
	nfree  int
}

// Init binds the pool to region and marks every buffer free.
// Any buffers handed out before are invalidated.
func (p *Pool) Init(region []byte) error {
	if len(region) < RegionSize {
		return fmt.Errorf("%w: have %d, need %d", ErrRegionTooSmall, len(region), RegionSize)
	}
	p.region = region[:RegionSize:RegionSize]
	for i := range p.free {
		// Hand out low indices first.
		p.free[i] = uint8(NumBuffers - 1 - i)
		p.inUse[i] = false
	}
	p.nfree = NumBuffers
	return nil
}

// Region returns the bound region, or nil before Init.
func (p *Pool) Region() []byte {
	return p.region
}

// Alloc returns a zeroed buffer of BufferSize bytes.
func (p *Pool) Alloc() ([]byte, error) {
	if p.nfree == 0 {
		return nil, ErrNoBufs
	}
	p.nfree--
	idx := int(p.free[p.nfree])
	p.inUse[idx] = true

	buf := p.buffer(idx)
	clear(buf)
	return buf, nil
}

// Free returns a buffer obtained from Alloc to the pool.
func (p *Pool) Free(buf []byte) error {
	idx, ok := p.indexOf(buf)
	if !ok {
		return ErrForeignBuffer
	}
	if !p.inUse[idx] {
		return ErrDoubleFree
	}
	p.inUse[idx] = false
	p.free[p.nfree] = uint8(idx)
	p.nfree++
	return nil
}

// FreeCount returns the number of buffers available.
func (p *Pool) FreeCount() int {
	return p.nfree
}

// Capacity returns the total number of buffers, or 0 before Init.
func (p *Pool) Capacity() int {
	if p.region == nil {
		return 0
	}
	return NumBuffers
}

func (p *Pool) buffer(idx int) []byte {
	off := idx * BufferSize
	return p.region[off : off+BufferSize : off+BufferSize]
}

func (p *Pool) indexOf(buf []byte) (int, bool) {
	if p.region == nil || cap(buf) != BufferSize {
		return 0, false
	}
	for i := 0; i < NumBuffers; i++ {
		if &p.region[i*BufferSize] == &buf[:1][0] {
			return i, true
		}
	}
	return 0, false
}

package pool

import (
	"io"
	"sync"
)

// Default and maximum retained sizes for the two buffer pools this
// package exposes. Node buffers back a single field's encode call inside
// the primitive array encoder; tree buffers back a record node's encode
// call as it assembles its children's output. The tree pool is sized an order of magnitude larger
// because it accumulates every descendant's bytes before Encode returns.
const (
	NodeBufferDefaultSize  = 1024 * 4        // 4KiB
	NodeBufferMaxThreshold = 1024 * 64       // 64KiB
	TreeBufferDefaultSize  = 1024 * 64       // 64KiB
	TreeBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// GrowthPolicy computes how many additional bytes a ByteBuffer should
// allocate when it must grow beyond its current capacity to hold
// requiredBytes more data.
type GrowthPolicy func(curCap, requiredBytes int) int

// ExactGrowth grows a buffer by exactly the bytes requested, no more.
//
// A node buffer is obtained, filled once by a single field's encoder,
// and returned; it does not see a run of incremental appends that a
// geometric policy would be amortizing against, so over-allocating here
// only inflates the pool's steady-state memory footprint for no benefit.
func ExactGrowth(_ int, requiredBytes int) int {
	return requiredBytes
}

// GeometricGrowth grows a buffer by the larger of 25% of its current
// capacity or the requested amount.
//
// A tree buffer is written to repeatedly as Encode descends into a
// schema tree's record/tuple/array children, so each reallocation should
// buy headroom for the appends still to come rather than sizing exactly
// to the bytes currently in hand.
func GeometricGrowth(curCap, requiredBytes int) int {
	growBy := curCap / 4
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	return growBy
}

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte

	growBy GrowthPolicy
}

// NewByteBuffer creates a new ByteBuffer with the specified default size,
// growing by GeometricGrowth once its capacity is exhausted.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return NewByteBufferWithPolicy(defaultSize, GeometricGrowth)
}

// NewByteBufferWithPolicy creates a new ByteBuffer with the specified
// default size and growth policy.
func NewByteBufferWithPolicy(defaultSize int, policy GrowthPolicy) *ByteBuffer {
	return &ByteBuffer{
		B:      make([]byte, 0, defaultSize),
		growBy: policy,
	}
}

// Bytes() returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend extends the buffer by n bytes if there is sufficient capacity.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing it if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes
// without reallocating. If the buffer has sufficient capacity, Grow does
// nothing. The amount allocated beyond requiredBytes is decided by the
// buffer's GrowthPolicy (ExactGrowth for node buffers, GeometricGrowth
// for tree buffers, by default GeometricGrowth for a bare NewByteBuffer).
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	policy := bb.growBy
	if policy == nil {
		policy = GeometricGrowth
	}
	growBy := policy(cap(bb.B), requiredBytes)

	// Allocate new buffer with increased capacity
	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool whose buffers default to
// defaultSize and grow under policy.
func NewByteBufferPool(defaultSize, maxThreshold int, policy GrowthPolicy) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBufferWithPolicy(defaultSize, policy)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	// nodeDefaultPool backs single-field encode calls; ExactGrowth avoids
	// over-allocating for buffers that are filled once and returned.
	nodeDefaultPool = NewByteBufferPool(NodeBufferDefaultSize, NodeBufferMaxThreshold, ExactGrowth)
	// treeDefaultPool backs whole-schema-tree encode calls; GeometricGrowth
	// amortizes reallocation cost across the many appends a record/tuple/
	// array node's children make before Encode returns.
	treeDefaultPool = NewByteBufferPool(TreeBufferDefaultSize, TreeBufferMaxThreshold, GeometricGrowth)
)

// GetNodeBuffer retrieves a ByteBuffer from the default per-node pool.
//
// Used by primitive encoders for a single field's encode call.
func GetNodeBuffer() *ByteBuffer {
	return nodeDefaultPool.Get()
}

// PutNodeBuffer returns a ByteBuffer to the default per-node pool.
func PutNodeBuffer(bb *ByteBuffer) {
	nodeDefaultPool.Put(bb)
}

// GetTreeBuffer retrieves a ByteBuffer from the default whole-tree pool.
//
// Used by record nodes assembling their children's encoded output.
func GetTreeBuffer() *ByteBuffer {
	return treeDefaultPool.Get()
}

// PutTreeBuffer returns a ByteBuffer to the default whole-tree pool.
func PutTreeBuffer(bb *ByteBuffer) {
	treeDefaultPool.Put(bb)
}

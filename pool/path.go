// Package pool provides sync.Pool wrappers for reducing GC pressure.
package pool

import (
	"strconv"
	"sync"
)

// PathBuilder builds element paths such as "Coverage.payor[0].reference".
// It keeps a stack of marks so a traversal can push a segment on entry and
// restore the previous path on exit without reallocating.
type PathBuilder struct {
	buf   []byte
	marks []int
}

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{
			buf:   make([]byte, 0, 256),
			marks: make([]int, 0, 16),
		}
	},
}

// AcquirePathBuilder gets a PathBuilder from the pool.
// Call Release() when done to return it to the pool.
func AcquirePathBuilder() *PathBuilder {
	pb := pathBuilderPool.Get().(*PathBuilder)
	pb.Reset()
	return pb
}

// Release returns the PathBuilder to the pool.
func (b *PathBuilder) Release() {
	if b == nil {
		return
	}
	// Don't return oversized buffers to the pool
	if cap(b.buf) <= 4096 && cap(b.marks) <= 256 {
		pathBuilderPool.Put(b)
	}
}

// Reset clears the buffer and the mark stack without deallocating.
func (b *PathBuilder) Reset() {
	b.buf = b.buf[:0]
	b.marks = b.marks[:0]
}

// Len returns the current length of the path.
func (b *PathBuilder) Len() int {
	return len(b.buf)
}

// Depth returns the number of pushed segments.
func (b *PathBuilder) Depth() int {
	return len(b.marks)
}

// AppendWithDot appends a segment with a leading dot if buffer is not empty.
func (b *PathBuilder) AppendWithDot(part string) {
	if len(b.buf) > 0 {
		b.buf = append(b.buf, '.')
	}
	b.buf = append(b.buf, part...)
}

// AppendIndex appends an array index in brackets [n].
func (b *PathBuilder) AppendIndex(index int) {
	b.buf = append(b.buf, '[')
	b.buf = strconv.AppendInt(b.buf, int64(index), 10)
	b.buf = append(b.buf, ']')
}

// Push records the current length and appends name, followed by [index]
// when index is not negative.
func (b *PathBuilder) Push(name string, index int) {
	b.marks = append(b.marks, len(b.buf))
	b.AppendWithDot(name)
	if index >= 0 {
		b.AppendIndex(index)
	}
}

// Pop restores the path to what it was before the matching Push.
// Pop on an empty stack is a no-op.
func (b *PathBuilder) Pop() {
	if len(b.marks) == 0 {
		return
	}
	last := len(b.marks) - 1
	b.Truncate(b.marks[last])
	b.marks = b.marks[:last]
}

// Truncate shortens the path to n bytes. Values outside [0, Len()] are ignored.
func (b *PathBuilder) Truncate(n int) {
	if n < 0 || n > len(b.buf) {
		return
	}
	b.buf = b.buf[:n]
}

// String returns the built path as a string.
func (b *PathBuilder) String() string {
	return string(b.buf)
}

// JoinPath joins path segments with dots.
func JoinPath(segments ...string) string {
	switch len(segments) {
	case 0:
		return ""
	case 1:
		return segments[0]
	}

	pb := AcquirePathBuilder()
	defer pb.Release()
	for _, s := range segments {
		pb.AppendWithDot(s)
	}
	return pb.String()
}

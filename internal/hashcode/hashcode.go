// Package hashcode computes the structural hash of model values.
package hashcode

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Hashable is implemented by every model element.
type Hashable interface {
	Hash() uint64
}

// Hasher accumulates field values into an xxhash digest. Each value is
// prefixed with its length or a presence byte so adjacent fields cannot
// collide by shifting bytes between them.
type Hasher struct {
	d   *xxhash.Digest
	buf [9]byte
}

// New starts a hash seeded with the type name.
func New(typeName string) *Hasher {
	h := &Hasher{d: xxhash.New()}
	h.String(typeName)
	return h
}

// String adds a string value.
func (h *Hasher) String(s string) {
	h.Uint64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

// Bytes adds a byte slice.
func (h *Hasher) Bytes(b []byte) {
	h.Uint64(uint64(len(b)))
	_, _ = h.d.Write(b)
}

// Uint64 adds a fixed-width integer.
func (h *Hasher) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:8], v)
	_, _ = h.d.Write(h.buf[:8])
}

// Int64 adds a signed integer.
func (h *Hasher) Int64(v int64) {
	h.Uint64(uint64(v))
}

// Float64 adds a float by its bit pattern.
func (h *Hasher) Float64(v float64) {
	h.Uint64(math.Float64bits(v))
}

// Bool adds a boolean.
func (h *Hasher) Bool(v bool) {
	h.buf[8] = 0
	if v {
		h.buf[8] = 1
	}
	_, _ = h.d.Write(h.buf[8:9])
}

// Sum64 returns the hash of everything added so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// Field adds an optional element. Absent elements contribute a marker so
// that {a, nil} and {nil, a} hash differently.
func Field[T interface {
	comparable
	Hashable
}](h *Hasher, v T) {
	var zero T
	if v == zero {
		h.Bool(false)
		return
	}
	h.Bool(true)
	h.Uint64(v.Hash())
}

// List adds a sequence of elements in order.
func List[T Hashable](h *Hasher, items []T) {
	h.Uint64(uint64(len(items)))
	for _, item := range items {
		h.Uint64(item.Hash())
	}
}

// Strings adds a sequence of raw strings.
func Strings(h *Hasher, items []string) {
	h.Uint64(uint64(len(items)))
	for _, s := range items {
		h.String(s)
	}
}

// Cell memoises a hash value. The zero value is ready to use. Concurrent
// first calls may each compute the value; they all store the same result.
type Cell struct {
	value atomic.Uint64
	set   atomic.Bool
}

// Get returns the cached value, computing it with fn on first use.
func (c *Cell) Get(fn func() uint64) uint64 {
	if c.set.Load() {
		return c.value.Load()
	}
	v := fn()
	c.value.Store(v)
	c.set.Store(true)
	return v
}

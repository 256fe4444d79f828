// Package pool provides reusable scratch slices for per-call numeric work
// buffers, keeping repeated analysis runs from re-allocating the same
// observation-length temporaries.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly the requested length
// from the pool, allocating a fresh one when the pooled slice is too small.
// The returned elements are zeroed.
//
// The caller must invoke the release function (typically with defer) once the
// slice is no longer referenced; the slice must not escape past that point.
//
// Example:
//
//	fitted, release := pool.GetFloat64Slice(n)
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		for i := range slice {
			slice[i] = 0
		}
		*ptr = slice
	}

	return slice, func() { float64SlicePool.Put(ptr) }
}

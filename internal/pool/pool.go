// Package pool provides bucketed sync.Pool instances for reducing allocations
// in hot paths. Buffers are organized by size class to minimize waste; the
// classes cover this library's working set, from a packed pixel row up to a
// full 4K RGBA frame.
package pool

import "sync"

// Size classes for bucketed pools.
const (
	Size4K   = 4096     // one packed row of 1024-wide content
	Size16K  = 16384    // one packed row of 4K-wide content
	Size64K  = 65536    // 128x128 packed frame
	Size256K = 262144   // 256x256 packed frame
	Size1M   = 1048576  // 512x512 packed frame
	Size4M   = 4194304  // ~1080p packed frame
	Size16M  = 16777216 // 4K packed frame
)

// bucketIndex returns the pool index for a given size.
func bucketIndex(size int) int {
	switch {
	case size <= Size4K:
		return 0
	case size <= Size16K:
		return 1
	case size <= Size64K:
		return 2
	case size <= Size256K:
		return 3
	case size <= Size1M:
		return 4
	case size <= Size4M:
		return 5
	default:
		return 6
	}
}

var sizes = [7]int{Size4K, Size16K, Size64K, Size256K, Size1M, Size4M, Size16M}

var pools [7]sync.Pool

func init() {
	for i := range pools {
		sz := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b
			},
		}
	}
}

// Get returns a byte slice of at least the requested size from the pool.
// The returned slice has length == size and may have a larger capacity.
// The caller must call Put when done.
func Get(size int) []byte {
	idx := bucketIndex(size)
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, size)
		*bp = b
		return b
	}
	return b[:size]
}

// Put returns a byte slice to the pool. The slice must have been obtained
// from Get. Slices smaller than Size4K are not pooled.
func Put(b []byte) {
	c := cap(b)
	if c < Size4K {
		return
	}
	idx := bucketIndex(c)
	b = b[:c]
	pools[idx].Put(&b)
}

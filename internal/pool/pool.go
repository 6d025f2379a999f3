// Package pool provides a bucketed sync.Pool of byte slices for the
// scratch buffers the auto-selector allocates once per candidate
// parameter tuple (spec §4.6, §5: "the auto-selector MAY allocate a
// scratch buffer of size equal to the input; this buffer is owned by
// the call and freed on return").
package pool

import "sync"

// Size classes for bucketed pools. Texture block streams are usually a
// few KB to a few MB (one mip level of one DXT/BCn texture); the ladder
// is sized for that range rather than WebP's pixel-buffer working set.
const (
	Size4K   = 4096
	Size64K  = 65536
	Size1M   = 1048576
	Size16M  = 16777216
)

var sizes = [4]int{Size4K, Size64K, Size1M, Size16M}

var pools [4]sync.Pool

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

func bucketIndex(size int) int {
	switch {
	case size <= Size4K:
		return 0
	case size <= Size64K:
		return 1
	case size <= Size1M:
		return 2
	default:
		return 3
	}
}

// Get returns a byte slice of exactly the requested length, reusing a
// pooled buffer when one of adequate capacity is available.
func Get(size int) []byte {
	if size > Size16M {
		return make([]byte, size)
	}
	idx := bucketIndex(size)
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, sizes[idx])
		*bp = b
	}
	return b[:size]
}

// Put returns a byte slice obtained from Get back to the pool. Slices
// smaller than the smallest bucket, or larger than the largest, are
// dropped rather than pooled.
func Put(b []byte) {
	c := cap(b)
	if c < Size4K || c > Size16M {
		return
	}
	idx := bucketIndex(c)
	pools[idx].Put(&b)
}

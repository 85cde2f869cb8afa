package lexorank

import (
	"github.com/calebcase/lexorank/integer"
)

// Bucket is one of three cyclic partitions of rank space. Rotating a dense
// bucket's items into the next bucket with freshly spaced ranks is how
// callers rebalance without disturbing item order.
type Bucket struct {
	ord   int
	value integer.Int
}

// Buckets
var (
	Bucket0 = Bucket{0, integer.FromInt64(0, System)}
	Bucket1 = Bucket{1, integer.FromInt64(1, System)}
	Bucket2 = Bucket{2, integer.FromInt64(2, System)}

	buckets = []Bucket{Bucket0, Bucket1, Bucket2}
)

// BucketFromString returns the bucket with the given tag.
func BucketFromString(s string) (b Bucket, err error) {
	defer Error.WrapP(&err)

	for _, b := range buckets {
		if b.String() == s {
			return b, nil
		}
	}

	return Bucket{}, Error.New("unknown bucket: %q", s)
}

// String returns the bucket's single digit tag.
func (b Bucket) String() string {
	return b.value.Format()
}

// Next returns the cyclic successor: Bucket2.Next() is Bucket0.
func (b Bucket) Next() Bucket {
	return buckets[(b.ord+1)%len(buckets)]
}

// Prev returns the cyclic predecessor: Bucket0.Prev() is Bucket2.
func (b Bucket) Prev() Bucket {
	return buckets[(b.ord+len(buckets)-1)%len(buckets)]
}

// Equal returns true if both values name the same bucket.
func (b Bucket) Equal(o Bucket) bool {
	return b.ord == o.ord
}

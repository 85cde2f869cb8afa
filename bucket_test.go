package lexorank_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/lexorank"
)

func TestBuckets(t *testing.T) {
	type TC struct {
		name   string
		bucket lexorank.Bucket
		tag    string
		next   string
		prev   string
	}

	tcs := []TC{
		{
			name:   "bucket 0",
			bucket: lexorank.Bucket0,
			tag:    "0",
			next:   "1",
			prev:   "2",
		},
		{
			name:   "bucket 1",
			bucket: lexorank.Bucket1,
			tag:    "1",
			next:   "2",
			prev:   "0",
		},
		{
			name:   "bucket 2",
			bucket: lexorank.Bucket2,
			tag:    "2",
			next:   "0",
			prev:   "1",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.tag, tc.bucket.String())
			require.Equal(t, tc.next, tc.bucket.Next().String())
			require.Equal(t, tc.prev, tc.bucket.Prev().String())

			b, err := lexorank.BucketFromString(tc.tag)
			require.NoError(t, err)
			require.True(t, b.Equal(tc.bucket))
		})
	}
}

func TestBucketCycle(t *testing.T) {
	b := lexorank.Bucket0

	require.True(t, b.Next().Next().Next().Equal(b))
	require.True(t, b.Prev().Prev().Prev().Equal(b))
	require.False(t, b.Next().Equal(b))
}

func TestBucketFromStringInvalid(t *testing.T) {
	for _, tag := range []string{"3", "z", "", "01"} {
		_, err := lexorank.BucketFromString(tag)
		require.Error(t, err, tag)
		require.True(t, lexorank.Error.Has(err), tag)
	}
}

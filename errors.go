package lexorank

import "github.com/zeebo/errs"

// Error classes. Callers discriminate with Class.Has.
var (
	Error = errs.Class("lexorank")

	// ErrCrossBucket marks an attempt to rank between buckets.
	ErrCrossBucket = errs.Class("cross bucket")

	// ErrEqualRanks marks a degenerate interval: no value exists strictly
	// between two equal bounds.
	ErrEqualRanks = errs.Class("equal ranks")

	// ErrOutOfRange marks a request for a rank before the global minimum
	// or after the global maximum.
	ErrOutOfRange = errs.Class("out of range")

	// ErrSystemMismatch marks a decimal built under a numeral system other
	// than the rank system.
	ErrSystemMismatch = errs.Class("system mismatch")
)

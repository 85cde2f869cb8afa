// Package lexorank generates sortable, string-valued ranks for ordered
// collections. Inserting, moving, or appending an item only ever computes a
// new rank for that item; no other rank is rewritten.
//
// A rank is a bucket tag plus an exact fixed point decimal in base 36,
// serialized as:
//
//	<bucket> "|" <integer, at least 6 digits, zero padded> ":" <fraction, trailing zeros stripped>
//
// The minimum rank is "0|000000:", the maximum "0|zzzzzz:", and the global
// middle "0|hzzzzz:". Ordinal string comparison of canonical forms matches
// numeric comparison, so ranks can be stored and sorted as plain strings.
//
// Between returns the shortest decimal strictly between two ranks, which is
// what keeps rank strings from growing with every insertion. GenNext and
// GenPrev step outward from an existing rank, and the three cyclic buckets
// support an external rebalancing policy: when a bucket grows dense, its
// items move to the next bucket with freshly spaced ranks.
//
// All types are immutable values; every operation is a pure function and
// safe for concurrent use without locking.
package lexorank

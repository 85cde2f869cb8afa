// Package numeral provides the digit systems used to encode ranks.
//
// A System maps digit values to characters and back, and designates the
// characters used for signs and the radix point. Systems are immutable and
// safe for concurrent use.
package numeral

import (
	"github.com/zeebo/errs"
)

var Error = errs.Class("numeral")

// System is a positional numeral system.
//
// ToDigit and ToChar are mutual inverses on [0, Base). ToDigit fails on any
// character outside the system's alphabet.
type System interface {
	Name() string
	Base() int
	ToDigit(c byte) (d int, err error)
	ToChar(d int) (c byte, err error)
	Positive() byte
	Negative() byte
	RadixPoint() byte
}

type system struct {
	name     string
	digits   string
	lookup   [256]int16
	positive byte
	negative byte
	point    byte
}

// New returns a system over the given digit alphabet. The alphabet is ordered
// least to greatest and must not contain duplicates or any of the designated
// sign and radix point characters.
func New(name, digits string, positive, negative, point byte) (s System, err error) {
	defer Error.WrapP(&err)

	if len(digits) < 2 {
		return nil, Error.New("alphabet too small: %q", digits)
	}

	ns := &system{
		name:     name,
		digits:   digits,
		positive: positive,
		negative: negative,
		point:    point,
	}

	for i := range ns.lookup {
		ns.lookup[i] = -1
	}

	for i := 0; i < len(digits); i++ {
		c := digits[i]

		if ns.lookup[c] >= 0 {
			return nil, Error.New("duplicate digit: %q", c)
		}
		if c == positive || c == negative || c == point {
			return nil, Error.New("digit collides with a designated character: %q", c)
		}

		ns.lookup[c] = int16(i)
	}

	return ns, nil
}

func mustNew(name, digits string, positive, negative, point byte) System {
	s, err := New(name, digits, positive, negative, point)
	if err != nil {
		panic(err)
	}

	return s
}

// Shipped Systems
var (
	Base10 = mustNew("base10", "0123456789", '+', '-', '.')
	Base36 = mustNew("base36", "0123456789abcdefghijklmnopqrstuvwxyz", '+', '-', ':')
)

func (s *system) Name() string {
	return s.name
}

func (s *system) Base() int {
	return len(s.digits)
}

func (s *system) ToDigit(c byte) (d int, err error) {
	v := s.lookup[c]
	if v < 0 {
		return 0, Error.New("not a %s digit: %q", s.name, c)
	}

	return int(v), nil
}

func (s *system) ToChar(d int) (c byte, err error) {
	if d < 0 || d >= len(s.digits) {
		return 0, Error.New("digit out of range for %s: %d", s.name, d)
	}

	return s.digits[d], nil
}

func (s *system) Positive() byte {
	return s.positive
}

func (s *system) Negative() byte {
	return s.negative
}

func (s *system) RadixPoint() byte {
	return s.point
}

// Same returns true if both systems encode the same digits the same way.
func Same(a, b System) bool {
	return a.Name() == b.Name() && a.Base() == b.Base()
}

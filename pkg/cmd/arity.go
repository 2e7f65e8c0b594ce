package cmd

import (
	"errors"
	"fmt"
)

// ErrArity is returned by Arity.Check when the argument count is wrong.
var ErrArity = errors.New("wrong number of arguments")

// Arity describes how many arguments a command accepts. The zero value
// accepts anything.
type Arity struct {
	Min  int
	Max  int // -1 means unbounded
	rest bool
	set  bool
}

// Exact accepts exactly n arguments.
func Exact(n int) Arity { return Arity{Min: n, Max: n, set: true} }

// Range accepts between min and max arguments inclusive.
func Range(min, max int) Arity { return Arity{Min: min, Max: max, set: true} }

// Rest hands the remainder of the line to the command as one string.
func Rest() Arity { return Arity{Min: 0, Max: -1, rest: true, set: true} }

// IsRest reports whether the command consumes the rest of the line.
func (a Arity) IsRest() bool { return a.rest }

// Check validates the number of arguments.
func (a Arity) Check(args []string) error {
	if !a.set || a.rest {
		return nil
	}
	n := len(args)
	if n < a.Min || (a.Max >= 0 && n > a.Max) {
		if a.Min == a.Max {
			return fmt.Errorf("%w: want %d, got %d", ErrArity, a.Min, n)
		}
		return fmt.Errorf("%w: want %d..%d, got %d", ErrArity, a.Min, a.Max, n)
	}
	return nil
}

// ArityOf returns the declared arity of c, looking through wrappers.
func ArityOf(c Command) Arity {
	if a, ok := Root(c).(ArityChecker); ok {
		return a.Arity()
	}
	return Arity{}
}

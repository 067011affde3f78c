package sequence

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects the rule that relates consecutive terms.
type Kind int

const (
	// Arithmetic sequences add a common difference to each term.
	Arithmetic Kind = iota
	// Geometric sequences multiply each term by a common ratio.
	Geometric
)

// rule carries the step semantics of a Kind.
type rule interface {
	term(first, step float64, i int) float64
	sum(first, step, last float64, n int) float64
}

type arithmeticRule struct{}

func (arithmeticRule) term(first, step float64, i int) float64 {
	return first + float64(i)*step
}

func (arithmeticRule) sum(first, _, last float64, n int) float64 {
	return float64(n) / 2 * (first + last)
}

type geometricRule struct{}

func (geometricRule) term(first, step float64, i int) float64 {
	return first * math.Pow(step, float64(i))
}

func (geometricRule) sum(first, step, _ float64, n int) float64 {
	if step == 1 {
		return first * float64(n)
	}
	return first * (math.Pow(step, float64(n)) - 1) / (step - 1)
}

var rules = map[Kind]rule{
	Arithmetic: arithmeticRule{},
	Geometric:  geometricRule{},
}

func (k Kind) rule() rule {
	r, ok := rules[k]
	if !ok {
		panic(fmt.Sprintf("sequence: invalid kind %d", int(k)))
	}
	return r
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := rules[k]
	return ok
}

// Term returns the zero-based i-th term of a sequence of this kind.
func (k Kind) Term(first, step float64, i int) float64 {
	return k.rule().term(first, step, i)
}

// Sum returns the closed-form sum of n terms, given the first and last generated term.
func (k Kind) Sum(first, step, last float64, n int) float64 {
	return k.rule().sum(first, step, last, n)
}

func (k Kind) String() string {
	switch k {
	case Arithmetic:
		return "arithmetic"
	case Geometric:
		return "geometric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Label is the heading used for the sequence in results.
func (k Kind) Label() string {
	switch k {
	case Arithmetic:
		return "Arithmetic Sequence"
	case Geometric:
		return "Geometric Sequence"
	default:
		return k.String()
	}
}

// StepName names the step parameter of this kind.
func (k Kind) StepName() string {
	if k == Geometric {
		return "Common Ratio"
	}
	return "Common Difference"
}

// StepSymbol is the conventional symbol of the step parameter (d or r).
func (k Kind) StepSymbol() string {
	if k == Geometric {
		return "r"
	}
	return "d"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind accepts a kind name, its short form or its label, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arithmetic", "arith", "a", "arithmetic sequence":
		return Arithmetic, nil
	case "geometric", "geo", "g", "geometric sequence":
		return Geometric, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Kinds lists every declared kind in display order.
func Kinds() []Kind {
	return []Kind{Arithmetic, Geometric}
}

package sequence

// MaxTerms bounds the number of terms a single request may generate.
const MaxTerms = 1000

// Request holds the parameters of a sequence.
// Step is the common difference for Arithmetic and the common ratio for Geometric.
type Request struct {
	Kind      Kind    `json:"kind" yaml:"kind"`
	FirstTerm float64 `json:"first_term" yaml:"first_term"`
	Step      float64 `json:"step" yaml:"step"`
	TermCount int     `json:"term_count" yaml:"term_count"`
}

// Arith builds an arithmetic request.
func Arith(first, difference float64, n int) Request {
	return Request{Kind: Arithmetic, FirstTerm: first, Step: difference, TermCount: n}
}

// Geom builds a geometric request.
func Geom(first, ratio float64, n int) Request {
	return Request{Kind: Geometric, FirstTerm: first, Step: ratio, TermCount: n}
}

// Validate checks the request in the order the form reports problems:
// term count bounds first, then the geometric ratio.
func (r Request) Validate() error {
	if !r.Kind.Valid() {
		return newValidationError("kind", r.Kind, "", ErrUnknownKind)
	}
	if r.TermCount <= 0 {
		return newValidationError("term_count", r.TermCount, MsgTermCountNotPositive, ErrTermCountNotPositive)
	}
	if r.TermCount > MaxTerms {
		return newValidationError("term_count", r.TermCount, MsgTermCountTooLarge, ErrTermCountTooLarge)
	}
	if r.Kind == Geometric && r.Step == 0 {
		return newValidationError("step", r.Step, MsgZeroRatio, ErrZeroRatio)
	}
	return nil
}

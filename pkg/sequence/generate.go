package sequence

// Sequence is the ordered list of terms derived from a Request.
// Terms[0] is always Request.FirstTerm.
type Sequence struct {
	Request Request
	Terms   []float64
}

// Generate validates req and expands it into exactly req.TermCount terms.
func Generate(req Request) (Sequence, error) {
	if err := req.Validate(); err != nil {
		return Sequence{}, err
	}

	terms := make([]float64, req.TermCount)
	for i := range terms {
		terms[i] = req.Kind.Term(req.FirstTerm, req.Step, i)
	}
	return Sequence{Request: req, Terms: terms}, nil
}

// Len returns the number of terms.
func (s Sequence) Len() int {
	return len(s.Terms)
}

// First returns the first term.
func (s Sequence) First() float64 {
	return s.Terms[0]
}

// Last returns the final generated term.
func (s Sequence) Last() float64 {
	return s.Terms[len(s.Terms)-1]
}

// Sum returns the closed-form sum for the sequence kind.
// Arithmetic uses n/2 × (first + last); geometric uses first × (r^n − 1)/(r − 1),
// or first × n when r is 1.
func (s Sequence) Sum() float64 {
	req := s.Request
	return req.Kind.Sum(req.FirstTerm, req.Step, s.Last(), len(s.Terms))
}

package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/sequencer/pkg/sequence"
)

// StepCount is how many leading terms Steps explains.
const StepCount = 3

// Bundle is the rendered form of one sequence.
type Bundle struct {
	TermsText   string `json:"terms_text" yaml:"terms_text"`
	FormulaText string `json:"formula" yaml:"formula"`
}

// NewBundle renders the term list and the formula of seq.
func NewBundle(seq sequence.Sequence) Bundle {
	return Bundle{
		TermsText:   Terms(seq.Terms),
		FormulaText: Formula(seq.Request),
	}
}

// Terms joins every term with ", ".
func Terms(terms []float64) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = Number(t)
	}
	return strings.Join(parts, ", ")
}

// Formula returns the general term a_n of the requested sequence.
func Formula(req sequence.Request) string {
	first := Number(req.FirstTerm)
	step := req.Step

	if req.Kind == sequence.Geometric {
		if step == 1 {
			return "a_n = " + first
		}
		return fmt.Sprintf("a_n = %s × %s^(n-1)", first, Number(step))
	}

	switch {
	case step > 0:
		return fmt.Sprintf("a_n = %s + %s(n-1)", first, Number(step))
	case step < 0:
		return fmt.Sprintf("a_n = %s - %s(n-1)", first, Number(math.Abs(step)))
	default:
		return fmt.Sprintf("a_n = %s + 0(n-1)", first)
	}
}

// Steps explains how each of the first StepCount terms is obtained.
func Steps(seq sequence.Sequence) []string {
	req := seq.Request
	n := min(StepCount, len(seq.Terms))
	first := Number(req.FirstTerm)
	step := Number(req.Step)

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			out = append(out, "a_1 = "+first)
			continue
		}
		term := Number(seq.Terms[i])
		if req.Kind == sequence.Geometric {
			out = append(out, fmt.Sprintf("a_%d = %s × %s^%d = %s", i+1, first, step, i, term))
		} else {
			out = append(out, fmt.Sprintf("a_%d = %s + %s × %d = %s", i+1, first, step, i, term))
		}
	}
	return out
}

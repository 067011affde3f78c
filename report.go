package sequencer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/aretw0/sequencer/pkg/format"
	"github.com/aretw0/sequencer/pkg/sequence"
)

// Number is a float64 that survives JSON encoding when it is not finite.
// Finite values encode as JSON numbers; ±Inf and NaN encode as strings.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(format.Number(f))
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("number: %w", err)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("number: %w", err)
	}
	*n = Number(f)
	return nil
}

// MarshalYAML implements yaml.Marshaler; YAML represents non-finite floats natively.
func (n Number) MarshalYAML() (any, error) {
	return float64(n), nil
}

// String renders the number like every other value in a report.
func (n Number) String() string {
	return format.Number(float64(n))
}

// Report is everything shown to a user for one calculation.
type Report struct {
	Kind      sequence.Kind `json:"kind" yaml:"kind"`
	KindLabel string        `json:"kind_label" yaml:"kind_label"`
	StepName  string        `json:"step_name" yaml:"step_name"`
	FirstTerm Number        `json:"first_term" yaml:"first_term"`
	Step      Number        `json:"step" yaml:"step"`
	TermCount int           `json:"term_count" yaml:"term_count"`
	Terms     []Number      `json:"terms" yaml:"terms"`
	TermsText string        `json:"terms_text" yaml:"terms_text"`
	Formula   string        `json:"formula" yaml:"formula"`
	LastTerm  Number        `json:"last_term" yaml:"last_term"`
	Sum       Number        `json:"sum" yaml:"sum"`
	SumText   string        `json:"sum_text" yaml:"sum_text"`
	Steps     []string      `json:"steps" yaml:"steps"`
}

// Request rebuilds the request that produced the report.
func (r *Report) Request() sequence.Request {
	return sequence.Request{
		Kind:      r.Kind,
		FirstTerm: float64(r.FirstTerm),
		Step:      float64(r.Step),
		TermCount: r.TermCount,
	}
}

// NewReport assembles a report from a generated sequence.
func NewReport(seq sequence.Sequence) *Report {
	req := seq.Request
	terms := make([]Number, len(seq.Terms))
	for i, t := range seq.Terms {
		terms[i] = Number(t)
	}
	sum := seq.Sum()
	bundle := format.NewBundle(seq)

	return &Report{
		Kind:      req.Kind,
		KindLabel: req.Kind.Label(),
		StepName:  req.Kind.StepName(),
		FirstTerm: Number(req.FirstTerm),
		Step:      Number(req.Step),
		TermCount: req.TermCount,
		Terms:     terms,
		TermsText: bundle.TermsText,
		Formula:   bundle.FormulaText,
		LastTerm:  Number(seq.Last()),
		Sum:       Number(sum),
		SumText:   format.Sum(sum),
		Steps:     format.Steps(seq),
	}
}

package sequencer

import (
	"fmt"

	"github.com/aretw0/sequencer/pkg/sequence"
)

// generate is swapped in tests to exercise recovery.
var generate = sequence.Generate

// CalculationError wraps an unexpected failure while generating or formatting.
type CalculationError struct {
	Cause any
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("An error occurred during calculation: %v", e.Cause)
}

// Unwrap exposes the cause when it is an error.
func (e *CalculationError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// Calculate generates the requested sequence and renders its report.
// Invalid requests return the *sequence.ValidationError unchanged; any other
// failure is reported as a *CalculationError and no partial report is returned.
func Calculate(req sequence.Request) (report *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = &CalculationError{Cause: r}
		}
	}()

	seq, err := generate(req)
	if err != nil {
		return nil, err
	}
	return NewReport(seq), nil
}

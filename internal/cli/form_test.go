package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/sequencer/internal/config"
	"github.com/aretw0/sequencer/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm(input string) (*Form, *bytes.Buffer) {
	var out bytes.Buffer
	return NewForm(strings.NewReader(input), &out, config.Default().Defaults), &out
}

func TestForm_AskDefaults(t *testing.T) {
	form, out := newTestForm("\n\n\n\n")

	req, err := form.Ask(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sequence.Arith(1, 1, 10), req)
	assert.Contains(t, out.String(), "Common Difference (d) [1]: ")
}

func TestForm_AskGeometricUsesRatioDefault(t *testing.T) {
	form, out := newTestForm("g\n3\n\n5\n")

	req, err := form.Ask(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sequence.Geom(3, 2, 5), req)
	assert.Contains(t, out.String(), "Common Ratio (r) [2]: ")
}

func TestForm_AskRetriesInvalidAnswers(t *testing.T) {
	form, out := newTestForm("harmonic\narithmetic\nabc\n10\n-3\n2.5\n5\n")

	req, err := form.Ask(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sequence.Arith(10, -3, 5), req)

	text := out.String()
	assert.Contains(t, text, `Error: unknown sequence kind: "harmonic". Please try again.`)
	assert.Contains(t, text, `Error: "abc" is not a valid number. Please try again.`)
	assert.Contains(t, text, "Error: Number of terms must be a positive integer. Please try again.")
}

func TestForm_AskQuit(t *testing.T) {
	form, _ := newTestForm("geometric\nq\n")
	_, err := form.Ask(context.Background())
	assert.ErrorIs(t, err, ErrQuit)
}

func TestForm_AskCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	form, _ := newTestForm("\n")
	_, err := form.Ask(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForm_RunShowsResults(t *testing.T) {
	var out bytes.Buffer
	form := NewForm(strings.NewReader("geometric\n2\n2\n5\nn\n"), &out, config.Default().Defaults)

	require.NoError(t, form.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "`a_n = 2 × 2^(n-1)`")
	assert.Contains(t, text, "2, 4, 8, 16, 32")
	assert.Contains(t, text, "**Sum of Sequence:** 62.00")
	assert.Contains(t, text, "**Term 3:** a_3 = 2 × 2^2 = 8")
}

func TestForm_RunReportsRejectionAndContinues(t *testing.T) {
	var out bytes.Buffer
	input := strings.Join([]string{
		"geometric", "5", "0", "10", // rejected: zero ratio
		"arithmetic", "1", "1", "1001", // rejected: too many terms
		"arithmetic", "1", "1", "0", // rejected: no terms
		"arithmetic", "1", "1", "3",
		"n",
	}, "\n") + "\n"
	form := NewForm(strings.NewReader(input), &out, config.Default().Defaults)

	require.NoError(t, form.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Error: Common ratio cannot be zero for geometric sequences.")
	assert.Contains(t, text, "Error: Number of terms cannot exceed 1000 for performance reasons.")
	assert.Contains(t, text, "Error: Number of terms must be a positive integer.")
	assert.Contains(t, text, "1, 2, 3")
}

func TestForm_RunEndsOnEOF(t *testing.T) {
	form, _ := newTestForm("arithmetic\n")

	done := make(chan error, 1)
	go func() { done <- form.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after input ended")
	}
}

func TestForm_RunUsesRenderer(t *testing.T) {
	var out bytes.Buffer
	form := NewForm(strings.NewReader("\n\n\n3\nn\n"), &out, config.Default().Defaults,
		WithRenderer(func(md string) (string, error) { return strings.ToUpper(md), nil }),
	)

	require.NoError(t, form.Run(context.Background()))
	assert.Contains(t, out.String(), "ARITHMETIC SEQUENCE")
}

func TestForm_RunHugeTermCountIsTooLarge(t *testing.T) {
	form, out := newTestForm("arithmetic\n1\n1\n1e10\nq\n")

	require.NoError(t, form.Run(context.Background()))
	assert.Contains(t, out.String(), "Error: Number of terms cannot exceed 1000 for performance reasons.")
}

func TestFinish(t *testing.T) {
	for _, err := range []error{nil, ErrQuit, io.EOF, context.Canceled} {
		assert.NoError(t, finish(err))
	}
	boom := errors.New("boom")
	assert.Equal(t, boom, finish(boom))
}

package format

import (
	"testing"

	"github.com/aretw0/sequencer/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormula(t *testing.T) {
	tests := []struct {
		name string
		req  sequence.Request
		want string
	}{
		{"Arithmetic Positive", sequence.Arith(1, 1, 10), "a_n = 1 + 1(n-1)"},
		{"Arithmetic Negative", sequence.Arith(10, -3, 5), "a_n = 10 - 3(n-1)"},
		{"Arithmetic Zero", sequence.Arith(4, 0, 5), "a_n = 4 + 0(n-1)"},
		{"Arithmetic Fractional", sequence.Arith(0.5, 0.25, 5), "a_n = 0.5 + 0.25(n-1)"},
		{"Geometric Unit Ratio", sequence.Geom(3, 1, 5), "a_n = 3"},
		{"Geometric", sequence.Geom(2, 2, 5), "a_n = 2 × 2^(n-1)"},
		{"Geometric Negative Ratio", sequence.Geom(1, -0.5, 5), "a_n = 1 × -0.5^(n-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Formula(tt.req))
		})
	}
}

func TestNewBundle(t *testing.T) {
	seq, err := sequence.Generate(sequence.Arith(10, -3, 5))
	require.NoError(t, err)

	b := NewBundle(seq)
	assert.Equal(t, "10, 7, 4, 1, -2", b.TermsText)
	assert.Equal(t, "a_n = 10 - 3(n-1)", b.FormulaText)
}

func TestSteps(t *testing.T) {
	arith, err := sequence.Generate(sequence.Arith(1, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a_1 = 1",
		"a_2 = 1 + 1 × 1 = 2",
		"a_3 = 1 + 1 × 2 = 3",
	}, Steps(arith))

	geom, err := sequence.Generate(sequence.Geom(2, 2, 5))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a_1 = 2",
		"a_2 = 2 × 2^1 = 4",
		"a_3 = 2 × 2^2 = 8",
	}, Steps(geom))

	short, err := sequence.Generate(sequence.Geom(5, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a_1 = 5", "a_2 = 5 × 3^1 = 15"}, Steps(short))
}

func TestSum(t *testing.T) {
	assert.Equal(t, "55.00", Sum(55))
	assert.Equal(t, "62.00", Sum(62))
	assert.Equal(t, "0.33", Sum(1.0/3))
	assert.Equal(t, "-12.50", Sum(-12.5))
}

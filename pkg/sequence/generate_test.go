package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		terms []float64
		sum   float64
	}{
		{"Arithmetic Counting", Arith(1, 1, 10), []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 55},
		{"Geometric Doubling", Geom(2, 2, 5), []float64{2, 4, 8, 16, 32}, 62},
		{"Geometric Constant", Geom(3, 1, 5), []float64{3, 3, 3, 3, 3}, 15},
		{"Arithmetic Descending", Arith(10, -3, 5), []float64{10, 7, 4, 1, -2}, 20},
		{"Geometric Halving", Geom(100, 0.5, 4), []float64{100, 50, 25, 12.5}, 187.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Generate(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.terms, seq.Terms)
			assert.InDelta(t, tt.sum, seq.Sum(), 1e-9)
		})
	}
}

func TestGenerate_TermIdentities(t *testing.T) {
	reqs := []Request{
		Arith(0.5, 0.25, 40),
		Arith(-7, 3.5, 100),
		Geom(1.5, 1.1, 50),
		Geom(-2, -0.75, 30),
	}
	for _, req := range reqs {
		seq, err := Generate(req)
		require.NoError(t, err)
		require.Len(t, seq.Terms, req.TermCount)
		for i, got := range seq.Terms {
			var want float64
			if req.Kind == Arithmetic {
				want = req.FirstTerm + float64(i)*req.Step
			} else {
				want = req.FirstTerm * math.Pow(req.Step, float64(i))
			}
			assert.InDelta(t, want, got, 1e-9, "kind=%s i=%d", req.Kind, i)
		}
	}
}

func TestSequence_SumIdentities(t *testing.T) {
	arith, err := Generate(Arith(3, 4, 25))
	require.NoError(t, err)
	assert.InDelta(t, 25.0/2*(3+arith.Terms[24]), arith.Sum(), 1e-9)

	geom, err := Generate(Geom(3, 1.5, 12))
	require.NoError(t, err)
	want := 3 * (math.Pow(1.5, 12) - 1) / (1.5 - 1)
	assert.InDelta(t, want, geom.Sum(), 1e-9)

	var total float64
	for _, v := range geom.Terms {
		total += v
	}
	assert.InDelta(t, total, geom.Sum(), 1e-6)
}

func TestGenerate_Idempotent(t *testing.T) {
	req := Geom(1.3, 0.7, 200)
	a, err := Generate(req)
	require.NoError(t, err)
	b, err := Generate(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Boundaries(t *testing.T) {
	single, err := Generate(Arith(42, 5, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, single.Terms)
	assert.Equal(t, 42.0, single.First())
	assert.Equal(t, 42.0, single.Last())

	full, err := Generate(Arith(0, 1, MaxTerms))
	require.NoError(t, err)
	assert.Equal(t, MaxTerms, full.Len())
	assert.Equal(t, 999.0, full.Last())
}

func TestGenerate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		sentinel error
		msg      string
	}{
		{"Zero Terms", Arith(1, 1, 0), ErrTermCountNotPositive, MsgTermCountNotPositive},
		{"Negative Terms", Geom(1, 2, -4), ErrTermCountNotPositive, MsgTermCountNotPositive},
		{"Too Many Terms", Arith(1, 1, MaxTerms+1), ErrTermCountTooLarge, MsgTermCountTooLarge},
		{"Zero Ratio", Geom(5, 0, 10), ErrZeroRatio, MsgZeroRatio},
		{"Zero Ratio Single Term", Geom(5, 0, 1), ErrZeroRatio, MsgZeroRatio},
		{"Count Checked Before Ratio", Geom(5, 0, 0), ErrTermCountNotPositive, MsgTermCountNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Generate(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tt.msg, err.Error())
			assert.Nil(t, seq.Terms)
		})
	}
}

func TestGenerate_ArithmeticZeroDifferenceAllowed(t *testing.T) {
	seq, err := Generate(Arith(7, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 7}, seq.Terms)
	assert.Equal(t, 21.0, seq.Sum())
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, err := Generate(Request{Kind: Kind(9), TermCount: 3})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

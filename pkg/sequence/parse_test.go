package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	v, err := ParseFloat("first_term", " -2.5 ")
	require.NoError(t, err)
	assert.Equal(t, -2.5, v)

	for _, bad := range []string{"", "abc", "NaN", "Inf", "-inf", "1,5", "1e400"} {
		_, err := ParseFloat("step", bad)
		assert.ErrorIs(t, err, ErrInvalidNumber, "input %q", bad)
	}
}

func TestCheckFinite(t *testing.T) {
	assert.NoError(t, CheckFinite("step", 2))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := CheckFinite("step", bad)
		require.ErrorIs(t, err, ErrInvalidNumber)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "step", ve.Field)
	}
	assert.Equal(t, `"+Inf" is not a valid number.`, CheckFinite("first_term", math.Inf(1)).Error())
}

func TestParseTermCount(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"10", 10, false},
		{" 1000 ", 1000, false},
		{"10.0", 10, false},
		{"-3", -3, false},
		{"1e3", 1000, false},
		{"2.5", 0, true},
		{"ten", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTermCount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, MsgTermCountNotPositive, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTermCount_HugeWholeNumbersAreTooLarge(t *testing.T) {
	for _, input := range []string{"3000000000", "1e10", "1e20", "99999999999999999999", "1e400"} {
		t.Run(input, func(t *testing.T) {
			n, err := ParseTermCount(input)
			require.NoError(t, err)

			err = Arith(1, 1, n).Validate()
			require.ErrorIs(t, err, ErrTermCountTooLarge)
			assert.Equal(t, MsgTermCountTooLarge, err.Error())
		})
	}

	for _, input := range []string{"-1e10", "-99999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			n, err := ParseTermCount(input)
			require.NoError(t, err)
			assert.ErrorIs(t, Arith(1, 1, n).Validate(), ErrTermCountNotPositive)
		})
	}
}

func TestTermCount(t *testing.T) {
	n, err := TermCount(5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = TermCount(1e300)
	require.NoError(t, err)
	assert.Equal(t, MaxTerms+1, n)

	_, err = TermCount(2.5)
	assert.ErrorIs(t, err, ErrTermCountNotPositive)
}

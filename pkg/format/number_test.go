package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{-2, "-2"},
		{12.5, "12.5"},
		{0.1, "0.1"},
		{1000000, "1000000"},
		{math.Copysign(0, -1), "0"},
		{0.00001, "1e-05"},
		{1e21, "1e+21"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.in))
		})
	}
}

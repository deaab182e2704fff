package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.NaN(), "0"},
		{0.25, "0.25"},
		{0.999, "0.99"},
		{1, "1"},
		{42.78, "42.7"},
		{999.99, "999.9"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{999999, "1000.0K"},
		{2.5e6, "2.5M"},
		{3.2e9, "3.2B"},
		{7.1e12, "7.1T"},
		{2.384185791015625e23, "238418579101.6T"},
		{-1500, "-1.5K"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Amount(c.in), "Amount(%v)", c.in)
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, "150.0K/s", Rate(150000))
	assert.Equal(t, "0/s", Rate(0))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1,234,567", Count(1234567))
	assert.Equal(t, "0", Count(0))
}

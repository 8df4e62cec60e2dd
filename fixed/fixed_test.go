package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromIntRoundTrip(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(F(3*Scale), FromInt(3))
	assert.Equal(F(-3*Scale), FromInt(-3))
	assert.Equal(0.0, FromInt(0).ToFloat())
}

func TestFromFloatRoundTrip(t *testing.T) {
	assert := assert.New(t)
	v := FromFloat(1.5)
	assert.InDelta(1.5, v.ToFloat(), 1e-4)

	assert.Equal(Max, FromFloat(1e12))
	assert.Equal(Min, FromFloat(-1e12))
}

func TestMulExact(t *testing.T) {
	assert := assert.New(t)
	a := FromInt(3)
	b := FromInt(4)
	assert.Equal(FromInt(12), Mul(a, b))

	half := FromFloat(0.5)
	assert.InDelta(1.5, Mul(FromInt(3), half).ToFloat(), 1e-4)
}

func TestDivByZeroSaturates(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Max, Div(FromInt(5), 0))
	assert.Equal(Min, Div(FromInt(-5), 0))
	assert.Equal(Max, Div(0, 0))
}

func TestDivExact(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FromInt(3), Div(FromInt(12), FromInt(4)))
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FromInt(5), Abs(FromInt(-5)))
	assert.Equal(FromInt(5), Abs(FromInt(5)))
	assert.Equal(Max, Abs(Min))
}

func TestSaturateAndInRange(t *testing.T) {
	assert := assert.New(t)
	lo, hi := FromInt(-10), FromInt(10)
	assert.Equal(hi, Saturate(FromInt(20), lo, hi))
	assert.Equal(lo, Saturate(FromInt(-20), lo, hi))
	assert.Equal(FromInt(5), Saturate(FromInt(5), lo, hi))

	assert.True(InRange(FromInt(5), lo, hi))
	assert.False(InRange(FromInt(11), lo, hi))
}

func TestSingleOpErrorBound(t *testing.T) {
	// error of any single op should not exceed 1 LSB (~1.5e-5)
	const lsb = 1.0 / Scale
	for _, v := range []float64{0.1, 1.0 / 3.0, math.Pi, 12345.6789} {
		got := FromFloat(v).ToFloat()
		if math.Abs(got-v) > lsb+1e-9 {
			t.Fatalf("FromFloat(%v) round-trips to %v, error exceeds 1 LSB", v, got)
		}
	}
}

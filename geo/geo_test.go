package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xbfeng/tbspgo/fixed"
)

func deg(v float64) fixed.F { return fixed.FromFloat(v) }

func TestNormalizeLonRange(t *testing.T) {
	assert := assert.New(t)
	for _, v := range []float64{0, 179.9, -179.9, 180, -180, 270, -270, 540, -540, 1000} {
		n := NormalizeLon(deg(v)).ToFloat()
		assert.True(n >= -180.0001 && n < 180.0001, "normalize_lon(%v) = %v out of range", v, n)
	}
}

func TestNormalizeLonIdempotentAnd360Invariant(t *testing.T) {
	assert := assert.New(t)
	for _, v := range []float64{12.3, -45.6, 179.0, -179.0} {
		once := NormalizeLon(deg(v))
		twice := NormalizeLon(once)
		assert.InDelta(once.ToFloat(), twice.ToFloat(), 1e-3)

		shifted := NormalizeLon(deg(v + 360))
		assert.InDelta(once.ToFloat(), shifted.ToFloat(), 1e-3)
	}
}

func TestHeadingToAngleFrameCorrection(t *testing.T) {
	assert := assert.New(t)
	// heading 0 (true north) must map to the internal angle for 90 degrees
	// (math frame: east is 0, north is 90, counter-clockwise).
	north := HeadingToAngle(deg(0))
	assert.InDelta(90.0, float64(north)/float64(uint64(1)<<32)*360.0, 0.1)
}

func TestHeadingToAngle360Invariant(t *testing.T) {
	assert := assert.New(t)
	for _, h := range []float64{0, 45, 90, 180, 270, 359} {
		a1 := HeadingToAngle(deg(h))
		a2 := HeadingToAngle(deg(h + 360))
		assert.InDelta(float64(a1), float64(a2), 2)
	}
}

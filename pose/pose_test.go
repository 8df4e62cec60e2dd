package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/trig"
)

func deg(v float64) fixed.F { return fixed.FromFloat(v) }

func TestIdentityTrace(t *testing.T) {
	assert := assert.New(t)
	id := Identity()
	assert.InDelta(3.0, Trace(id).ToFloat(), 1e-3)
}

func TestRotationCompositionMatchesSumOfYaws(t *testing.T) {
	assert := assert.New(t)
	for _, pair := range [][2]float64{{10, 20}, {45, 45}, {90, 180}, {300, 150}} {
		alpha := angleFromDeg(pair[0])
		beta := angleFromDeg(pair[1])
		ra := FromYaw(alpha)
		rb := FromYaw(beta)
		composed := Mul(ra, rb)

		sum := angleFromDeg(pair[0] + pair[1])
		direct := FromYaw(sum)

		for i := 0; i < 9; i++ {
			assert.InDelta(direct[i].ToFloat(), composed[i].ToFloat(), 0.01)
		}
	}
}

func angleFromDeg(d float64) trig.Angle {
	units := int64(d / 360.0 * float64(uint64(1)<<32))
	return trig.Angle(uint32(units))
}

func TestPoseSerializeRoundTrip(t *testing.T) {
	assert := assert.New(t)
	p := FromGPS(deg(123.4), deg(-56.7), deg(8.0), deg(0), 1_700_000_000, 367123456)
	buf := make([]byte, Size)
	n := Serialize(p, buf)
	assert.Equal(Size, n)

	got := Deserialize(buf)
	assert.Equal(p.Timestamp, got.Timestamp)
	assert.Equal(p.MMSI, got.MMSI)
	for i := range p.R {
		assert.Equal(p.R[i], got.R[i])
	}
	for i := range p.T {
		assert.Equal(p.T[i], got.T[i])
	}
}

func TestVecSubAndMatVecMul(t *testing.T) {
	assert := assert.New(t)
	a := Vec3{deg(10), deg(20), deg(30)}
	b := Vec3{deg(1), deg(2), deg(3)}
	d := VecSub(a, b)
	assert.InDelta(9.0, d[0].ToFloat(), 1e-3)

	id := Identity()
	out := MatVecMul(id, a)
	for i := range a {
		assert.InDelta(a[i].ToFloat(), out[i].ToFloat(), 1e-3)
	}
}

func TestOrthonormalizeKeepsTraceInRangeAfterDrift(t *testing.T) {
	assert := assert.New(t)
	r := Identity()
	for i := 0; i < 50; i++ {
		r = Mul(r, FromYaw(angleFromDeg(7)))
	}
	Orthonormalize(&r)
	tr := Trace(r).ToFloat()
	assert.True(tr >= -1.01 && tr <= 3.01, "trace %v out of expected range after orthonormalize", tr)
}

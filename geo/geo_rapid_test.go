package geo

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/xbfeng/tbspgo/fixed"
)

// TestNormalizeLonAlwaysInRange checks normalize_lon's range and idempotence
// guarantees across a wide, randomly-generated span of raw longitudes,
// complementing the fixed-table cases in geo_test.go.
func TestNormalizeLonAlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-3600, 3600).Draw(t, "lon_deg")
		n := NormalizeLon(fixed.FromFloat(v))
		if n.ToFloat() < -180.0001 || n.ToFloat() >= 180.0001 {
			t.Fatalf("NormalizeLon(%v) = %v out of range", v, n.ToFloat())
		}
		twice := NormalizeLon(n)
		if twice != n {
			t.Fatalf("NormalizeLon not idempotent for %v: %v vs %v", v, n, twice)
		}
	})
}

// TestHeadingToAngleIsPeriodic checks heading_to_angle(h) == heading_to_angle(h+360)
// for arbitrary headings, not just the cardinal set geo_test.go checks.
func TestHeadingToAngleIsPeriodic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.Float64Range(-720, 720).Draw(t, "heading_deg")
		a1 := HeadingToAngle(fixed.FromFloat(h))
		a2 := HeadingToAngle(fixed.FromFloat(h + 360))
		delta := int64(a1) - int64(a2)
		if delta < 0 {
			delta = -delta
		}
		if delta > 2 {
			t.Fatalf("HeadingToAngle(%v)=%v, HeadingToAngle(%v+360)=%v differ by %v", h, a1, h, a2, delta)
		}
	})
}

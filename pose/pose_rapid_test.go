package pose

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/xbfeng/tbspgo/fixed"
)

// TestPoseSerializeRoundTripAnyValue extends TestPoseSerializeRoundTrip to
// arbitrary translations, timestamps and MMSIs.
func TestPoseSerializeRoundTripAnyValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		east := rapid.Float64Range(-1e6, 1e6).Draw(t, "east_m")
		north := rapid.Float64Range(-1e6, 1e6).Draw(t, "north_m")
		up := rapid.Float64Range(-1e4, 1e4).Draw(t, "up_m")
		heading := rapid.Float64Range(0, 359.99).Draw(t, "heading_deg")
		ts := rapid.Uint32().Draw(t, "timestamp")
		mmsi := rapid.Uint32Range(1, 999999999).Draw(t, "mmsi")

		p := FromGPS(fixed.FromFloat(east), fixed.FromFloat(north), fixed.FromFloat(up), fixed.FromFloat(heading), ts, mmsi)
		buf := make([]byte, Size)
		Serialize(p, buf)
		got := Deserialize(buf)

		if got.Timestamp != p.Timestamp || got.MMSI != p.MMSI {
			t.Fatalf("metadata mismatch after round trip: %+v vs %+v", p, got)
		}
		for i := range p.R {
			if got.R[i] != p.R[i] {
				t.Fatalf("rotation[%d] mismatch: %v vs %v", i, p.R[i], got.R[i])
			}
		}
		for i := range p.T {
			if got.T[i] != p.T[i] {
				t.Fatalf("translation[%d] mismatch: %v vs %v", i, p.T[i], got.T[i])
			}
		}
	})
}

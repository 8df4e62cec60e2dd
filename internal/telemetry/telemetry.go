// Package telemetry pushes unsigned, operational pose telemetry to
// InfluxDB for live dashboards using
// github.com/influxdata/influxdb-client-go/v2. This is deliberately not a
// distributed-log publisher for an external archival collaborator: that
// kind of component consumes signed handoff records for durable storage,
// while PoseWriter is a best-effort operational stream the edge node owns
// outright.
package telemetry

import (
	"context"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/pkg/errors"

	"github.com/xbfeng/tbspgo/pose"
)

// PoseWriter pushes each pose's ENU translation and timestamp as one
// InfluxDB point.
type PoseWriter struct {
	client influxdb2.Client
	org    string
	bucket string
}

// NewPoseWriter constructs a PoseWriter against the given InfluxDB server.
func NewPoseWriter(url, token, org, bucket string) *PoseWriter {
	return &PoseWriter{
		client: influxdb2.NewClient(url, token),
		org:    org,
		bucket: bucket,
	}
}

// WritePose pushes one pose's east/north/up metres and MMSI as a single
// point in the "vessel_pose" measurement.
func (w *PoseWriter) WritePose(ctx context.Context, p pose.Pose) error {
	writeAPI := w.client.WriteAPIBlocking(w.org, w.bucket)
	point := influxdb2.NewPoint(
		"vessel_pose",
		map[string]string{"mmsi": strconv.FormatUint(uint64(p.MMSI), 10)},
		map[string]interface{}{
			"east_m":  p.T[0].ToFloat(),
			"north_m": p.T[1].ToFloat(),
			"up_m":    p.T[2].ToFloat(),
		},
		time.Unix(int64(p.Timestamp), 0),
	)
	if err := writeAPI.WritePoint(ctx, point); err != nil {
		return errors.Wrap(err, "writing pose point")
	}
	return nil
}

// Close releases the underlying InfluxDB client.
func (w *PoseWriter) Close() {
	w.client.Close()
}

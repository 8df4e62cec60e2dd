// Command edge-node is the resource-constrained vessel-tracking node: it
// wires the deterministic T-BSP/handoff core to the config, metrics, radio
// and telemetry packages around it, the way a solver binary wires its core
// algorithm to its own output sinks.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/xbfeng/tbspgo/fixed"
	"github.com/xbfeng/tbspgo/handoff"
	"github.com/xbfeng/tbspgo/internal/config"
	"github.com/xbfeng/tbspgo/internal/ingest"
	"github.com/xbfeng/tbspgo/internal/metrics"
	"github.com/xbfeng/tbspgo/internal/radio"
	"github.com/xbfeng/tbspgo/internal/telemetry"
	"github.com/xbfeng/tbspgo/tbsp"
)

// nearFullThreshold is the fraction of a cell's ring capacity at which the
// ingest loop proactively drains the cell through Estimator, ahead of the
// hard ring-reset policy.
const nearFullThreshold = 0.9

// Estimator consumes a cell's buffered poses before they are discarded.
// Production estimation is out of scope here; this interface only gives the
// near_full drain hook somewhere real to call.
type Estimator interface {
	Estimate(cellID uint16, poses []PoseSample) error
}

// PoseSample is the subset of a buffered pose the estimator needs: ENU
// translation and timestamp.
type PoseSample struct {
	EastM, NorthM, UpM fixed.F
	Timestamp          uint32
}

type noopEstimator struct{ logger *log.Logger }

func (e noopEstimator) Estimate(cellID uint16, poses []PoseSample) error {
	e.logger.Debug("draining near-full cell", "cell_id", cellID, "poses", len(poses))
	return nil
}

func main() {
	var (
		configPath = pflag.StringP("config", "c", "edge-node.yaml", "path to YAML configuration")
		dumpCell   = pflag.Uint16("dump-cell", 0, "print the decoded bounds of this cell ID and exit")
		verbose    = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Parse()

	runID := uuid.New().String()
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	logger = logger.With("run_id", runID)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}

	root := tbsp.NewRoot(fixed.FromFloat(cfg.Voyage.RefLatDeg), fixed.FromFloat(cfg.Voyage.RefLonDeg))

	if pflag.CommandLine.Changed("dump-cell") {
		latMin, latMax, lonMin, lonMax := root.CellBounds(*dumpCell)
		fmt.Printf("cell %d: lat [%v, %v] lon [%v, %v]\n",
			*dumpCell, latMin.ToFloat(), latMax.ToFloat(), lonMin.ToFloat(), lonMax.ToFloat())
		return
	}

	rec := metrics.NewRecorder()
	root.OnOverflow = func(cellID uint16) {
		rec.OverflowReset.Inc()
		logger.Warn("cell overflowed, ring reset", "cell_id", cellID)
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		logger.Info("serving metrics", "addr", cfg.Metrics.ListenAddr)
		if err := http.ListenAndServe(cfg.Metrics.ListenAddr, mux); err != nil {
			logger.Error("metrics server stopped", "err", err)
		}
	}()

	broadcaster, err := radio.OpenSerialBroadcaster(cfg.Radio.Device, cfg.Radio.BaudRate)
	if err != nil {
		logger.Fatal("opening radio", "err", err)
	}
	defer broadcaster.Close()

	poseWriter := telemetry.NewPoseWriter(cfg.Telemetry.URL, cfg.Telemetry.Token, cfg.Telemetry.Org, cfg.Telemetry.Bucket)
	defer poseWriter.Close()

	origin := ingest.NewOrigin(cfg.Voyage.RefLatDeg, cfg.Voyage.RefLonDeg)
	machine := handoff.NewMachine()
	var estimator Estimator = noopEstimator{logger: logger}

	ctx := context.Background()
	for report := range fixtureFeed() {
		p := origin.ToPose(report)
		cellID := root.LatLonToCell(fixed.FromFloat(report.Point.Lat()), fixed.FromFloat(report.Point.Lon()))

		if !root.InsertPose(cellID, p) {
			rec.CapacityExhausted.Inc()
			logger.Warn("cell pool exhausted", "cell_id", cellID, "mmsi", report.MMSI)
			continue
		}
		rec.ActiveCells.Set(float64(root.ActiveCount))

		if cell := root.GetCell(cellID); cell != nil && tbsp.NearFull(cell, nearFullThreshold) {
			samples := make([]PoseSample, cell.PoseCount)
			for i := uint16(0); i < cell.PoseCount; i++ {
				samples[i] = PoseSample{
					EastM:     cell.Poses[i].T[0],
					NorthM:    cell.Poses[i].T[1],
					UpM:       cell.Poses[i].T[2],
					Timestamp: cell.Poses[i].Timestamp,
				}
			}
			if err := estimator.Estimate(cellID, samples); err != nil {
				logger.Error("estimator could not keep up with near-full cell", "cell_id", cellID, "err", err)
			} else {
				root.ResetCell(cellID)
				rec.ActiveCells.Set(float64(root.ActiveCount))
			}
		}

		if err := poseWriter.WritePose(ctx, p); err != nil {
			logger.Error("writing telemetry point", "err", err)
		}

		pkt, emitted := machine.Advance(cellID, fixed.FromFloat(report.Point.Lat()), fixed.FromFloat(report.Point.Lon()), p)
		if !emitted {
			continue
		}
		rec.ObserveHandoff(pkt.Flags&handoff.FlagDateline != 0, pkt.Flags&handoff.FlagPolar != 0)
		if err := broadcaster.Broadcast(pkt); err != nil {
			logger.Error("broadcasting handoff packet", "err", err)
		}
	}
}

// fixtureFeed stands in for the external AIS/GPS feed a deployment is
// responsible for supplying; a real deployment replaces this with a serial
// NMEA reader or network listener feeding the same ingest.Report shape.
func fixtureFeed() <-chan ingest.Report {
	ch := make(chan ingest.Report)
	close(ch)
	return ch
}

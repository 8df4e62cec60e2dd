// Package config loads the edge node's startup configuration from YAML.
// Only values are loaded here — the fixed-size pool dimensions (MAX_CELLS,
// POSES_PER_CELL, ...) remain Go compile-time constants in package tbsp;
// this package only supplies the voyage origin and the ambient transport
// endpoints, and checks that they are compatible with those constants.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xbfeng/tbspgo/tbsp"
)

// Config is the top-level YAML document an edge node is started with.
type Config struct {
	Voyage    Voyage    `yaml:"voyage"`
	Radio     Radio     `yaml:"radio"`
	Telemetry Telemetry `yaml:"telemetry"`
	Metrics   Metrics   `yaml:"metrics"`
}

// Voyage carries the T-BSP root's origin.
type Voyage struct {
	RefLatDeg float64 `yaml:"ref_lat_deg"`
	RefLonDeg float64 `yaml:"ref_lon_deg"`
}

// Radio configures the serial broadcast transport for handoff packets.
type Radio struct {
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
}

// Telemetry configures the operational (unsigned) pose telemetry sink.
type Telemetry struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

// Metrics configures the Prometheus exposition endpoint.
type Metrics struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Load reads and validates a Config from path.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrap(err, "validating config")
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Voyage.RefLatDeg < -90 || c.Voyage.RefLatDeg > 90 {
		return errors.Errorf("voyage.ref_lat_deg %v out of [-90, 90]", c.Voyage.RefLatDeg)
	}
	if c.Voyage.RefLonDeg < -360 || c.Voyage.RefLonDeg > 360 {
		return errors.Errorf("voyage.ref_lon_deg %v out of [-360, 360]", c.Voyage.RefLonDeg)
	}
	// tbsp.MaxCells and tbsp.PosesPerCell are compile-time constants;
	// this check only documents the relationship for operators reading
	// the config, not a runtime-tunable bound.
	if tbsp.MaxCells < 1 {
		return errors.New("tbsp.MaxCells must be >= 1")
	}
	return nil
}

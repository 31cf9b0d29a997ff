package harness

import (
	"os"

	"gopkg.in/yaml.v3"
)

// BirchConfig holds BIRCH's three mandatory parameters (spec §6): none of
// them have defaults, so a zero value left in the YAML is a configuration
// error the caller must fix, not silently substituted.
type BirchConfig struct {
	Threshold       float64 `yaml:"threshold"`
	BranchingFactor int     `yaml:"branching_factor"`
	K               int     `yaml:"k"`
}

// CluStreamConfig mirrors clustream.Option, with spec §6 defaults applied
// by LoadConfig for any field left at its zero value.
type CluStreamConfig struct {
	Q                     int     `yaml:"q"`
	InitNumber            int     `yaml:"init_number"`
	MaximumBoundaryFactor float64 `yaml:"maximum_boundary_factor"`
	Threshold             float64 `yaml:"threshold"`
	Lookback              int     `yaml:"lookback"`
	Alpha                 int     `yaml:"alpha"`
}

// DenStreamConfig mirrors denstream.New's parameters. Spec §6 gives no
// numeric defaults beyond sign constraints, so LoadConfig falls back to the
// source's own reference constants (λ=0.2, μ=2.0, ε=2.5, β=0.7, INIT_N=100,
// V=100) when a field is left at zero.
type DenStreamConfig struct {
	Lambda  float64 `yaml:"lambda"`
	Mu      float64 `yaml:"mu"`
	Epsilon float64 `yaml:"epsilon"`
	Beta    float64 `yaml:"beta"`
	InitN   int     `yaml:"init_n"`
	V       int     `yaml:"v"`
}

// SamplerConfig selects and parameterizes an optional wrapping sampler.
// Type is "", "static", or "kmeans_dynamic"; "" means the algorithm is run
// unwrapped.
type SamplerConfig struct {
	Type   string  `yaml:"type"`
	Odds   float64 `yaml:"odds"`
	K      int     `yaml:"k"`
	Alpha  float64 `yaml:"alpha"`
	Beta   float64 `yaml:"beta"`
	Lambda float64 `yaml:"lambda"`
	Delta  int     `yaml:"delta"`
}

// RunConfig is the YAML-decodable configuration for one harness run (spec
// §3 [EXPANSION] "Configuration"), mirroring the teacher's pattern of a
// single top-level options struct per subsystem.
type RunConfig struct {
	Algorithm string `yaml:"algorithm"`
	InputCSV  string `yaml:"input_csv"`
	OutputDir string `yaml:"output_dir"`
	Seed      int64  `yaml:"seed"`

	Birch     BirchConfig     `yaml:"birch"`
	CluStream CluStreamConfig `yaml:"clustream"`
	DenStream DenStreamConfig `yaml:"denstream"`
	Sampler   SamplerConfig   `yaml:"sampler"`
}

// LoadConfig reads and decodes path as YAML into a RunConfig, then applies
// the spec §6 defaults to any field the file left at its zero value.
func LoadConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *RunConfig) {
	if cfg.CluStream.Q == 0 {
		cfg.CluStream.Q = 10
	}
	if cfg.CluStream.InitNumber == 0 {
		cfg.CluStream.InitNumber = 10
	}
	if cfg.CluStream.MaximumBoundaryFactor == 0 {
		cfg.CluStream.MaximumBoundaryFactor = 2.0
	}
	if cfg.CluStream.Threshold == 0 {
		cfg.CluStream.Threshold = 0.5
	}
	if cfg.CluStream.Lookback == 0 {
		cfg.CluStream.Lookback = 10
	}
	if cfg.CluStream.Alpha == 0 {
		cfg.CluStream.Alpha = 2
	}

	if cfg.DenStream.Lambda == 0 {
		cfg.DenStream.Lambda = 0.2
	}
	if cfg.DenStream.Mu == 0 {
		cfg.DenStream.Mu = 2.0
	}
	if cfg.DenStream.Epsilon == 0 {
		cfg.DenStream.Epsilon = 2.5
	}
	if cfg.DenStream.Beta == 0 {
		cfg.DenStream.Beta = 0.7
	}
	if cfg.DenStream.InitN == 0 {
		cfg.DenStream.InitN = 100
	}
	if cfg.DenStream.V == 0 {
		cfg.DenStream.V = 100
	}

	if cfg.Sampler.Type == "kmeans_dynamic" {
		if cfg.Sampler.Alpha == 0 {
			cfg.Sampler.Alpha = 1.0
		}
		if cfg.Sampler.Beta == 0 {
			cfg.Sampler.Beta = 0.5
		}
		if cfg.Sampler.Lambda == 0 {
			cfg.Sampler.Lambda = 0.001
		}
		if cfg.Sampler.Delta == 0 {
			cfg.Sampler.Delta = 1000
		}
	}
}

package harness_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVReader(t *testing.T) {
	r := strings.NewReader("1,2\n3,4\n5,6\n")
	pts, err := harness.ReadCSVReader(r)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, 2, pts[0].Len())
}

func TestReadCSVRejectsRaggedRows(t *testing.T) {
	r := strings.NewReader("1,2\n3,4,5\n")
	_, err := harness.ReadCSVReader(r)
	assert.Error(t, err)
}

func TestReadCSVRejectsEmpty(t *testing.T) {
	r := strings.NewReader("")
	_, err := harness.ReadCSVReader(r)
	assert.ErrorIs(t, err, harness.ErrEmptyCSV)
}

func TestReadCSVFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,4\n"), 0o644))

	pts, err := harness.ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, pts, 2)
}

func TestWriteAndReadClusters(t *testing.T) {
	els := []cluster.ClusteringElement{
		{Center: []float64{1, 2}, Radius: 0.5, Cluster: 0},
		{Center: []float64{3, 4}, Radius: 1.5, Cluster: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, harness.WriteClusters(&buf, els))

	got, err := harness.ReadClusters(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, els[0].Cluster, got[0].Cluster)
	assert.InDelta(t, els[1].Radius, got[1].Radius, 1e-9)
}

func TestRateSamplerEmitsOnInterval(t *testing.T) {
	rs := harness.NewRateSampler("birch", 2)
	for i := 0; i < 10_000; i++ {
		rs.Tick()
	}
	samples := rs.Samples()
	require.Len(t, samples, 1)
	assert.Equal(t, 10_000, samples[0].RecordNo)
	assert.Equal(t, "birch", samples[0].Algorithm)
}

func TestWriteRateSamples(t *testing.T) {
	samples := []harness.RateSample{{Algorithm: "birch", Dimension: 2, Micros: 150, RecordNo: 10000}}
	var buf bytes.Buffer
	require.NoError(t, harness.WriteRateSamples(&buf, samples))
	assert.Contains(t, buf.String(), "birch")
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: clustream\ninput_csv: data.csv\n"), 0o644))

	cfg, err := harness.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.CluStream.Q)
	assert.Equal(t, 2.0, cfg.CluStream.MaximumBoundaryFactor)
	assert.Equal(t, 0.2, cfg.DenStream.Lambda)
}

func TestLoadConfigRespectsExplicitValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: birch\nbirch:\n  threshold: 5\n  branching_factor: 4\n  k: 2\n"), 0o644))

	cfg, err := harness.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Birch.Threshold)
	assert.Equal(t, 4, cfg.Birch.BranchingFactor)
	assert.Equal(t, 2, cfg.Birch.K)
}

func TestBuildRejectsStream(t *testing.T) {
	cfg := &harness.RunConfig{Algorithm: "stream"}
	_, err := harness.Build(cfg)
	assert.ErrorIs(t, err, harness.ErrStreamUnimplemented)
}

func TestBuildRejectsUnknownAlgorithm(t *testing.T) {
	cfg := &harness.RunConfig{Algorithm: "bogus"}
	_, err := harness.Build(cfg)
	assert.ErrorIs(t, err, harness.ErrUnknownAlgorithm)
}

func TestBuildBirch(t *testing.T) {
	cfg := &harness.RunConfig{
		Algorithm: "birch",
		Birch:     harness.BirchConfig{Threshold: 5, BranchingFactor: 2, K: 2},
	}
	algo, err := harness.Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, "BIRCH", algo.Name())
}

func TestBuildWithStaticSampler(t *testing.T) {
	cfg := &harness.RunConfig{
		Algorithm: "birch",
		Birch:     harness.BirchConfig{Threshold: 5, BranchingFactor: 2, K: 1},
		Sampler:   harness.SamplerConfig{Type: "static", Odds: 0.5},
		Seed:      1,
	}
	algo, err := harness.Build(cfg)
	require.NoError(t, err)
	assert.Contains(t, algo.Name(), "StaticSampler")
}

// Package main provides the streamcluster CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/harness"
)

func main() {
	log := logrus.New()

	rootCmd := &cobra.Command{
		Use:   "streamcluster",
		Short: "Streaming and batch clustering over CSV point data",
		Long: `streamcluster runs BIRCH, CluStream, or DenStream over a CSV file of
points, optionally through a sampling wrapper, and writes the resulting
clusters back out as CSV.`,
	}

	rootCmd.AddCommand(newRunCmd(log))
	rootCmd.AddCommand(newSSQCmd(log))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd(log *logrus.Logger) *cobra.Command {
	var configPath string
	var outputPath string
	var ratePath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an algorithm over a CSV input according to a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(log, configPath, outputPath, ratePath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the YAML run configuration (required)")
	cmd.Flags().StringVar(&outputPath, "output", "clusters.csv", "path to write the resulting clusters CSV")
	cmd.Flags().StringVar(&ratePath, "rate-output", "", "optional path to write throughput samples CSV")
	cmd.MarkFlagRequired("config")

	return cmd
}

func runRun(log *logrus.Logger, configPath, outputPath, ratePath string) error {
	cfg, err := harness.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("streamcluster: loading config: %w", err)
	}
	log.WithField("algorithm", cfg.Algorithm).Info("loaded configuration")

	algo, err := harness.Build(cfg)
	if err != nil {
		return fmt.Errorf("streamcluster: building algorithm: %w", err)
	}

	points, err := harness.ReadCSV(cfg.InputCSV)
	if err != nil {
		return fmt.Errorf("streamcluster: reading input: %w", err)
	}
	log.WithField("points", len(points)).Info("loaded input")

	rate := harness.NewRateSampler(algo.Name(), points[0].Len())
	for _, p := range points {
		if err := algo.Insert(p); err != nil {
			return fmt.Errorf("streamcluster: inserting point: %w", err)
		}
		rate.Tick()
	}

	els, err := algo.Clusters()
	if err != nil {
		return fmt.Errorf("streamcluster: computing clusters: %w", err)
	}
	log.WithField("clusters", len(els)).Info("clustering complete")

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("streamcluster: creating output: %w", err)
	}
	defer out.Close()
	if err := harness.WriteClusters(out, els); err != nil {
		return fmt.Errorf("streamcluster: writing output: %w", err)
	}

	if ratePath != "" {
		rateOut, err := os.Create(ratePath)
		if err != nil {
			return fmt.Errorf("streamcluster: creating rate output: %w", err)
		}
		defer rateOut.Close()
		if err := harness.WriteRateSamples(rateOut, rate.Samples()); err != nil {
			return fmt.Errorf("streamcluster: writing rate output: %w", err)
		}
	}

	return nil
}

func newSSQCmd(log *logrus.Logger) *cobra.Command {
	var clustersPath string

	cmd := &cobra.Command{
		Use:   "ssq",
		Short: "Compute the within-cluster sum of squares for a clusters CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSQ(log, clustersPath)
		},
	}
	cmd.Flags().StringVar(&clustersPath, "clusters", "", "path to a clusters CSV produced by 'run' (required)")
	cmd.MarkFlagRequired("clusters")

	return cmd
}

func runSSQ(log *logrus.Logger, clustersPath string) error {
	f, err := os.Open(clustersPath)
	if err != nil {
		return fmt.Errorf("streamcluster: opening clusters: %w", err)
	}
	defer f.Close()

	els, err := harness.ReadClusters(f)
	if err != nil {
		return fmt.Errorf("streamcluster: reading clusters: %w", err)
	}

	ssq := cluster.SSQ(els)
	log.WithField("ssq", ssq).Info("computed within-cluster sum of squares")
	fmt.Println(ssq)
	return nil
}

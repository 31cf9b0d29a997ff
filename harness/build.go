package harness

import (
	"github.com/katalvlaran/streamcluster/birch"
	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/clustream"
	"github.com/katalvlaran/streamcluster/denstream"
	"github.com/katalvlaran/streamcluster/sampler"
)

// Build resolves cfg.Algorithm into a concrete cluster.Algorithm, then
// wraps it in the sampler named by cfg.Sampler (if any). "stream" is
// rejected outright: the source this module was built from never got past
// a stub for it (spec §1, §6 [EXPANSION]).
func Build(cfg *RunConfig) (cluster.Algorithm, error) {
	var algo cluster.Algorithm
	var err error

	switch cfg.Algorithm {
	case "birch":
		algo, err = birch.New(cfg.Birch.Threshold, cfg.Birch.BranchingFactor, cfg.Birch.K)
	case "clustream":
		algo, err = clustream.New(
			clustream.WithQ(cfg.CluStream.Q),
			clustream.WithInitNumber(cfg.CluStream.InitNumber),
			clustream.WithMaximumBoundaryFactor(cfg.CluStream.MaximumBoundaryFactor),
			clustream.WithThreshold(cfg.CluStream.Threshold),
			clustream.WithLookback(cfg.CluStream.Lookback),
			clustream.WithAlpha(cfg.CluStream.Alpha),
		)
	case "denstream":
		algo, err = denstream.New(
			cfg.DenStream.Lambda,
			cfg.DenStream.Mu,
			cfg.DenStream.Epsilon,
			cfg.DenStream.Beta,
			cfg.DenStream.InitN,
			cfg.DenStream.V,
		)
	case "stream":
		return nil, ErrStreamUnimplemented
	default:
		return nil, ErrUnknownAlgorithm
	}
	if err != nil {
		return nil, err
	}

	switch cfg.Sampler.Type {
	case "":
		return algo, nil
	case "static":
		return sampler.NewStatic(algo, cfg.Sampler.Odds, cfg.Seed)
	case "kmeans_dynamic":
		return sampler.NewKMeansDynamic(algo, cfg.Sampler.K, cfg.Seed,
			sampler.WithAlpha(cfg.Sampler.Alpha),
			sampler.WithBeta(cfg.Sampler.Beta),
			sampler.WithLambda(cfg.Sampler.Lambda),
			sampler.WithDelta(cfg.Sampler.Delta),
		)
	default:
		return nil, ErrUnknownSampler
	}
}

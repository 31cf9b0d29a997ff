// Package harness provides the external collaborators the clustering
// algorithms are evaluated against (spec §6 [EXPANSION]): CSV ingestion of
// point streams, a YAML-decodable run configuration, a rate sampler that
// times throughput every 10,000 inserts, and a result writer for the
// clusters a run produces.
package harness

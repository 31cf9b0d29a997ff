package harness

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// sampleInterval is how often the rate sampler records a throughput sample
// (spec §6: "every 10,000 inserts").
const sampleInterval = 10_000

// RateSample is one throughput observation: the elapsed time, in
// microseconds, to process sampleInterval inserts ending at RecordNo.
type RateSample struct {
	Algorithm string
	Dimension int
	Micros    int64
	RecordNo  int
}

// RateSampler emits a RateSample every sampleInterval calls to Tick (spec
// §6 [EXPANSION]).
type RateSampler struct {
	algorithm string
	dimension int
	count     int
	last      time.Time
	samples   []RateSample
}

// NewRateSampler constructs a RateSampler labeling its samples with
// algorithm and dimension.
func NewRateSampler(algorithm string, dimension int) *RateSampler {
	return &RateSampler{algorithm: algorithm, dimension: dimension, last: time.Now()}
}

// Tick records one processed insert, appending a RateSample every
// sampleInterval calls.
func (r *RateSampler) Tick() {
	r.count++
	if r.count%sampleInterval == 0 {
		now := time.Now()
		r.samples = append(r.samples, RateSample{
			Algorithm: r.algorithm,
			Dimension: r.dimension,
			Micros:    now.Sub(r.last).Microseconds(),
			RecordNo:  r.count,
		})
		r.last = now
	}
}

// Samples returns every RateSample recorded so far.
func (r *RateSampler) Samples() []RateSample { return r.samples }

// WriteRateSamples writes samples as CSV rows: algorithm, dimension,
// micros, record_no.
func WriteRateSamples(w io.Writer, samples []RateSample) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	for _, s := range samples {
		record := []string{
			s.Algorithm,
			strconv.Itoa(s.Dimension),
			strconv.FormatInt(s.Micros, 10),
			strconv.Itoa(s.RecordNo),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/streamcluster/vector"
)

// ReadCSV reads every row of path as a comma-separated vector of reals
// (spec §6 [EXPANSION]), validating that every row shares the first row's
// dimension. No third-party CSV library appears anywhere in the retrieved
// corpus (the one example repo parsing CSV — nornicdb's apoc/load — also
// reaches for encoding/csv), so this reads directly off the standard
// library rather than introducing an ungrounded dependency.
func ReadCSV(path string) ([]vector.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSVReader(f)
}

// ReadCSVReader is ReadCSV over an already-open io.Reader, exposed
// separately so callers (and tests) needn't round-trip through a file.
func ReadCSVReader(r io.Reader) ([]vector.Vector, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var points []vector.Vector
	dim := -1
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		point := make(vector.Vector, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("harness: row %d field %d: %w", row, i, err)
			}
			point[i] = v
		}

		if dim == -1 {
			dim = point.Len()
		} else if err := point.Validate(dim); err != nil {
			return nil, fmt.Errorf("harness: row %d: %w", row, err)
		}
		points = append(points, point)
	}

	if len(points) == 0 {
		return nil, ErrEmptyCSV
	}
	return points, nil
}

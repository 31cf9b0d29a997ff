package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/streamcluster/cluster"
	"github.com/katalvlaran/streamcluster/vector"
)

// WriteClusters writes one CSV row per clustering element: every center
// component, followed by radius, followed by cluster id (spec §6
// [EXPANSION]).
func WriteClusters(w io.Writer, els []cluster.ClusteringElement) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	for _, el := range els {
		record := make([]string, len(el.Center)+2)
		for i, x := range el.Center {
			record[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		record[len(el.Center)] = strconv.FormatFloat(el.Radius, 'g', -1, 64)
		record[len(el.Center)+1] = strconv.Itoa(el.Cluster)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

// ReadClusters is the inverse of WriteClusters, used by the `ssq`
// subcommand to re-load a previously written cluster file for scoring.
func ReadClusters(r io.Reader) ([]cluster.ClusteringElement, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var out []cluster.ClusteringElement
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

		if len(record) < 3 {
			return nil, fmt.Errorf("harness: row %d: expected at least center+radius+cluster", row)
		}
		center := make(vector.Vector, len(record)-2)
		for i := 0; i < len(record)-2; i++ {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				return nil, fmt.Errorf("harness: row %d center[%d]: %w", row, i, err)
			}
			center[i] = v
		}
		radius, err := strconv.ParseFloat(record[len(record)-2], 64)
		if err != nil {
			return nil, fmt.Errorf("harness: row %d radius: %w", row, err)
		}
		clusterID, err := strconv.Atoi(record[len(record)-1])
		if err != nil {
			return nil, fmt.Errorf("harness: row %d cluster id: %w", row, err)
		}

		out = append(out, cluster.ClusteringElement{Center: center, Radius: radius, Cluster: clusterID})
	}
	return out, nil
}

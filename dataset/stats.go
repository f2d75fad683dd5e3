package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FeatureStats are the summary statistics of one column, computed over
// every element of every row (tensor columns contribute all their
// elements).
type FeatureStats struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// ComputeStats computes summary statistics for every numeric column of
// the dataset. Non-numeric columns are skipped.
func ComputeStats(d *Dataset) map[string]FeatureStats {
	out := make(map[string]FeatureStats)
	for _, col := range d.Table.Columns() {
		values := columnValues(d.Table, col)
		if len(values) == 0 {
			continue
		}
		std := float64(0)
		if len(values) > 1 {
			std = stat.StdDev(values, nil)
		}
		out[col] = FeatureStats{
			Mean:  stat.Mean(values, nil),
			Std:   std,
			Min:   floats.Min(values),
			Max:   floats.Max(values),
			Count: len(values),
		}
	}
	return out
}

func columnValues(t *Table, col string) []float64 {
	values := make([]float64, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		switch v := t.Row(i)[col].(type) {
		case *Tensor:
			for _, f := range v.Data {
				values = append(values, float64(f))
			}
		default:
			f, err := toFloat(v)
			if err != nil {
				return nil
			}
			values = append(values, f)
		}
	}
	return values
}

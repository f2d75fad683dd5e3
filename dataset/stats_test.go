package dataset

import (
	"math"
	"testing"
)

func TestComputeStatsScalarColumn(t *testing.T) {
	table := NewTable()
	for _, r := range []float64{1, 2, 3, 4} {
		table.Append(Row{"next.reward": r})
	}
	ds := &Dataset{Table: table}

	stats := ComputeStats(ds)
	s, ok := stats["next.reward"]
	if !ok {
		t.Fatalf("no stats for next.reward")
	}
	if s.Mean != 2.5 {
		t.Errorf("mean %v, expected 2.5", s.Mean)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("min/max %v/%v, expected 1/4", s.Min, s.Max)
	}
	if s.Count != 4 {
		t.Errorf("count %d, expected 4", s.Count)
	}
	// sample standard deviation of 1..4
	if math.Abs(s.Std-1.2909944487358056) > 1e-12 {
		t.Errorf("std %v", s.Std)
	}
}

func TestComputeStatsTensorColumn(t *testing.T) {
	table := NewTable()
	first, err := TensorFromList([]interface{}{0.0, 2.0})
	if err != nil {
		t.Fatal(err)
	}
	second, err := TensorFromList([]interface{}{4.0, 6.0})
	if err != nil {
		t.Fatal(err)
	}
	table.Append(Row{"action": first})
	table.Append(Row{"action": second})
	ds := &Dataset{Table: table}

	stats := ComputeStats(ds)
	s, ok := stats["action"]
	if !ok {
		t.Fatalf("no stats for action")
	}
	if s.Count != 4 {
		t.Fatalf("count %d, expected 4 (all tensor elements)", s.Count)
	}
	if s.Mean != 3 || s.Min != 0 || s.Max != 6 {
		t.Errorf("mean/min/max %v/%v/%v, expected 3/0/6", s.Mean, s.Min, s.Max)
	}
}

func TestComputeStatsSkipsNonNumericColumns(t *testing.T) {
	table := NewTable()
	table.Append(Row{"task": "push", "next.reward": 1.0})
	table.Append(Row{"task": "lift", "next.reward": 2.0})
	ds := &Dataset{Table: table}

	stats := ComputeStats(ds)
	if _, ok := stats["task"]; ok {
		t.Errorf("stats computed for a string column")
	}
	if _, ok := stats["next.reward"]; !ok {
		t.Errorf("numeric column skipped")
	}
}

func TestComputeStatsSingleValueStd(t *testing.T) {
	table := NewTable()
	table.Append(Row{"next.reward": 5.0})
	ds := &Dataset{Table: table}

	s := ComputeStats(ds)["next.reward"]
	if s.Std != 0 {
		t.Errorf("std of a single value is %v, expected 0", s.Std)
	}
}

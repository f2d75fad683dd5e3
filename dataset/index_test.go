package dataset

import "testing"

func TestCalculateEpisodeDataIndex(t *testing.T) {
	table := NewTable()
	for _, ep := range []float64{0, 0, 0, 1, 1, 2} {
		table.Append(Row{"episode_index": ep})
	}

	index, err := CalculateEpisodeDataIndex(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedFrom := []int64{0, 3, 5}
	expectedTo := []int64{3, 5, 6}
	if len(index.From) != len(expectedFrom) {
		t.Fatalf("got %d episodes, expected %d", len(index.From), len(expectedFrom))
	}
	for i := range expectedFrom {
		if index.From[i] != expectedFrom[i] || index.To[i] != expectedTo[i] {
			t.Errorf("episode %d range [%d, %d), expected [%d, %d)",
				i, index.From[i], index.To[i], expectedFrom[i], expectedTo[i])
		}
	}
}

func TestCalculateEpisodeDataIndexEmptyTable(t *testing.T) {
	index, err := CalculateEpisodeDataIndex(NewTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.From) != 0 || len(index.To) != 0 {
		t.Errorf("expected an empty index, got %v", index)
	}
}

func TestCalculateEpisodeDataIndexMissingColumn(t *testing.T) {
	table := NewTable()
	table.Append(Row{"frame_index": 0.0})
	if _, err := CalculateEpisodeDataIndex(table); err == nil {
		t.Errorf("expected an error for a missing episode_index column")
	}
}

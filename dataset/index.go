package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// EpisodeDataIndex maps every episode to the contiguous row range it
// occupies in the flattened table. From is inclusive, To exclusive.
type EpisodeDataIndex struct {
	From []int64 `json:"from"`
	To   []int64 `json:"to"`
}

// LoadEpisodeDataIndex reads a precomputed index sidecar verbatim
func LoadEpisodeDataIndex(path string) (*EpisodeDataIndex, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	index := &EpisodeDataIndex{}
	if err := json.Unmarshal(bs, index); err != nil {
		return nil, fmt.Errorf("parse episode data index %s: %w", path, err)
	}
	return index, nil
}

// CalculateEpisodeDataIndex derives the index from the table by scanning
// the episode_index column for boundaries. Episodes must occupy
// contiguous row ranges.
func CalculateEpisodeDataIndex(t *Table) (*EpisodeDataIndex, error) {
	index := &EpisodeDataIndex{
		From: make([]int64, 0),
		To:   make([]int64, 0),
	}
	current := float64(-1)
	for i := 0; i < t.Len(); i++ {
		v, ok := t.Row(i)["episode_index"]
		if !ok {
			return nil, fmt.Errorf("row %d has no episode_index column", i)
		}
		ep, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("row %d episode_index: %w", i, err)
		}
		if i == 0 || ep != current {
			if i > 0 {
				index.To = append(index.To, int64(i))
			}
			index.From = append(index.From, int64(i))
			current = ep
		}
	}
	if t.Len() > 0 {
		index.To = append(index.To, int64(t.Len()))
	}
	return index, nil
}

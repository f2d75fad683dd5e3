package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amaurel/robo-rollout/util"
)

// WriteToDisk writes the dataset in the on-disk layout consumed by
// LoadFromDisk: root/repo_id/train/data.jsonl, meta_data/info.json,
// meta_data/episode_data_index.json and an empty videos directory.
// Tensors are written back as plain nested lists.
func (d *Dataset) WriteToDisk(root string) error {
	dir := filepath.Join(root, d.RepoID)

	lines := make([]string, 0, d.Table.Len())
	for i := 0; i < d.Table.Len(); i++ {
		bs, err := json.Marshal(encodeRow(d.Table.Row(i)))
		if err != nil {
			return fmt.Errorf("marshal row %d: %w", i, err)
		}
		lines = append(lines, string(bs))
	}
	if err := util.WriteToFile(filepath.Join(dir, "train", "data.jsonl"), lines...); err != nil {
		return err
	}

	metaDir := filepath.Join(dir, "meta_data")
	if err := util.WriteJSONFile(filepath.Join(metaDir, "info.json"), d.Info); err != nil {
		return err
	}
	if d.EpisodeIndex != nil {
		if err := util.WriteJSONFile(filepath.Join(metaDir, "episode_data_index.json"), d.EpisodeIndex); err != nil {
			return err
		}
	}

	return os.MkdirAll(filepath.Join(dir, "videos"), 0755)
}

func encodeRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		if t, ok := v.(*Tensor); ok {
			out[k] = t.Nested()
		} else {
			out[k] = v
		}
	}
	return out
}

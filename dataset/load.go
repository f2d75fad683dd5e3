package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dataset is the assembled in-memory form of a saved dataset: the
// converted row table, the metadata sidecar, the episode boundary index
// and a reference to the associated video assets.
type Dataset struct {
	RepoID       string
	Table        *Table
	Info         map[string]interface{}
	EpisodeIndex *EpisodeDataIndex
	VideosDir    string
	Stats        map[string]FeatureStats
}

// LoadFromDisk loads the saved dataset at root/repoID: reads the train
// split, converts list columns to tensors, loads the metadata and the
// episode data index (computing it when the sidecar is absent). Any
// missing required path aborts before further local work or any remote
// interaction.
func LoadFromDisk(root, repoID string) (*Dataset, error) {
	dir := filepath.Join(root, repoID)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("dataset directory not found at %s", dir)
	}

	table, err := loadTable(filepath.Join(dir, "train"))
	if err != nil {
		return nil, err
	}
	if cols := ConvertListColumns(table); len(cols) > 0 {
		fmt.Printf("Converted list columns to tensors: %s\n", strings.Join(cols, ", "))
	}

	metaDir := filepath.Join(dir, "meta_data")
	if _, err := os.Stat(metaDir); err != nil {
		return nil, fmt.Errorf("metadata directory not found at %s", metaDir)
	}

	info, err := loadInfo(filepath.Join(metaDir, "info.json"))
	if err != nil {
		return nil, err
	}

	var index *EpisodeDataIndex
	indexPath := filepath.Join(metaDir, "episode_data_index.json")
	if _, err := os.Stat(indexPath); err == nil {
		index, err = LoadEpisodeDataIndex(indexPath)
		if err != nil {
			return nil, err
		}
	} else {
		fmt.Println("Computing episode data index...")
		index, err = CalculateEpisodeDataIndex(table)
		if err != nil {
			return nil, err
		}
	}

	return &Dataset{
		RepoID:       repoID,
		Table:        table,
		Info:         info,
		EpisodeIndex: index,
		VideosDir:    filepath.Join(dir, "videos"),
	}, nil
}

func loadTable(dir string) (*Table, error) {
	f, err := os.Open(filepath.Join(dir, "data.jsonl"))
	if err != nil {
		return nil, fmt.Errorf("train split not found at %s", dir)
	}
	defer f.Close()

	table := NewTable()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row := Row{}
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("parse train row %d: %w", table.Len(), err)
		}
		table.Append(row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func loadInfo(path string) (map[string]interface{}, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info := make(map[string]interface{})
	if err := json.Unmarshal(bs, &info); err != nil {
		return nil, fmt.Errorf("parse dataset info %s: %w", path, err)
	}
	return info, nil
}

package hub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/amaurel/robo-rollout/dataset"
)

const (
	datasetsKey  = "hub:datasets"
	datasetsBase = "hub:datasets:"
)

// Client pushes assembled datasets to the hub store and reads them back.
// The hub is a redis instance; every dataset lives under
// hub:datasets:<repo_id> with one key per part.
type Client struct {
	rdb *redis.Client
}

func NewClient(addr string) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

// Push uploads the dataset: metadata, episode index, the row table, the
// stats when present, the tags and the video location reference. Store
// errors propagate unchanged, there is no retry.
func (c *Client) Push(ctx context.Context, d *dataset.Dataset, tags []string) error {
	ns := datasetsBase + d.RepoID

	if err := c.setJSON(ctx, ns+":info", d.Info); err != nil {
		return err
	}
	if err := c.setJSON(ctx, ns+":episode_index", d.EpisodeIndex); err != nil {
		return err
	}
	if d.Stats != nil {
		if err := c.setJSON(ctx, ns+":stats", d.Stats); err != nil {
			return err
		}
	}

	if err := c.rdb.Del(ctx, ns+":train").Err(); err != nil {
		return fmt.Errorf("hub push %s: %w", d.RepoID, err)
	}
	rows := make([]interface{}, 0, d.Table.Len())
	for i := 0; i < d.Table.Len(); i++ {
		bs, err := json.Marshal(d.Table.Row(i))
		if err != nil {
			return fmt.Errorf("hub push %s: marshal row %d: %w", d.RepoID, i, err)
		}
		rows = append(rows, string(bs))
	}
	if len(rows) > 0 {
		if err := c.rdb.RPush(ctx, ns+":train", rows...).Err(); err != nil {
			return fmt.Errorf("hub push %s: %w", d.RepoID, err)
		}
	}

	if err := c.rdb.Del(ctx, ns+":tags").Err(); err != nil {
		return fmt.Errorf("hub push %s: %w", d.RepoID, err)
	}
	if len(tags) > 0 {
		members := make([]interface{}, len(tags))
		for i, t := range tags {
			members[i] = t
		}
		if err := c.rdb.SAdd(ctx, ns+":tags", members...).Err(); err != nil {
			return fmt.Errorf("hub push %s: %w", d.RepoID, err)
		}
	}

	// videos are passed through by reference only
	if err := c.rdb.Set(ctx, ns+":videos", d.VideosDir, 0).Err(); err != nil {
		return fmt.Errorf("hub push %s: %w", d.RepoID, err)
	}

	if err := c.rdb.SAdd(ctx, datasetsKey, d.RepoID).Err(); err != nil {
		return fmt.Errorf("hub push %s: %w", d.RepoID, err)
	}
	return nil
}

// ListDatasets returns the repo ids present on the hub
func (c *Client) ListDatasets(ctx context.Context) ([]string, error) {
	return c.rdb.SMembers(ctx, datasetsKey).Result()
}

func (c *Client) Info(ctx context.Context, repoID string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if err := c.getJSON(ctx, datasetsBase+repoID+":info", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Stats(ctx context.Context, repoID string) (map[string]dataset.FeatureStats, error) {
	out := make(map[string]dataset.FeatureStats)
	if err := c.getJSON(ctx, datasetsBase+repoID+":stats", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Tags(ctx context.Context, repoID string) ([]string, error) {
	return c.rdb.SMembers(ctx, datasetsBase+repoID+":tags").Result()
}

func (c *Client) setJSON(ctx context.Context, key string, v interface{}) error {
	bs, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("hub: marshal %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, bs, 0).Err(); err != nil {
		return fmt.Errorf("hub: set %s: %w", key, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, key string, v interface{}) error {
	bs, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Errorf("hub: get %s: %w", key, err)
	}
	return json.Unmarshal(bs, v)
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amaurel/robo-rollout/dataset"
	"github.com/amaurel/robo-rollout/hub"
)

// UploadCommand uploads a previously saved dataset to the dataset hub
func UploadCommand() *cobra.Command {
	var repoID string
	var root string
	var computeStats bool
	var tags []string

	cmd := &cobra.Command{
		Use: "upload",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Loading dataset from %s...\n", filepath.Join(root, repoID))
			ds, err := dataset.LoadFromDisk(root, repoID)
			if err != nil {
				return err
			}

			if computeStats {
				fmt.Println("Computing dataset statistics...")
				ds.Stats = dataset.ComputeStats(ds)
			}

			cli := hub.NewClient(hubAddr)
			defer cli.Close()

			fmt.Printf("Pushing dataset to hub as %s...\n", repoID)
			if err := cli.Push(cmd.Context(), ds, tags); err != nil {
				return err
			}
			fmt.Println("Dataset uploaded successfully!")
			return nil
		},
	}
	cmd.Flags().StringVar(&repoID, "repo_id", "", "Repository ID in format 'username/dataset_name'")
	cmd.Flags().StringVar(&root, "root", "", "Root directory containing the saved dataset")
	cmd.Flags().BoolVar(&computeStats, "compute_stats", false, "Whether to compute dataset statistics before uploading")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags to add to the dataset on the hub")
	cmd.MarkFlagRequired("repo_id")
	cmd.MarkFlagRequired("root")
	return cmd
}

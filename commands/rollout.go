package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/amaurel/robo-rollout/dataset"
	"github.com/amaurel/robo-rollout/envs"
	"github.com/amaurel/robo-rollout/report"
)

// RolloutCommand runs random rollouts in a batched environment, plots the
// per-episode returns and optionally records the episodes in the saved
// dataset layout consumed by the upload command.
func RolloutCommand() *cobra.Command {
	var envName string
	var task string
	var seed int64
	var batch int
	var episodes int
	var episodeLength int
	var nObsSteps int
	var actionRepeat int
	var fromPixels bool
	var fps int
	var record bool
	var repoID string
	var saveDir string

	cmd := &cobra.Command{
		Use: "rollout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &envs.Config{
				Env: envs.EnvConfig{
					Name:          envName,
					Task:          task,
					ActionRepeat:  actionRepeat,
					FromPixels:    fromPixels,
					EpisodeLength: episodeLength,
				},
				Seed:             seed,
				NObsSteps:        nObsSteps,
				RolloutBatchSize: batch,
			}
			env, err := envs.MakeEnv(cfg, nil)
			if err != nil {
				return err
			}
			defer env.Close()

			uniform := distuv.Uniform{
				Min: -1,
				Max: 1,
				Src: rand.NewSource(uint64(seed)),
			}

			table := dataset.NewTable()
			returns := make([]float64, 0, episodes*batch)
			episodeIndex := 0

			for ep := 0; ep < episodes; ep++ {
				obs, err := env.Reset()
				if err != nil {
					return err
				}

				epReturns := make([]float64, batch)
				epDone := make([]bool, batch)
				frames := make([]int, batch)
				// rows buffered per worker so every episode stays contiguous in the table
				rows := make([][]dataset.Row, batch)

				for step := 0; step < episodeLength; step++ {
					actions := make([][]float64, batch)
					for w := range actions {
						a := make([]float64, env.ActionSize())
						for i := range a {
							a[i] = uniform.Rand()
						}
						actions[w] = a
					}

					next, rewards, dones, err := env.Step(actions)
					if err != nil {
						return err
					}

					allDone := true
					for w := 0; w < batch; w++ {
						if epDone[w] {
							continue
						}
						epReturns[w] += rewards[w]
						if record {
							rows[w] = append(rows[w], dataset.Row{
								"episode_index":     float64(episodeIndex + w),
								"frame_index":       float64(frames[w]),
								"timestamp":         float64(frames[w]) / float64(fps),
								"observation.state": obs[w],
								"action":            actions[w],
								"next.reward":       rewards[w],
								"next.done":         dones[w],
							})
						}
						frames[w]++
						if dones[w] {
							epDone[w] = true
						} else {
							allDone = false
						}
					}
					obs = next
					if allDone {
						break
					}
				}

				for w := 0; w < batch; w++ {
					for _, r := range rows[w] {
						table.Append(r)
					}
				}
				returns = append(returns, epReturns...)
				episodeIndex += batch
				fmt.Printf("\rEpisode %d/%d", ep+1, episodes)
			}
			fmt.Println("")

			if record {
				index, err := dataset.CalculateEpisodeDataIndex(table)
				if err != nil {
					return err
				}
				ds := &dataset.Dataset{
					RepoID: repoID,
					Table:  table,
					Info: map[string]interface{}{
						"codebase_version": "v1.0",
						"fps":              fps,
						"env":              envName,
						"task":             task,
						"seed":             seed,
					},
					EpisodeIndex: index,
					VideosDir:    filepath.Join(saveDir, repoID, "videos"),
				}
				if err := ds.WriteToDisk(saveDir); err != nil {
					return err
				}
				fmt.Printf("Recorded dataset written to %s\n", filepath.Join(saveDir, repoID))
			}

			return report.PlotEpisodeReturns(filepath.Join(saveDir, "returns.png"), envName, returns)
		},
	}
	cmd.Flags().StringVar(&envName, "env", "pusht", "Environment name")
	cmd.Flags().StringVar(&task, "task", "", "Task identifier, required for simxarm and aloha")
	cmd.Flags().Int64Var(&seed, "seed", 1337, "Base seed, worker i runs with seed+i")
	cmd.Flags().IntVar(&batch, "batch", 1, "Rollout batch size")
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 10, "Number of episodes to run")
	cmd.Flags().IntVar(&episodeLength, "episode-length", 300, "Maximum steps per episode")
	cmd.Flags().IntVar(&nObsSteps, "n-obs-steps", 1, "Number of observation steps stacked per observation")
	cmd.Flags().IntVar(&actionRepeat, "action-repeat", 1, "Simulation sub-steps per control step")
	cmd.Flags().BoolVar(&fromPixels, "from-pixels", false, "Observe rendered pixels")
	cmd.Flags().IntVar(&fps, "fps", 15, "Control frequency recorded in the dataset metadata")
	cmd.Flags().BoolVar(&record, "record", false, "Record the episodes in the saved dataset layout")
	cmd.Flags().StringVar(&repoID, "repo_id", "local/rollouts", "Repository ID for the recorded dataset")
	cmd.Flags().StringVarP(&saveDir, "save", "s", "results", "Directory for plots and recorded datasets")
	return cmd
}

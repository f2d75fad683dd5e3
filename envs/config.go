package envs

// EnvConfig selects and parameterizes the underlying environment
type EnvConfig struct {
	// Name of the environment, one of the registered names ("simxarm", "pusht", "aloha")
	Name string
	// Task identifier, required for the task-parameterized environments
	Task string
	// Number of simulation sub-steps executed per control step
	ActionRepeat int
	// Observe rendered pixels instead of (or along with) the raw state
	FromPixels bool
	PixelsOnly bool
	ImageSize  int
	// Maximum number of control steps per episode
	EpisodeLength int
}

// Config for building a batched environment
type Config struct {
	Env EnvConfig
	// Base seed, worker i is seeded with Seed + i
	Seed int64
	// Number of observation steps stacked into each observation
	NObsSteps int
	// Number of independent instances stepped together
	RolloutBatchSize int
}

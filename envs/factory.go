package envs

import (
	"errors"
	"fmt"
)

var ErrUnknownEnv = errors.New("unknown environment")

// Constructor builds a single environment instance from its options
type Constructor func(Options) (Environment, error)

var registry = map[string]Constructor{}

// Register adds an environment constructor under the given name.
// The supported set is closed at startup, each environment file
// registers itself from an init function.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// MakeEnv builds cfg.RolloutBatchSize independent instances of the
// environment named by cfg.Env.Name and aggregates them into a single
// SerialEnv. Worker i is seeded with cfg.Seed + i. Every worker is capped
// at cfg.Env.EpisodeLength steps and receives its own clone of the
// supplied transform chain, so no transform state is shared across
// workers.
func MakeEnv(cfg *Config, transform Transform) (*SerialEnv, error) {
	if cfg.RolloutBatchSize < 1 {
		return nil, fmt.Errorf("rollout batch size must be at least 1, got %d", cfg.RolloutBatchSize)
	}
	ctor, ok := registry[cfg.Env.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnv, cfg.Env.Name)
	}

	opts := Options{
		Task:       cfg.Env.Task,
		FrameSkip:  cfg.Env.ActionRepeat,
		FromPixels: cfg.Env.FromPixels,
		PixelsOnly: cfg.Env.PixelsOnly,
		ImageSize:  cfg.Env.ImageSize,
		NumPrevObs: cfg.NObsSteps - 1,
	}
	if opts.NumPrevObs < 0 {
		opts.NumPrevObs = 0
	}

	workers := make([]Environment, cfg.RolloutBatchSize)
	for i := range workers {
		o := opts
		o.Seed = cfg.Seed + int64(i)
		base, err := ctor(o)
		if err != nil {
			for _, w := range workers[:i] {
				w.Close()
			}
			return nil, err
		}

		wrapped := &transformedEnv{
			base:       base,
			transforms: []Transform{&StepCounter{MaxSteps: cfg.Env.EpisodeLength}},
		}
		if transform != nil {
			if chain, ok := transform.(Compose); ok {
				for _, t := range chain {
					wrapped.transforms = append(wrapped.transforms, t.Clone())
				}
			} else {
				wrapped.transforms = append(wrapped.transforms, transform.Clone())
			}
		}
		workers[i] = wrapped
	}

	return NewSerialEnv(workers), nil
}

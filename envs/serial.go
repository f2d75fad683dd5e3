package envs

import "fmt"

// SerialEnv runs a batch of independent environment instances in
// lock-step. Each call to Step advances every worker by one control step,
// in worker-index order, and returns the per-worker observations, rewards
// and done flags stacked in that same order. A worker that finished its
// episode is reset before its next step, so the batch keeps running.
type SerialEnv struct {
	envs       []Environment
	needsReset []bool
}

func NewSerialEnv(envs []Environment) *SerialEnv {
	return &SerialEnv{
		envs:       envs,
		needsReset: make([]bool, len(envs)),
	}
}

func (s *SerialEnv) NumEnvs() int {
	return len(s.envs)
}

func (s *SerialEnv) ActionSize() int {
	return s.envs[0].ActionSize()
}

func (s *SerialEnv) ObservationSize() int {
	return s.envs[0].ObservationSize()
}

// Reset resets every worker and returns the stacked first observations
func (s *SerialEnv) Reset() ([][]float64, error) {
	obs := make([][]float64, len(s.envs))
	for i, e := range s.envs {
		o, err := e.Reset()
		if err != nil {
			return nil, fmt.Errorf("reset worker %d: %w", i, err)
		}
		obs[i] = o
		s.needsReset[i] = false
	}
	return obs, nil
}

// Step takes one action per worker and advances all workers sequentially
func (s *SerialEnv) Step(actions [][]float64) ([][]float64, []float64, []bool, error) {
	if len(actions) != len(s.envs) {
		return nil, nil, nil, fmt.Errorf("expected %d actions, got %d", len(s.envs), len(actions))
	}

	obs := make([][]float64, len(s.envs))
	rewards := make([]float64, len(s.envs))
	dones := make([]bool, len(s.envs))
	for i, e := range s.envs {
		if s.needsReset[i] {
			if _, err := e.Reset(); err != nil {
				return nil, nil, nil, fmt.Errorf("reset worker %d: %w", i, err)
			}
			s.needsReset[i] = false
		}
		o, r, done, err := e.Step(actions[i])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("step worker %d: %w", i, err)
		}
		obs[i] = o
		rewards[i] = r
		dones[i] = done
		if done {
			s.needsReset[i] = true
		}
	}
	return obs, rewards, dones, nil
}

func (s *SerialEnv) Close() error {
	var firstErr error
	for _, e := range s.envs {
		if err := e.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

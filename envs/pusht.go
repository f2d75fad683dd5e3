package envs

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

func init() {
	Register("pusht", func(o Options) (Environment, error) {
		return NewPushtEnv(o)
	})
}

// PushtEnv is a planar push-block task: an agent pushes a block towards a
// fixed goal region. The observation is the agent position, the block
// position and the goal position. Pusht is not task-parameterized.
type PushtEnv struct {
	opts    Options
	rng     *rand.Rand
	stacker *obsStacker

	agent [2]float64
	block [2]float64
	goal  [2]float64
}

var _ Environment = &PushtEnv{}

func NewPushtEnv(opts Options) (*PushtEnv, error) {
	return &PushtEnv{
		opts:    opts,
		rng:     rand.New(rand.NewSource(uint64(opts.Seed))),
		stacker: newObsStacker(opts.NumPrevObs),
	}, nil
}

func (e *PushtEnv) Reset() ([]float64, error) {
	e.agent = [2]float64{e.rng.Float64() * 0.3, e.rng.Float64() * 0.3}
	e.block = [2]float64{0.3 + 0.3*e.rng.Float64(), 0.3 + 0.3*e.rng.Float64()}
	e.goal = [2]float64{0.8, 0.8}
	return e.stacker.Reset(e.observe()), nil
}

func (e *PushtEnv) Step(action []float64) ([]float64, float64, bool, error) {
	if len(action) != 2 {
		return nil, 0, false, fmt.Errorf("pusht: expected 2 action values, got %d", len(action))
	}
	reward := float64(0)
	done := false
	for s := 0; s < e.opts.frameSkip(); s++ {
		dx := clamp(action[0], -1, 1) * 0.05
		dy := clamp(action[1], -1, 1) * 0.05
		e.agent[0] = clamp(e.agent[0]+dx, 0, 1)
		e.agent[1] = clamp(e.agent[1]+dy, 0, 1)

		// the block moves along the agent's direction while in contact
		if math.Hypot(e.agent[0]-e.block[0], e.agent[1]-e.block[1]) < 0.08 {
			e.block[0] = clamp(e.block[0]+dx, 0, 1)
			e.block[1] = clamp(e.block[1]+dy, 0, 1)
		}

		dist := math.Hypot(e.block[0]-e.goal[0], e.block[1]-e.goal[1])
		reward += -dist
		if dist < 0.05 {
			done = true
			break
		}
	}
	return e.stacker.Push(e.observe()), reward, done, nil
}

func (e *PushtEnv) observe() []float64 {
	raw := []float64{e.agent[0], e.agent[1], e.block[0], e.block[1], e.goal[0], e.goal[1]}
	return buildObs(e.opts, raw, e.agent, e.block, e.goal)
}

func (e *PushtEnv) ActionSize() int {
	return 2
}

func (e *PushtEnv) ObservationSize() int {
	return (e.opts.NumPrevObs + 1) * obsSizePerStep(e.opts, 6)
}

func (e *PushtEnv) Close() error {
	return nil
}

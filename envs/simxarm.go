package envs

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

func init() {
	Register("simxarm", func(o Options) (Environment, error) {
		return NewSimxarmEnv(o)
	})
}

const simxarmJoints = 4

// SimxarmEnv is a planar model of a 4-joint arm reaching for a
// task-dependent target. The observation is the joint angles, the end
// effector position and the target position.
type SimxarmEnv struct {
	opts    Options
	rng     *rand.Rand
	stacker *obsStacker

	joints [simxarmJoints]float64
	target [2]float64
}

var _ Environment = &SimxarmEnv{}

func NewSimxarmEnv(opts Options) (*SimxarmEnv, error) {
	if opts.Task == "" {
		return nil, fmt.Errorf("simxarm: task is required")
	}
	return &SimxarmEnv{
		opts:    opts,
		rng:     rand.New(rand.NewSource(uint64(opts.Seed))),
		stacker: newObsStacker(opts.NumPrevObs),
	}, nil
}

func (e *SimxarmEnv) Reset() ([]float64, error) {
	for i := range e.joints {
		e.joints[i] = (e.rng.Float64() - 0.5) * 0.2
	}
	switch e.opts.Task {
	case "lift":
		e.target = [2]float64{0.3 + 0.4*e.rng.Float64(), 0.7 + 0.2*e.rng.Float64()}
	case "push":
		e.target = [2]float64{0.3 + 0.4*e.rng.Float64(), 0.1 + 0.2*e.rng.Float64()}
	default:
		e.target = [2]float64{e.rng.Float64(), e.rng.Float64()}
	}
	return e.stacker.Reset(e.observe()), nil
}

func (e *SimxarmEnv) Step(action []float64) ([]float64, float64, bool, error) {
	if len(action) != simxarmJoints {
		return nil, 0, false, fmt.Errorf("simxarm: expected %d action values, got %d", simxarmJoints, len(action))
	}
	reward := float64(0)
	done := false
	for s := 0; s < e.opts.frameSkip(); s++ {
		for i := range e.joints {
			e.joints[i] += clamp(action[i], -1, 1) * 0.05
		}
		dist := e.distanceToTarget()
		reward += -dist
		if dist < 0.05 {
			done = true
			break
		}
	}
	return e.stacker.Push(e.observe()), reward, done, nil
}

func (e *SimxarmEnv) effector() [2]float64 {
	// four links of length 0.25, angles accumulate along the chain
	x, y := 0.5, 0.0
	angle := float64(0)
	for _, j := range e.joints {
		angle += j
		x += 0.25 * math.Cos(angle+math.Pi/2)
		y += 0.25 * math.Sin(angle+math.Pi/2)
	}
	return [2]float64{clamp(x, 0, 1), clamp(y, 0, 1)}
}

func (e *SimxarmEnv) distanceToTarget() float64 {
	eff := e.effector()
	return math.Hypot(eff[0]-e.target[0], eff[1]-e.target[1])
}

func (e *SimxarmEnv) observe() []float64 {
	eff := e.effector()
	raw := make([]float64, 0, simxarmJoints+4)
	raw = append(raw, e.joints[:]...)
	raw = append(raw, eff[0], eff[1], e.target[0], e.target[1])
	return buildObs(e.opts, raw, eff, e.target)
}

func (e *SimxarmEnv) ActionSize() int {
	return simxarmJoints
}

func (e *SimxarmEnv) ObservationSize() int {
	return (e.opts.NumPrevObs + 1) * obsSizePerStep(e.opts, simxarmJoints+4)
}

func (e *SimxarmEnv) Close() error {
	return nil
}

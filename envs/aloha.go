package envs

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

func init() {
	Register("aloha", func(o Options) (Environment, error) {
		return NewAlohaEnv(o)
	})
}

const alohaJointsPerArm = 3

// AlohaEnv is a planar model of a bimanual manipulator: two 3-joint arms
// working on a shared object. The observation is both arms' joint angles,
// both end effector positions and the object position.
type AlohaEnv struct {
	opts    Options
	rng     *rand.Rand
	stacker *obsStacker

	left   [alohaJointsPerArm]float64
	right  [alohaJointsPerArm]float64
	object [2]float64
}

var _ Environment = &AlohaEnv{}

func NewAlohaEnv(opts Options) (*AlohaEnv, error) {
	if opts.Task == "" {
		return nil, fmt.Errorf("aloha: task is required")
	}
	return &AlohaEnv{
		opts:    opts,
		rng:     rand.New(rand.NewSource(uint64(opts.Seed))),
		stacker: newObsStacker(opts.NumPrevObs),
	}, nil
}

func (e *AlohaEnv) Reset() ([]float64, error) {
	for i := 0; i < alohaJointsPerArm; i++ {
		e.left[i] = (e.rng.Float64() - 0.5) * 0.2
		e.right[i] = (e.rng.Float64() - 0.5) * 0.2
	}
	switch e.opts.Task {
	case "transfer":
		e.object = [2]float64{0.2 + 0.1*e.rng.Float64(), 0.4 + 0.2*e.rng.Float64()}
	default: // insertion and other tasks start with a centered object
		e.object = [2]float64{0.45 + 0.1*e.rng.Float64(), 0.45 + 0.1*e.rng.Float64()}
	}
	return e.stacker.Reset(e.observe()), nil
}

func (e *AlohaEnv) Step(action []float64) ([]float64, float64, bool, error) {
	if len(action) != 2*alohaJointsPerArm {
		return nil, 0, false, fmt.Errorf("aloha: expected %d action values, got %d", 2*alohaJointsPerArm, len(action))
	}
	reward := float64(0)
	done := false
	for s := 0; s < e.opts.frameSkip(); s++ {
		for i := 0; i < alohaJointsPerArm; i++ {
			e.left[i] += clamp(action[i], -1, 1) * 0.05
			e.right[i] += clamp(action[alohaJointsPerArm+i], -1, 1) * 0.05
		}
		dist := e.distanceToObject()
		reward += -dist
		if dist < 0.05 {
			done = true
			break
		}
	}
	return e.stacker.Push(e.observe()), reward, done, nil
}

// forward kinematics for one arm mounted at base, three links of length 0.2
func armEffector(base [2]float64, joints [alohaJointsPerArm]float64) [2]float64 {
	x, y := base[0], base[1]
	angle := float64(0)
	for _, j := range joints {
		angle += j
		x += 0.2 * math.Cos(angle+math.Pi/2)
		y += 0.2 * math.Sin(angle+math.Pi/2)
	}
	return [2]float64{clamp(x, 0, 1), clamp(y, 0, 1)}
}

func (e *AlohaEnv) distanceToObject() float64 {
	l := armEffector([2]float64{0.2, 0}, e.left)
	r := armEffector([2]float64{0.8, 0}, e.right)
	dl := math.Hypot(l[0]-e.object[0], l[1]-e.object[1])
	dr := math.Hypot(r[0]-e.object[0], r[1]-e.object[1])
	return (dl + dr) / 2
}

func (e *AlohaEnv) observe() []float64 {
	l := armEffector([2]float64{0.2, 0}, e.left)
	r := armEffector([2]float64{0.8, 0}, e.right)
	raw := make([]float64, 0, 2*alohaJointsPerArm+6)
	raw = append(raw, e.left[:]...)
	raw = append(raw, e.right[:]...)
	raw = append(raw, l[0], l[1], r[0], r[1], e.object[0], e.object[1])
	return buildObs(e.opts, raw, l, r, e.object)
}

func (e *AlohaEnv) ActionSize() int {
	return 2 * alohaJointsPerArm
}

func (e *AlohaEnv) ObservationSize() int {
	return (e.opts.NumPrevObs + 1) * obsSizePerStep(e.opts, 2*alohaJointsPerArm+6)
}

func (e *AlohaEnv) Close() error {
	return nil
}

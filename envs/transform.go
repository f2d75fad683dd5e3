package envs

// Transform mutates the observations and rewards coming out of an
// environment. Transforms may carry state across steps (e.g. a step
// counter), so every worker of a batched environment must own its own
// clone. Clone returns an independent copy with freshly reset state.
type Transform interface {
	Reset(obs []float64) []float64
	Step(obs []float64, reward float64, done bool) ([]float64, float64, bool)
	Clone() Transform
}

// Compose is an ordered chain of transforms, applied first to last.
// Compose itself satisfies Transform.
type Compose []Transform

func (c Compose) Reset(obs []float64) []float64 {
	for _, t := range c {
		obs = t.Reset(obs)
	}
	return obs
}

func (c Compose) Step(obs []float64, reward float64, done bool) ([]float64, float64, bool) {
	for _, t := range c {
		obs, reward, done = t.Step(obs, reward, done)
	}
	return obs, reward, done
}

func (c Compose) Clone() Transform {
	cloned := make(Compose, len(c))
	for i, t := range c {
		cloned[i] = t.Clone()
	}
	return cloned
}

// StepCounter ends episodes after MaxSteps control steps.
// A MaxSteps of zero disables the cap.
type StepCounter struct {
	MaxSteps int

	steps int
}

func (s *StepCounter) Reset(obs []float64) []float64 {
	s.steps = 0
	return obs
}

func (s *StepCounter) Step(obs []float64, reward float64, done bool) ([]float64, float64, bool) {
	s.steps++
	if s.MaxSteps > 0 && s.steps >= s.MaxSteps {
		done = true
	}
	return obs, reward, done
}

func (s *StepCounter) Clone() Transform {
	return &StepCounter{MaxSteps: s.MaxSteps}
}

// transformedEnv wraps a base environment and runs every observation and
// reward through an owned chain of transforms
type transformedEnv struct {
	base       Environment
	transforms []Transform
}

var _ Environment = &transformedEnv{}

func (e *transformedEnv) Reset() ([]float64, error) {
	obs, err := e.base.Reset()
	if err != nil {
		return nil, err
	}
	for _, t := range e.transforms {
		obs = t.Reset(obs)
	}
	return obs, nil
}

func (e *transformedEnv) Step(action []float64) ([]float64, float64, bool, error) {
	obs, reward, done, err := e.base.Step(action)
	if err != nil {
		return nil, 0, false, err
	}
	for _, t := range e.transforms {
		obs, reward, done = t.Step(obs, reward, done)
	}
	return obs, reward, done, nil
}

func (e *transformedEnv) ActionSize() int {
	return e.base.ActionSize()
}

func (e *transformedEnv) ObservationSize() int {
	return e.base.ObservationSize()
}

func (e *transformedEnv) Close() error {
	return e.base.Close()
}

package envs

import "testing"

// scriptedEnv emits its worker id in every observation and finishes after
// doneAfter steps
type scriptedEnv struct {
	id        float64
	doneAfter int

	steps  int
	resets int
}

var _ Environment = &scriptedEnv{}

func (s *scriptedEnv) Reset() ([]float64, error) {
	s.steps = 0
	s.resets++
	return []float64{s.id, 0}, nil
}

func (s *scriptedEnv) Step(action []float64) ([]float64, float64, bool, error) {
	s.steps++
	done := s.doneAfter > 0 && s.steps >= s.doneAfter
	return []float64{s.id, float64(s.steps)}, s.id, done, nil
}

func (s *scriptedEnv) ActionSize() int {
	return 1
}

func (s *scriptedEnv) ObservationSize() int {
	return 2
}

func (s *scriptedEnv) Close() error {
	return nil
}

func TestSerialEnvStacksInWorkerOrder(t *testing.T) {
	env := NewSerialEnv([]Environment{
		&scriptedEnv{id: 0},
		&scriptedEnv{id: 1},
		&scriptedEnv{id: 2},
	})

	obs, err := env.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	for w := range obs {
		if obs[w][0] != float64(w) {
			t.Errorf("reset observation %d came from worker %v", w, obs[w][0])
		}
	}

	actions := [][]float64{{0}, {0}, {0}}
	obs, rewards, dones, err := env.Step(actions)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	for w := range obs {
		if obs[w][0] != float64(w) {
			t.Errorf("step observation %d came from worker %v", w, obs[w][0])
		}
		if rewards[w] != float64(w) {
			t.Errorf("reward %d is %v, expected %v", w, rewards[w], float64(w))
		}
		if dones[w] {
			t.Errorf("worker %d done too early", w)
		}
	}
}

func TestSerialEnvActionCountMismatch(t *testing.T) {
	env := NewSerialEnv([]Environment{&scriptedEnv{}, &scriptedEnv{}})
	if _, _, _, err := env.Step([][]float64{{0}}); err == nil {
		t.Errorf("expected an error for a short action batch")
	}
}

func TestSerialEnvAutoResetsFinishedWorkers(t *testing.T) {
	fast := &scriptedEnv{id: 0, doneAfter: 1}
	slow := &scriptedEnv{id: 1, doneAfter: 3}
	env := NewSerialEnv([]Environment{fast, slow})

	if _, err := env.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	actions := [][]float64{{0}, {0}}

	_, _, dones, err := env.Step(actions)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !dones[0] || dones[1] {
		t.Fatalf("expected only worker 0 done, got %v", dones)
	}

	// next step resets worker 0 before stepping it, worker 1 keeps going
	if _, _, _, err := env.Step(actions); err != nil {
		t.Fatalf("step: %v", err)
	}
	if fast.resets != 2 {
		t.Errorf("worker 0 reset %d times, expected 2", fast.resets)
	}
	if slow.resets != 1 {
		t.Errorf("worker 1 reset %d times, expected 1", slow.resets)
	}
}

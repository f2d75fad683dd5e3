package envs

import "testing"

func TestStepCounterCapsEpisode(t *testing.T) {
	cfg := pushtConfig(1, 7)
	cfg.Env.EpisodeLength = 5
	env, err := MakeEnv(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer env.Close()

	if _, err := env.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	actions := [][]float64{{0, 0}}
	for step := 1; step <= 5; step++ {
		_, _, dones, err := env.Step(actions)
		if err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		if step < 5 && dones[0] {
			t.Fatalf("episode ended at step %d, expected to run to 5", step)
		}
		if step == 5 && !dones[0] {
			t.Fatalf("episode did not end at the step cap")
		}
	}
}

func TestStepCounterCloneResetsState(t *testing.T) {
	counter := &StepCounter{MaxSteps: 2}
	counter.Step(nil, 0, false)

	clone := counter.Clone().(*StepCounter)
	if clone.steps != 0 {
		t.Errorf("clone inherited %d steps, expected 0", clone.steps)
	}
	if clone.MaxSteps != 2 {
		t.Errorf("clone has MaxSteps %d, expected 2", clone.MaxSteps)
	}
}

func TestComposeCloneIsDeep(t *testing.T) {
	chain := Compose{&countingTransform{}, &StepCounter{MaxSteps: 10}}
	clone := chain.Clone().(Compose)

	if len(clone) != len(chain) {
		t.Fatalf("clone has %d transforms, expected %d", len(clone), len(chain))
	}
	for i := range chain {
		if clone[i] == chain[i] {
			t.Errorf("clone shares transform %d with the original", i)
		}
	}

	clone[0].(*countingTransform).Step(nil, 0, false)
	if chain[0].(*countingTransform).steps != 0 {
		t.Errorf("stepping the clone mutated the original chain")
	}
}

func TestObsStackerDepth(t *testing.T) {
	cfg := pushtConfig(1, 3)
	cfg.NObsSteps = 3
	env, err := MakeEnv(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer env.Close()

	obs, err := env.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	// pusht raw state has 6 values, stacked 3 deep
	if len(obs[0]) != 18 {
		t.Fatalf("stacked observation has %d values, expected 18", len(obs[0]))
	}
	if env.ObservationSize() != 18 {
		t.Errorf("ObservationSize is %d, expected 18", env.ObservationSize())
	}
}

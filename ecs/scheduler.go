package ecs

const defaultMaxSubSteps = 5

// Scheduler advances a world by a time delta: every update system runs once,
// then physics systems run at a fixed step for as many whole steps as the
// accumulated time allows.
type Scheduler struct {
	update  []System
	physics []System

	step        float64
	accumulator float64
	maxSubSteps int
}

func NewScheduler(step float64) *Scheduler {
	if step <= 0 {
		step = 1.0 / 60.0
	}
	return &Scheduler{step: step, maxSubSteps: defaultMaxSubSteps}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.update = append(s.update, system)
}

func (s *Scheduler) AddPhysics(system System) {
	if system == nil {
		return
	}
	s.physics = append(s.physics, system)
}

// Step returns the fixed physics step in seconds.
func (s *Scheduler) Step() float64 {
	return s.step
}

// Advance runs one frame of dt seconds and returns the number of physics
// sub-steps taken. Negative deltas are treated as zero.
func (s *Scheduler) Advance(w *World, dt float64) int {
	if w == nil {
		return 0
	}
	if dt < 0 {
		dt = 0
	}

	w.delta = dt
	for _, system := range s.update {
		system.Update(w)
	}
	w.elapsed += dt

	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.step && steps < s.maxSubSteps {
		w.delta = s.step
		for _, system := range s.physics {
			system.Update(w)
		}
		s.accumulator -= s.step
		steps++
	}
	if steps == s.maxSubSteps && s.accumulator >= s.step {
		// Drop the backlog rather than spiral after a long stall.
		s.accumulator = 0
	}
	w.delta = dt
	return steps
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.update)+len(s.physics))
	systems = append(systems, s.update...)
	return append(systems, s.physics...)
}

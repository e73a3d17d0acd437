package ecs

import (
	"errors"
	"fmt"
)

// SystemFunc reads the world and proposes mutations through cmd.
type SystemFunc func(w *World, cmd *CommandBuffer) error

// System is a named SystemFunc.
type System struct {
	Name string
	Run  SystemFunc
}

// Stage is a set of systems run against one snapshot, followed by a barrier
// that flushes their commands.
type Stage struct {
	Name    string
	Systems []System
}

// Schedule runs its stages strictly in declared order.
type Schedule struct {
	name   string
	stages []Stage
	cmd    *CommandBuffer
}

// StageError reports the system that aborted a schedule run.
type StageError struct {
	Schedule string
	Stage    string
	System   string
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("schedule %s: stage %s: system %s: %v", e.Schedule, e.Stage, e.System, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ErrSystemPanic wraps a panic recovered from a system.
var ErrSystemPanic = errors.New("system panicked")

// NewSchedule starts an empty schedule.
func NewSchedule(name string) *Schedule {
	return &Schedule{name: name, cmd: NewCommandBuffer()}
}

// Stage appends a stage made of systems.
func (s *Schedule) Stage(name string, systems ...System) *Schedule {
	s.stages = append(s.stages, Stage{Name: name, Systems: systems})
	return s
}

// Name returns the schedule name.
func (s *Schedule) Name() string { return s.name }

// Stages returns the declared stages.
func (s *Schedule) Stages() []Stage { return s.stages }

// Run executes every stage against w. The first failing system aborts the
// remaining stages; commands queued by the failing stage are discarded while
// earlier stages stay applied.
func (s *Schedule) Run(w *World) error {
	for _, stage := range s.stages {
		for _, sys := range stage.Systems {
			if err := runSystem(sys, w, s.cmd); err != nil {
				s.cmd.Reset()
				return &StageError{Schedule: s.name, Stage: stage.Name, System: sys.Name, Err: err}
			}
		}
		s.cmd.Flush(w)
	}
	return nil
}

func runSystem(sys System, w *World, cmd *CommandBuffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSystemPanic, r)
		}
	}()
	return sys.Run(w, cmd)
}

// Package plan provides types and functions for loading and validating
// action plan files: YAML documents listing the actions to schedule for a
// demo.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/demo-actions/demo-actions/internal/actions"
)

// Plan is a demo path plus the steps to schedule for it, in order.
type Plan struct {
	Demo  string `yaml:"demo"`
	Steps []Step `yaml:"actions"`
}

// Validate checks that the plan is valid.
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Demo) == "" {
		return errors.New("demo must be non-empty")
	}
	if len(p.Steps) == 0 {
		return errors.New("actions must contain at least one step")
	}
	for i, step := range p.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Apply appends every step to b in plan order.
func (p *Plan) Apply(b *actions.Builder) *actions.Builder {
	for _, step := range p.Steps {
		step.Apply(b)
	}
	return b
}

// Build returns a builder for the plan's demo with all steps applied.
func (p *Plan) Build() *actions.Builder {
	return p.Apply(actions.New(p.Demo))
}

// Step is a single entry of a plan. Exactly one field must be set.
// Ticks are not range checked: the builder clamps them.
type Step struct {
	SkipAhead *SkipAhead `yaml:"skip_ahead,omitempty"`
	Spectate  *Spectate  `yaml:"spectate,omitempty"`
	Pause     *int       `yaml:"pause,omitempty"`
	Stop      *int       `yaml:"stop,omitempty"`
	Exec      *Exec      `yaml:"exec,omitempty"`
}

// Validate checks that exactly one action kind is set and that it is valid.
func (s *Step) Validate() error {
	kinds := s.kinds()
	switch len(kinds) {
	case 0:
		return errors.New("one of skip_ahead, spectate, pause, stop, exec is required")
	case 1:
	default:
		return fmt.Errorf("%s are mutually exclusive", strings.Join(kinds, " and "))
	}

	if s.Spectate != nil {
		if err := s.Spectate.Validate(); err != nil {
			return fmt.Errorf("spectate: %w", err)
		}
	}
	if s.Exec != nil {
		if err := s.Exec.Validate(); err != nil {
			return fmt.Errorf("exec: %w", err)
		}
	}
	return nil
}

// Kind returns the name of the action the step schedules, or "" when the
// step is empty.
func (s *Step) Kind() string {
	kinds := s.kinds()
	if len(kinds) == 0 {
		return ""
	}
	return kinds[0]
}

// Apply appends the step's actions to b.
func (s *Step) Apply(b *actions.Builder) *actions.Builder {
	switch {
	case s.SkipAhead != nil:
		b.SkipAhead(s.SkipAhead.From, s.SkipAhead.To)
	case s.Spectate != nil:
		b.SpectatePlayer(s.Spectate.Tick, s.Spectate.Player)
	case s.Pause != nil:
		b.PausePlayback(*s.Pause)
	case s.Stop != nil:
		b.StopPlayback(*s.Stop)
	case s.Exec != nil:
		b.Command(s.Exec.Tick, s.Exec.Cmd)
	}
	return b
}

func (s *Step) kinds() []string {
	var kinds []string
	if s.SkipAhead != nil {
		kinds = append(kinds, "skip_ahead")
	}
	if s.Spectate != nil {
		kinds = append(kinds, "spectate")
	}
	if s.Pause != nil {
		kinds = append(kinds, "pause")
	}
	if s.Stop != nil {
		kinds = append(kinds, "stop")
	}
	if s.Exec != nil {
		kinds = append(kinds, "exec")
	}
	return kinds
}

// SkipAhead jumps playback from one tick to another.
type SkipAhead struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Spectate focuses the camera on a player for a moment.
type Spectate struct {
	Tick   int    `yaml:"tick"`
	Player string `yaml:"player"`
}

// Validate checks that the player is set.
func (s *Spectate) Validate() error {
	if strings.TrimSpace(s.Player) == "" {
		return errors.New("player must be non-empty")
	}
	return nil
}

// Exec runs a raw console command.
type Exec struct {
	Tick int    `yaml:"tick"`
	Cmd  string `yaml:"cmd"`
}

// Validate checks that the command is set.
func (e *Exec) Validate() error {
	if strings.TrimSpace(e.Cmd) == "" {
		return errors.New("cmd must be non-empty")
	}
	return nil
}

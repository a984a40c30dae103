// Package input provides a scripted input source: a sequence of held steps that the
// controller polls once per tick. It stands in for a device poller in headless runs and
// tests.
package input

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Step is one held input state. Jump and ToggleCapture are edge events and fire only on
// the first tick of the step; the rest apply on every tick it is held.
type Step struct {
	Axes          [2]float32 `yaml:"axes"`
	Sprint        bool       `yaml:"sprint"`
	Jump          bool       `yaml:"jump"`
	Mouse         [2]float32 `yaml:"mouse"`
	ToggleCapture bool       `yaml:"toggle_capture"`
	// Ticks is how many ticks the step is held. Zero means one.
	Ticks int `yaml:"ticks"`
}

func (s Step) length() int {
	if s.Ticks <= 0 {
		return 1
	}
	return s.Ticks
}

type scriptFile struct {
	Steps []Step `yaml:"steps"`
}

// Script replays steps tick by tick. Before the first Advance and after the last step it
// reports no input.
type Script struct {
	steps    []Step
	step     int
	held     int
	captured bool
}

func NewScript(steps ...Step) *Script {
	return &Script{steps: steps, step: -1}
}

func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	return NewScript(f.Steps...), nil
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

// Advance moves to the next tick. It returns false once the script is exhausted.
func (s *Script) Advance() bool {
	if s.step >= len(s.steps) {
		return false
	}
	if s.step >= 0 {
		s.held++
		if s.held < s.steps[s.step].length() {
			return true
		}
	}
	s.step++
	s.held = 0
	return s.step < len(s.steps)
}

func (s *Script) Done() bool {
	return s.step >= len(s.steps)
}

// TotalTicks is the number of ticks the whole script spans.
func (s *Script) TotalTicks() int {
	n := 0
	for _, st := range s.steps {
		n += st.length()
	}
	return n
}

func (s *Script) current() (Step, bool) {
	if s.step < 0 || s.step >= len(s.steps) {
		return Step{}, false
	}
	return s.steps[s.step], true
}

func (s *Script) MovementAxes() mgl32.Vec2 {
	st, _ := s.current()
	return mgl32.Vec2{mgl32.Clamp(st.Axes[0], -1, 1), mgl32.Clamp(st.Axes[1], -1, 1)}
}

func (s *Script) SprintHeld() bool {
	st, _ := s.current()
	return st.Sprint
}

func (s *Script) JumpJustPressed() bool {
	st, ok := s.current()
	return ok && st.Jump && s.held == 0
}

func (s *Script) MouseDelta() mgl32.Vec2 {
	st, _ := s.current()
	return mgl32.Vec2{st.Mouse[0], st.Mouse[1]}
}

func (s *Script) ToggleCaptureRequested() bool {
	st, ok := s.current()
	return ok && st.ToggleCapture && s.held == 0
}

// SetMouseCaptured records the cursor mode the controller asked for.
func (s *Script) SetMouseCaptured(captured bool) {
	s.captured = captured
}

func (s *Script) MouseCaptured() bool {
	return s.captured
}

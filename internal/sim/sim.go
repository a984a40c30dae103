// Package sim runs a fixed-step session: a voxel world, one physics body, an input source
// and a controller ticking them together.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/animation"
	"github.com/Versifine/stride/internal/camera"
	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/controller"
	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/input"
	"github.com/Versifine/stride/internal/locomotion"
	"github.com/Versifine/stride/internal/physics"
	"github.com/Versifine/stride/internal/world"
)

// floorLevel is the voxel layer the floor occupies; its top face is y = 0.
const floorLevel = -1

// Source is an input device stepped once per tick. Advance reports false once the source
// has nothing more to play.
type Source interface {
	controller.Input
	Advance() bool
}

// DefaultClips is the clip set loaded when nothing else is configured. It has no jump clip,
// so airborne frames fall back to idle.
func DefaultClips() []animation.Clip {
	return []animation.Clip{
		{Name: animation.ClipIdle, Length: 2, Loop: true},
		{Name: animation.ClipWalk, Length: 1, Loop: true},
		{Name: animation.ClipRun, Length: 0.7, Loop: true},
	}
}

// DefaultScript walks, sprints, jumps mid-sprint, strafes while turning and then stops.
func DefaultScript() *input.Script {
	return input.NewScript(
		input.Step{Ticks: 30},
		input.Step{Axes: [2]float32{0, 1}, Ticks: 60},
		input.Step{Axes: [2]float32{0, 1}, Sprint: true, Ticks: 60},
		input.Step{Axes: [2]float32{0, 1}, Sprint: true, Jump: true, Ticks: 60},
		input.Step{Axes: [2]float32{1, 0}, Mouse: [2]float32{5, 0}, Ticks: 60},
		input.Step{Ticks: 60},
	)
}

// BuildWorld lays the configured floor and boxes into a fresh grid.
func BuildWorld(cfg config.WorldConfig) *world.Grid {
	g := world.NewGrid()
	r := cfg.FloorRadius
	g.AddFloor(-r, r, -r, r, floorLevel)
	for _, b := range cfg.Boxes {
		g.AddBox(
			world.BlockPos{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]},
			world.BlockPos{X: b.Max[0], Y: b.Max[1], Z: b.Max[2]},
		)
	}
	return g
}

type Option func(*Sim)

func WithLogger(log *slog.Logger) Option {
	return func(s *Sim) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBus publishes jump, land and animation state events to bus.
func WithBus(bus *event.Bus) Option {
	return func(s *Sim) { s.bus = bus }
}

// WithObserver calls fn on the simulation goroutine after every tick.
func WithObserver(fn func(*Sim)) Option {
	return func(s *Sim) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

type Sim struct {
	cfg       *config.Config
	log       *slog.Logger
	bus       *event.Bus
	observers []func(*Sim)
	grid      *world.Grid
	body      *physics.Body
	source    Source
	rig       *camera.Rig
	lib       *animation.Library
	ctl       *controller.Controller
}

// Summary describes a finished run.
type Summary struct {
	Ticks    int
	Start    mgl64.Vec3
	End      mgl64.Vec3
	Distance float64
	// MaxSpeed is the highest horizontal speed seen.
	MaxSpeed float32
	// Jumps counts airborne entries, walking off a ledge included.
	Jumps int
	Plays int
	Final controller.Snapshot
}

// New wires a session. A nil source runs with no input.
func New(cfg *config.Config, source Source, opts ...Option) (*Sim, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", config.ErrInvalidSimulation)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		source = input.NewScript()
	}

	s := &Sim{
		cfg:    cfg,
		log:    slog.Default(),
		grid:   BuildWorld(cfg.Simulation.World),
		source: source,
		rig:    camera.NewRig(mgl32.Vec3{0, cfg.Simulation.EyeHeight, 0}, cfg.Camera.BaseFov),
		lib:    animation.NewLibrary(DefaultClips()...),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.body = physics.NewBody(mgl64.Vec3(cfg.Simulation.Spawn), s.grid)

	ctl, err := controller.New(cfg.Config, s.body, s.source, s.rig, s.lib, controller.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("create controller: %w", err)
	}
	s.ctl = ctl
	return s, nil
}

func (s *Sim) Controller() *controller.Controller { return s.ctl }

func (s *Sim) Body() *physics.Body { return s.body }

func (s *Sim) Camera() *camera.Rig { return s.rig }

func (s *Sim) World() *world.Grid { return s.grid }

func (s *Sim) Snapshot() controller.Snapshot { return s.ctl.Snapshot() }

func (s *Sim) Position() mgl64.Vec3 { return s.body.Position() }

// Teleport moves the body without sweeping. Only call it from an observer.
func (s *Sim) Teleport(pos mgl64.Vec3) {
	s.body.SetPosition(pos)
	s.log.Info("teleported", "position", pos, "grounded", s.body.IsGrounded())
}

// Run advances the session until the configured duration elapses, the source runs dry
// (zero duration only) or ctx is done. The summary covers the ticks that ran even when an
// error is returned.
func (s *Sim) Run(ctx context.Context) (Summary, error) {
	dt := s.cfg.Simulation.TickInterval()
	total := s.cfg.Simulation.Ticks()
	sum := Summary{Start: s.body.Position()}
	defer s.ctl.Deactivate()
	defer s.bus.Wait()

	var pace <-chan time.Time
	if s.cfg.Simulation.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(s.cfg.Simulation.TickRate))
		defer ticker.Stop()
		pace = ticker.C
	}

	prev := s.ctl.Snapshot()
	airtime := 0
	for total == 0 || sum.Ticks < total {
		if pace != nil {
			select {
			case <-ctx.Done():
			case <-pace:
			}
		}
		if err := ctx.Err(); err != nil {
			s.finish(&sum)
			return sum, err
		}

		before := s.body.Position()
		if !s.source.Advance() && total == 0 {
			break
		}
		if err := s.ctl.Tick(dt); err != nil {
			s.finish(&sum)
			return sum, fmt.Errorf("tick %d: %w", sum.Ticks, err)
		}
		s.lib.Advance(dt)
		sum.Ticks++

		after := s.body.Position()
		step := after.Sub(before)
		sum.Distance += mgl64.Vec2{step.X(), step.Z()}.Len()

		snap := s.ctl.Snapshot()
		if speed := locomotion.Horizontal(snap.Kinematic.Velocity).Len(); speed > sum.MaxSpeed {
			sum.MaxSpeed = speed
		}
		switch {
		case snap.Phase == animation.Airborne && prev.Phase == animation.Grounded:
			sum.Jumps++
			airtime = 0
			s.bus.Publish(event.EventJump, event.JumpEvent{Tick: sum.Ticks, Position: before})
		case snap.Phase == animation.Airborne:
			airtime++
		case prev.Phase == animation.Airborne:
			s.bus.Publish(event.EventLand, event.LandEvent{
				Tick:      sum.Ticks,
				Position:  after,
				FallSpeed: -prev.Kinematic.Velocity.Y(),
				Airtime:   airtime + 1,
			})
		}
		if snap.Animation != prev.Animation {
			s.bus.Publish(event.EventAnimationState, event.AnimationStateEvent{
				Tick: sum.Ticks,
				From: prev.Animation,
				To:   snap.Animation,
				Clip: snap.Clip,
			})
		}
		prev = snap

		for _, fn := range s.observers {
			fn(s)
		}
	}
	s.finish(&sum)
	return sum, nil
}

func (s *Sim) finish(sum *Summary) {
	sum.End = s.body.Position()
	sum.Plays = s.lib.PlayCount()
	sum.Final = s.ctl.Snapshot()
}

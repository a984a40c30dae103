package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/debug"
	"github.com/Versifine/stride/internal/event"
	"github.com/Versifine/stride/internal/input"
	"github.com/Versifine/stride/internal/logger"
	"github.com/Versifine/stride/internal/sim"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config")
	scriptPath := flag.String("script", "", "input script; overrides simulation.script")
	interactive := flag.Bool("interactive", false, "drive the character from the terminal in real time")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	out, closeLog, err := logger.OpenFile(cfg.Logging.File)
	if err != nil {
		slog.Error("Failed to open log file", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: out,
	})
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := event.NewBus()
	opts := []sim.Option{sim.WithLogger(log), sim.WithBus(bus)}

	var source sim.Source
	if *interactive {
		cfg.Simulation.Realtime = true
		cfg.Simulation.Duration = 0

		keys := debug.NewKeyboard(debug.DefaultPulseTicks)
		console := debug.NewConsole(keys, os.Stdout, cancel)
		console.Subscribe(bus)
		restore, err := console.Start(ctx, os.Stdin)
		if err != nil {
			log.Error("Failed to start console", "error", err)
			os.Exit(1)
		}
		defer restore()
		opts = append(opts, sim.WithObserver(func(s *sim.Sim) { console.Observe(s) }))
		source = keys
	} else {
		script, err := loadScript(*scriptPath, cfg.Simulation.Script)
		if err != nil {
			log.Error("Failed to load input script", "error", err)
			os.Exit(1)
		}
		logEvents(bus, log)
		log.Info("Input script loaded", "ticks", script.TotalTicks())
		source = script
	}

	s, err := sim.New(cfg, source, opts...)
	if err != nil {
		log.Error("Failed to start simulation", "error", err)
		os.Exit(1)
	}
	log.Info("Simulation started",
		"tick_rate", cfg.Simulation.TickRate,
		"duration", cfg.Simulation.Duration,
		"realtime", cfg.Simulation.Realtime,
	)

	sum, err := s.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Simulation failed", "ticks", sum.Ticks, "error", err)
		os.Exit(1)
	}
	log.Info("Simulation finished",
		"ticks", sum.Ticks,
		"interrupted", err != nil,
		"end", sum.End,
		"distance", sum.Distance,
		"max_speed", sum.MaxSpeed,
		"jumps", sum.Jumps,
		"clip_plays", sum.Plays,
		"state", sum.Final.Animation,
		"grounded", sum.Final.Kinematic.Grounded,
	)
}

// loadScript prefers the flag, then the config entry, then the built-in scenario.
func loadScript(flagPath, cfgPath string) (*input.Script, error) {
	switch {
	case flagPath != "":
		return input.LoadScript(flagPath)
	case cfgPath != "":
		return input.LoadScript(cfgPath)
	default:
		return sim.DefaultScript(), nil
	}
}

func logEvents(bus *event.Bus, log *slog.Logger) {
	bus.Subscribe(event.EventJump, func(raw any) {
		if evt, ok := raw.(event.JumpEvent); ok {
			log.Info("Left the ground", "tick", evt.Tick, "position", evt.Position)
		}
	})
	bus.Subscribe(event.EventLand, func(raw any) {
		if evt, ok := raw.(event.LandEvent); ok {
			log.Info("Landed", "tick", evt.Tick, "airtime_ticks", evt.Airtime, "fall_speed", evt.FallSpeed)
		}
	})
}

// Package engine provides the real-time loop that drives the turn-based
// core: one tick per sim-minute, with a day-boundary callback for the
// agency's daily tick.
package engine

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	// TicksPerDay is the number of sim-minutes in a day.
	TicksPerDay = 24 * 60
	// dayStartMinutes offsets the clock so day 1 opens at 08:00.
	dayStartMinutes = 8 * 60
)

// Engine drives the simulation forward. The core itself is turn-based;
// the engine only decides when turns happen.
type Engine struct {
	Tick     uint64        // monotonic tick counter, never resets
	Speed    float64       // multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // base tick interval
	Running  bool

	OnTick func(tick uint64) // every tick (sim-minute)
	OnDay  func(tick uint64) // every day boundary
}

// NewEngine creates an engine with default settings.
func NewEngine() *Engine {
	return &Engine{
		Speed:    1.0,
		Interval: time.Second,
	}
}

// Run starts the loop. Blocks until Stop is called.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("simulation engine started", "tick", e.Tick, "speed", e.Speed)

	for e.Running {
		if e.Speed <= 0 {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		e.step()

		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("simulation engine stopped", "tick", e.Tick)
}

// Stop halts the loop after the current tick.
func (e *Engine) Stop() {
	e.Running = false
}

// Advance steps the engine n ticks synchronously, without pacing. Used for
// headless fast-forward.
func (e *Engine) Advance(n uint64) {
	for i := uint64(0); i < n; i++ {
		e.step()
	}
}

// step advances one tick and fires due callbacks.
func (e *Engine) step() {
	e.Tick++

	if e.OnTick != nil {
		e.OnTick(e.Tick)
	}

	if e.Tick%TicksPerDay == 0 && e.OnDay != nil {
		e.OnDay(e.Tick)
	}
}

// SimTime renders a tick as a human-readable clock string. Day 1 opens at
// 08:00.
func SimTime(tick uint64) string {
	day := tick/TicksPerDay + 1
	minuteOfDay := (tick + dayStartMinutes) % TicksPerDay
	return fmt.Sprintf("Day %d, %d:%02d", day, minuteOfDay/60, minuteOfDay%60)
}

package sim

import (
	"fmt"
)

// TicksPerSecond fixes the tick granularity: one tick is one microsecond of
// logical time.
const TicksPerSecond int64 = 1_000_000

const (
	// DefaultLatencyGoalTicks is the dispatcher's admission window when none
	// is configured (500us).
	DefaultLatencyGoalTicks int64 = 500

	// DefaultGoalFactor sizes the admission limit relative to the goal.
	DefaultGoalFactor = 1.5

	// DefaultCapFactor is the jitter ceiling of the capdelay process.
	DefaultCapFactor = 3.0

	// DefaultQuantumTicks is the driver's step size. One tick keeps the step
	// fine relative to any per-second rate; raising it trades accuracy for
	// speed and must stay small relative to the fastest configured process
	// period.
	DefaultQuantumTicks int64 = 1
)

// Config is the full, immutable configuration of one run.
type Config struct {
	HorizonSeconds    float64 // simulated duration (must be > 0)
	ProducerProcess   string  // inter-arrival process kind
	ProducerRate      float64 // requests per second
	DispatcherProcess string  // dispatch-attempt cadence kind (its period is the latency goal)
	ConsumerProcess   string  // service-time process kind
	ConsumerRate      float64 // requests per second
	LatencyGoalTicks  int64   // admission window in ticks (default 500)
	GoalFactor        float64 // concurrency multiplier on the goal (default 1.5)
	CapFactor         float64 // jitter ceiling for capdelay processes (default 3.0)
	QuantumTicks      int64   // clock step (default 1)
	Seed              int64   // master seed; 0 = derive from the wall clock
	Verbose           bool    // per-second progress lines
}

// ApplyDefaults fills zero-valued optional fields.
func (c *Config) ApplyDefaults() {
	if c.LatencyGoalTicks == 0 {
		c.LatencyGoalTicks = DefaultLatencyGoalTicks
	}
	if c.GoalFactor == 0 {
		c.GoalFactor = DefaultGoalFactor
	}
	if c.CapFactor == 0 {
		c.CapFactor = DefaultCapFactor
	}
	if c.QuantumTicks == 0 {
		c.QuantumTicks = DefaultQuantumTicks
	}
}

// Validate rejects configurations that cannot produce a meaningful run.
// Called before construction so a bad setup never yields a partial report.
func (c *Config) Validate() error {
	if c.HorizonSeconds <= 0 {
		return fmt.Errorf("horizon must be positive, got %v", c.HorizonSeconds)
	}
	if !ValidProcessKind(c.ProducerProcess) {
		return fmt.Errorf("producer: %w %q", ErrUnknownProcess, c.ProducerProcess)
	}
	if !ValidProcessKind(c.DispatcherProcess) {
		return fmt.Errorf("dispatcher: %w %q", ErrUnknownProcess, c.DispatcherProcess)
	}
	if !ValidProcessKind(c.ConsumerProcess) {
		return fmt.Errorf("consumer: %w %q", ErrUnknownProcess, c.ConsumerProcess)
	}
	if c.ProducerRate <= 0 {
		return fmt.Errorf("producer rate must be positive, got %v", c.ProducerRate)
	}
	if c.ConsumerRate <= 0 {
		return fmt.Errorf("consumer rate must be positive, got %v", c.ConsumerRate)
	}
	if c.LatencyGoalTicks <= 0 {
		return fmt.Errorf("latency goal must be positive, got %d", c.LatencyGoalTicks)
	}
	if c.GoalFactor <= 0 {
		return fmt.Errorf("goal factor must be positive, got %v", c.GoalFactor)
	}
	if c.CapFactor < 1 {
		return fmt.Errorf("cap factor must be >= 1, got %v", c.CapFactor)
	}
	if c.QuantumTicks < 1 {
		return fmt.Errorf("quantum must be at least one tick, got %d", c.QuantumTicks)
	}
	return nil
}

// HorizonTicks returns the configured horizon in ticks.
func (c *Config) HorizonTicks() int64 {
	return int64(c.HorizonSeconds * float64(TicksPerSecond))
}

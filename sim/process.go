// Implements the interval processes that pace the producer, dispatcher and
// consumer. Each process generates the gap to its next event.

package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrUnknownProcess is returned when a process kind string is not recognized.
var ErrUnknownProcess = errors.New("unknown process kind")

// Process kinds accepted by NewIntervalProcess.
const (
	KindUniform  = "uniform"
	KindPoisson  = "poisson"
	KindExpDelay = "expdelay"
	KindCapDelay = "capdelay"
)

// IntervalProcess generates successive event intervals.
type IntervalProcess interface {
	// Next returns the gap to the next event in ticks.
	// Never negative; never less than one tick.
	Next() int64
}

// UniformProcess fires at a fixed period. Deterministic.
type UniformProcess struct {
	period int64
}

func (p *UniformProcess) Next() int64 {
	return p.period
}

// PoissonProcess produces exponentially distributed intervals with the
// configured mean (CV=1), modelling a Poisson event stream.
type PoissonProcess struct {
	mean float64
	rng  *rand.Rand
}

func (p *PoissonProcess) Next() int64 {
	iv := int64(p.rng.ExpFloat64() * p.mean)
	if iv < 1 {
		return 1
	}
	return iv
}

// ExpDelayProcess produces the configured period plus an exponentially
// distributed excess: a hard floor with an unbounded tail.
type ExpDelayProcess struct {
	floor float64
	rng   *rand.Rand
}

func (p *ExpDelayProcess) Next() int64 {
	iv := int64(p.floor * (1.0 + p.rng.ExpFloat64()))
	if iv < 1 {
		return 1
	}
	return iv
}

// CapDelayProcess produces the configured period scaled by a uniform jitter
// factor in [1, capFactor]: a hard floor with a bounded tail.
type CapDelayProcess struct {
	floor     float64
	capFactor float64
	rng       *rand.Rand
}

func (p *CapDelayProcess) Next() int64 {
	jitter := 1.0 + p.rng.Float64()*(p.capFactor-1.0)
	iv := int64(p.floor * jitter)
	if iv < 1 {
		return 1
	}
	return iv
}

// ValidProcessKind reports whether kind names one of the supported interval
// processes.
func ValidProcessKind(kind string) bool {
	switch kind {
	case KindUniform, KindPoisson, KindExpDelay, KindCapDelay:
		return true
	}
	return false
}

// NewIntervalProcess creates an IntervalProcess of the given kind with the
// given mean period in ticks. The rng must be owned exclusively by the
// returned process; sharing one source across processes correlates their
// jitter streams. capFactor bounds the capdelay jitter and is ignored by the
// other kinds.
func NewIntervalProcess(kind string, periodTicks float64, capFactor float64, rng *rand.Rand) (IntervalProcess, error) {
	if periodTicks <= 0 {
		return nil, fmt.Errorf("process period must be positive, got %v", periodTicks)
	}
	switch kind {
	case KindUniform:
		period := int64(math.Round(periodTicks))
		if period < 1 {
			period = 1
		}
		return &UniformProcess{period: period}, nil
	case KindPoisson:
		return &PoissonProcess{mean: periodTicks, rng: rng}, nil
	case KindExpDelay:
		return &ExpDelayProcess{floor: periodTicks, rng: rng}, nil
	case KindCapDelay:
		if capFactor < 1.0 {
			return nil, fmt.Errorf("cap factor must be >= 1, got %v", capFactor)
		}
		return &CapDelayProcess{floor: periodTicks, capFactor: capFactor, rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownProcess, kind)
	}
}

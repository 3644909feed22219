// sim/simulator.go
package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time and the pipeline
// stages, and advances them with a fixed-step clock. It is the only component
// aware of global time.
type Simulator struct {
	Clock   int64 // current logical time in ticks
	Horizon int64 // end of the run in ticks
	Quantum int64 // clock step in ticks

	Producer   *Producer
	Dispatcher *Dispatcher
	Consumer   *Consumer
	Collector  *Collector

	PeakQueued   int // deepest pending queue observed
	PeakInFlight int // deepest consumer occupancy observed

	cfg Config
}

// NewSimulator builds the pipeline from a configuration. All configuration
// errors surface here, before the loop starts; a simulation that constructs
// cannot fail at runtime.
func NewSimulator(cfg Config) (*Simulator, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	horizon := cfg.HorizonTicks()
	collector := NewCollector(horizon)

	consumer, err := NewConsumer(cfg.ConsumerRate, cfg.ConsumerProcess, cfg.CapFactor, collector, rng.ForSubsystem(SubsystemConsumer))
	if err != nil {
		return nil, err
	}
	dispatcher, err := NewDispatcher(cfg.LatencyGoalTicks, cfg.GoalFactor, cfg.DispatcherProcess, cfg.CapFactor, consumer, rng.ForSubsystem(SubsystemDispatcher))
	if err != nil {
		return nil, err
	}
	producer, err := NewProducer(cfg.ProducerRate, cfg.ProducerProcess, cfg.CapFactor, dispatcher, rng.ForSubsystem(SubsystemProducer))
	if err != nil {
		return nil, err
	}

	return &Simulator{
		Horizon:    horizon,
		Quantum:    cfg.QuantumTicks,
		Producer:   producer,
		Dispatcher: dispatcher,
		Consumer:   consumer,
		Collector:  collector,
		cfg:        cfg,
	}, nil
}

// Run advances the clock from zero through the horizon and returns the final
// report. The tick order within a step is fixed: consumer, producer,
// dispatcher. Completions drain before new admissions are attempted, so a
// request is never admitted and completed at the same instant.
func (s *Simulator) Run() *Report {
	nextProgress := TicksPerSecond

	for s.Clock = 0; s.Clock <= s.Horizon; s.Clock += s.Quantum {
		s.Consumer.Tick(s.Clock)
		s.Producer.Tick(s.Clock)
		s.Dispatcher.Tick(s.Clock)

		if q := s.Dispatcher.Queued(); q > s.PeakQueued {
			s.PeakQueued = q
		}
		if x := s.Consumer.InFlight(); x > s.PeakInFlight {
			s.PeakInFlight = x
		}

		if s.cfg.Verbose && s.Clock >= nextProgress {
			elapsed := float64(s.Clock) / float64(TicksPerSecond)
			logrus.Infof("[t=%5.0fs] queued %d/%d   g %.0f/s d %.0f/s c %.0f/s",
				elapsed,
				s.Dispatcher.Queued(), s.PeakQueued,
				float64(s.Producer.Generated())/elapsed,
				float64(s.Dispatcher.Dispatched())/elapsed,
				float64(s.Consumer.Processed())/elapsed)
			nextProgress += TicksPerSecond
		}
	}

	logrus.Debugf("[tick %07d] Simulation ended", s.Clock)
	return s.Report()
}

// Report assembles the final statistics snapshot.
func (s *Simulator) Report() *Report {
	return &Report{
		ProducerRate: s.cfg.ProducerRate,
		ConsumerRate: s.cfg.ConsumerRate,
		PeakQueued:   s.PeakQueued,
		PeakInFlight: s.PeakInFlight,
		Generated:    s.Producer.Generated(),
		Dispatched:   s.Dispatcher.Dispatched(),
		Processed:    s.Consumer.Processed(),
		Total:        s.Collector.TotalStats(),
		Exec:         s.Collector.ExecStats(),
	}
}

// Loads run configuration from a YAML scenario file, as an alternative to
// positional CLI arguments.

package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StageSpec describes one pipeline stage in a scenario file.
type StageSpec struct {
	Process string  `yaml:"process"`
	Rate    float64 `yaml:"rate,omitempty"` // events per second; unused for the dispatcher
}

// Scenario is the YAML form of a run configuration.
//
// Example:
//
//	horizon_seconds: 10
//	producer:   {process: poisson, rate: 1000}
//	dispatcher: {process: uniform}
//	consumer:   {process: uniform, rate: 1200}
//	latency_goal_us: 2000
//	goal_factor: 1.5
//	seed: 42
type Scenario struct {
	HorizonSeconds float64   `yaml:"horizon_seconds"`
	Producer       StageSpec `yaml:"producer"`
	Dispatcher     StageSpec `yaml:"dispatcher"`
	Consumer       StageSpec `yaml:"consumer"`
	LatencyGoalUS  int64     `yaml:"latency_goal_us,omitempty"`
	GoalFactor     float64   `yaml:"goal_factor,omitempty"`
	CapFactor      float64   `yaml:"cap_factor,omitempty"`
	QuantumUS      int64     `yaml:"quantum_us,omitempty"`
	Seed           int64     `yaml:"seed,omitempty"`
	Verbose        bool      `yaml:"verbose,omitempty"`
}

// Config converts the scenario into a defaulted, validated run configuration.
func (s *Scenario) Config() (Config, error) {
	cfg := Config{
		HorizonSeconds:    s.HorizonSeconds,
		ProducerProcess:   s.Producer.Process,
		ProducerRate:      s.Producer.Rate,
		DispatcherProcess: s.Dispatcher.Process,
		ConsumerProcess:   s.Consumer.Process,
		ConsumerRate:      s.Consumer.Rate,
		LatencyGoalTicks:  s.LatencyGoalUS,
		GoalFactor:        s.GoalFactor,
		CapFactor:         s.CapFactor,
		QuantumTicks:      s.QuantumUS,
		Seed:              s.Seed,
		Verbose:           s.Verbose,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadScenario reads, defaults and validates a scenario file.
func LoadScenario(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Config{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	cfg, err := s.Config()
	if err != nil {
		return Config{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return cfg, nil
}

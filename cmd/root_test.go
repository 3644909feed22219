package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/pipeline-sim/pipeline-sim/sim"
)

func resetFlags() {
	seed = 0
	quantumUS = sim.DefaultQuantumTicks
	capFactor = sim.DefaultCapFactor
	verbose = false
	scenarioFile = ""
}

func TestRunArgs_RequiresSixPositionals(t *testing.T) {
	resetFlags()
	assert.Error(t, runCmd.Args(runCmd, []string{"10", "uniform", "1000"}))
	assert.NoError(t, runCmd.Args(runCmd, []string{"10", "uniform", "1000", "uniform", "uniform", "1000"}))
	assert.Error(t, runCmd.Args(runCmd, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}))
}

func TestRunArgs_ScenarioFileReplacesPositionals(t *testing.T) {
	resetFlags()
	scenarioFile = "scenario.yaml"
	assert.NoError(t, runCmd.Args(runCmd, nil))
	assert.Error(t, runCmd.Args(runCmd, []string{"10"}))
}

func TestBuildConfig_SixArguments(t *testing.T) {
	resetFlags()
	cfg, err := buildConfig([]string{"10", "poisson", "1000", "uniform", "uniform", "5000"})
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.HorizonSeconds)
	assert.Equal(t, "poisson", cfg.ProducerProcess)
	assert.Equal(t, 1000.0, cfg.ProducerRate)
	assert.Equal(t, "uniform", cfg.DispatcherProcess)
	assert.Equal(t, "uniform", cfg.ConsumerProcess)
	assert.Equal(t, 5000.0, cfg.ConsumerRate)
	assert.Equal(t, sim.DefaultLatencyGoalTicks, cfg.LatencyGoalTicks)
	assert.Equal(t, sim.DefaultGoalFactor, cfg.GoalFactor)
}

func TestBuildConfig_OptionalGoalArguments(t *testing.T) {
	resetFlags()
	cfg, err := buildConfig([]string{"10", "uniform", "1000", "uniform", "uniform", "5000", "2000", "2.5"})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), cfg.LatencyGoalTicks)
	assert.Equal(t, 2.5, cfg.GoalFactor)
}

func TestBuildConfig_RejectsNonNumericArguments(t *testing.T) {
	resetFlags()
	_, err := buildConfig([]string{"ten", "uniform", "1000", "uniform", "uniform", "5000"})
	assert.ErrorContains(t, err, "duration-seconds")

	_, err = buildConfig([]string{"10", "uniform", "fast", "uniform", "uniform", "5000"})
	assert.ErrorContains(t, err, "producer-rate")

	_, err = buildConfig([]string{"10", "uniform", "1000", "uniform", "uniform", "5000", "half-a-ms"})
	assert.ErrorContains(t, err, "latency-goal-us")
}

func TestBuildConfig_RejectsUnknownProcessKind(t *testing.T) {
	resetFlags()
	_, err := buildConfig([]string{"10", "gamma", "1000", "uniform", "uniform", "5000"})
	assert.ErrorIs(t, err, sim.ErrUnknownProcess)
}

func TestBuildConfig_FromScenarioFile(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
horizon_seconds: 2
producer:
  process: uniform
  rate: 1000
dispatcher:
  process: uniform
consumer:
  process: uniform
  rate: 5000
`), 0o644))
	scenarioFile = path
	verbose = true

	cfg, err := buildConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.HorizonSeconds)
	assert.Equal(t, 5000.0, cfg.ConsumerRate)
	assert.True(t, cfg.Verbose, "the --verbose flag should carry over a scenario file")
}

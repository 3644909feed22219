package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector_EmptyReturnsZeroStats(t *testing.T) {
	c := NewCollector(TicksPerSecond)

	assert.Equal(t, LatencyStats{}, c.TotalStats())
	assert.Equal(t, LatencyStats{}, c.ExecStats())
}

func TestCollector_KnownUniformDistribution(t *testing.T) {
	// GIVEN 10000 samples drawn uniformly from [0, 1e6) ticks
	c := NewCollector(TicksPerSecond)
	rng := rand.New(rand.NewSource(42))
	maxSeen := int64(0)
	for i := 0; i < 10000; i++ {
		v := rng.Int63n(1_000_000)
		if v > maxSeen {
			maxSeen = v
		}
		c.Collect(v, v)
	}

	// THEN the streaming estimates land near the analytic values
	st := c.TotalStats()
	assert.Equal(t, int64(10000), st.Count)
	assert.InEpsilon(t, 500_000.0, st.Mean, 0.02)
	assert.InEpsilon(t, 500_000.0, float64(st.P50), 0.02)
	assert.InEpsilon(t, 950_000.0, float64(st.P95), 0.02)
	assert.InEpsilon(t, 990_000.0, float64(st.P99), 0.02)
	assert.Equal(t, maxSeen, st.Max)
}

func TestCollector_SeriesAreIndependent(t *testing.T) {
	c := NewCollector(TicksPerSecond)
	c.Collect(1000, 100)
	c.Collect(3000, 300)

	total := c.TotalStats()
	exec := c.ExecStats()
	assert.Equal(t, int64(2), total.Count)
	assert.InDelta(t, 2000.0, total.Mean, 0.001)
	assert.Equal(t, int64(3000), total.Max)
	assert.InDelta(t, 200.0, exec.Mean, 0.001)
	assert.Equal(t, int64(300), exec.Max)
}

func TestCollector_ClampsOutOfRangeSamples(t *testing.T) {
	// Latencies above the trackable bound are clamped into the histogram
	// but the exact max still reflects the recorded value.
	c := NewCollector(1000)
	c.Collect(5000, -10)

	total := c.TotalStats()
	assert.Equal(t, int64(5000), total.Max)
	assert.Equal(t, int64(1), total.Count)

	exec := c.ExecStats()
	assert.Equal(t, int64(0), exec.Max)
	assert.Equal(t, int64(1), exec.Count)
}

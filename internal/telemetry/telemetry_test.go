package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/constraint"
	"github.com/katalvlaran/hamilton/internal/telemetry"
	"github.com/katalvlaran/hamilton/search"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := telemetry.NewLogger(&buf, "debug", "json")
	require.NoError(t, err)
	logger.WithField("run_id", "abc").Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewLogger_TextLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := telemetry.NewLogger(&buf, "warn", "text")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "\x1b[", "buffers are never coloured")
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := telemetry.NewLogger(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)
	_, err = telemetry.NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestLoggerContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, logrus.StandardLogger(), telemetry.Logger(ctx).Logger)

	logger := logrus.New()
	assert.Equal(t, logger, telemetry.Logger(telemetry.WithLogger(ctx, logger)).Logger)

	entry := logger.WithField("run_id", "abc")
	got := telemetry.Logger(telemetry.WithLogger(ctx, entry))
	assert.Same(t, entry, got)
	assert.Equal(t, "abc", got.Data["run_id"])
}

func gather(t *testing.T, m *telemetry.Metrics) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}

	return out
}

func TestMetrics_ObserveSolve(t *testing.T) {
	m := telemetry.NewMetrics()
	stats := search.Stats{
		Candidates:   10,
		Backtracks:   4,
		Propagations: 7,
		Rejections:   map[constraint.Verdict]int{constraint.Disconnected: 3, constraint.Overdegree: 1},
	}
	m.ObserveSolve(stats, telemetry.OutcomeFound, 20*time.Millisecond)
	m.ObserveSolve(search.Stats{Candidates: 2}, telemetry.OutcomeNoCycle, time.Millisecond)

	fams := gather(t, m)
	assert.Equal(t, 12.0, fams["hamcycle_candidates_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 4.0, fams["hamcycle_backtracks_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 7.0, fams["hamcycle_propagations_total"].GetMetric()[0].GetCounter().GetValue())

	rejections := map[string]float64{}
	for _, metric := range fams["hamcycle_rejections_total"].GetMetric() {
		rejections[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"disconnected": 3, "overdegree": 1}, rejections)

	assert.Len(t, fams["hamcycle_solves_total"].GetMetric(), 2)
	assert.Equal(t, uint64(2), fams["hamcycle_solve_duration_seconds"].GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestMetrics_WriteFile(t *testing.T) {
	m := telemetry.NewMetrics()
	m.ObserveSolve(search.Stats{Candidates: 1}, telemetry.OutcomeFound, time.Millisecond)

	path := filepath.Join(t.TempDir(), "hamcycle.prom")
	require.NoError(t, m.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `hamcycle_solves_total{outcome="found"} 1`)
}

package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/techscreener/pkg/config"
	"github.com/wonny/techscreener/pkg/logger"
)

type countingJob struct {
	name     string
	schedule string
	runs     atomic.Int32
	failures int32 // number of leading runs that fail
}

func (j *countingJob) Name() string     { return j.name }
func (j *countingJob) Schedule() string { return j.schedule }

func (j *countingJob) Run(ctx context.Context) error {
	n := j.runs.Add(1)
	if n <= j.failures {
		return errors.New("backend unavailable")
	}
	return nil
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("*/5 * * * *"))
	assert.NoError(t, ValidateSchedule("0 */30 * * * *"))
	assert.NoError(t, ValidateSchedule("@hourly"))
	assert.Error(t, ValidateSchedule("every five minutes"))
}

func TestAddJob_Duplicate(t *testing.T) {
	s := New(logger.Nop())
	job := &countingJob{name: "refresh", schedule: "@hourly"}

	require.NoError(t, s.AddJob(job))
	assert.Error(t, s.AddJob(job))
}

func TestAddJob_BadSchedule(t *testing.T) {
	s := New(logger.Nop())
	err := s.AddJob(&countingJob{name: "refresh", schedule: "nope"})
	assert.Error(t, err)
}

func TestRunJob_Success(t *testing.T) {
	s := New(logger.Nop())
	job := &countingJob{name: "refresh", schedule: "@hourly"}
	require.NoError(t, s.AddJob(job))

	result, err := s.RunJob("refresh")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int32(1), job.runs.Load())

	stats := s.GetJobStats()["refresh"]
	assert.Equal(t, "@hourly", stats.Schedule)
	assert.Equal(t, 1, stats.TotalRuns)
	assert.Equal(t, 1, stats.SuccessCount)
	assert.NotNil(t, stats.LastSuccess)
	assert.Nil(t, stats.LastFailure)
}

func TestRunJob_Failure(t *testing.T) {
	s := New(logger.Nop())
	job := &countingJob{name: "refresh", schedule: "@hourly", failures: 10}
	require.NoError(t, s.AddJob(job))

	result, err := s.RunJob("refresh")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "backend unavailable", result.Error)
	// a failed run is not retried before the next tick
	assert.Equal(t, int32(1), job.runs.Load())

	stats := s.GetJobStats()["refresh"]
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, 0.0, stats.SuccessRate)
}

func TestRunJob_Unknown(t *testing.T) {
	_, err := New(logger.Nop()).RunJob("missing")
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s := New(logger.Nop())
	job := &countingJob{name: "tick", schedule: "* * * * * *"}
	require.NoError(t, s.AddJob(job))

	s.Start()
	require.Eventually(t, func() bool { return job.runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	s.Stop()
}

func TestJobHistory(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < maxHistory+10; i++ {
		h.AddResult(JobResult{Success: i%2 == 0})
	}

	assert.Len(t, h.Results, maxHistory)
	assert.Len(t, h.GetLatestResults(3), 3)
	assert.Len(t, h.GetFailedResults(), maxHistory/2)
	assert.InDelta(t, 0.5, h.GetSuccessRate(), 0.001)
	assert.Empty(t, (&JobHistory{}).GetLatestResults(5))
}

func TestCronLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&config.Config{Env: "development", LogLevel: "debug", LogFormat: "json"}, &buf)
	cl := newCronLogger(log)

	cl.Error(errors.New("boom"), "panic", "job", "screener_refresh")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "cron", entry["component"])
	assert.Equal(t, "screener_refresh", entry["job"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "panic", entry["message"])

	buf.Reset()
	cl.Info("skip")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
}

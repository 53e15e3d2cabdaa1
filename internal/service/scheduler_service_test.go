package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduleIntervalRejectsNonPositive(t *testing.T) {
	s := NewSchedulerService(time.UTC)
	_, err := s.ScheduleInterval(0, func() {})
	require.Error(t, err)
}

func TestScheduleIntervalRunsJob(t *testing.T) {
	s := NewSchedulerService(time.UTC)

	var runs atomic.Int32
	_, err := s.ScheduleInterval(50*time.Millisecond, func() { runs.Add(1) })
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
}

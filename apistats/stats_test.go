package apistats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordRequestIncrementsCounters(t *testing.T) {
	s := New([]string{"solve-ik", "solve-fk"})

	s.RecordRequest("solve-ik", 120)
	s.RecordRequest("solve-ik", 80)
	s.RecordRequest("solve-fk", 30)
	s.RecordRequest("unknown-route", -1)

	snap := s.Snapshot()
	assert.Equal(t, uint64(4), snap.RequestsTotal)
	assert.Equal(t, uint64(2), snap.RequestsPerRoute["solve-ik"])
	assert.Equal(t, uint64(1), snap.RequestsPerRoute["solve-fk"])
	assert.Equal(t, uint64(230), snap.SolveTimeUsSum)
	assert.Equal(t, uint64(3), snap.SolveTimeUsCount)
}

func TestMonotonicCounterUnderConcurrency(t *testing.T) {
	s := New([]string{"solve-ik"})
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordRequest("solve-ik", 10)
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(100), s.Snapshot().RequestsTotal)
}

func TestHealthReportsOK(t *testing.T) {
	s := New(nil)
	h := s.Health("v1.0.0")
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "v1.0.0", h.Version)
	assert.GreaterOrEqual(t, h.UptimeSecs, 0.0)
}

package fhirmodel

import (
	"sync"
	"testing"
	"time"
)

func TestMetrics_RecordBuild(t *testing.T) {
	m := NewMetrics()

	m.RecordBuild("Coverage", 10*time.Microsecond, false)
	m.RecordBuild("Coverage", 30*time.Microsecond, true)
	m.RecordBuild("Coverage.Class", 2*time.Microsecond, false)

	if m.BuildsTotal() != 3 {
		t.Errorf("BuildsTotal() = %d, want 3", m.BuildsTotal())
	}
	if m.BuildsRejected() != 1 {
		t.Errorf("BuildsRejected() = %d, want 1", m.BuildsRejected())
	}
	if got := m.MinCheckTime(); got != 2*time.Microsecond {
		t.Errorf("MinCheckTime() = %v", got)
	}
	if got := m.MaxCheckTime(); got != 30*time.Microsecond {
		t.Errorf("MaxCheckTime() = %v", got)
	}
	if got := m.AverageCheckTime(); got != 14*time.Microsecond {
		t.Errorf("AverageCheckTime() = %v", got)
	}

	cov, ok := m.TypeStats("Coverage")
	if !ok {
		t.Fatal("missing Coverage stats")
	}
	if cov.Builds != 2 || cov.Rejected != 1 || cov.AvgTime != 20*time.Microsecond {
		t.Errorf("unexpected Coverage stats: %+v", cov)
	}
	if _, ok := m.TypeStats("Library"); ok {
		t.Error("Library was never built")
	}
}

func TestMetrics_Empty(t *testing.T) {
	m := NewMetrics()

	if m.RejectionRate() != 0 || m.AverageCheckTime() != 0 || m.MinCheckTime() != 0 {
		t.Error("an empty Metrics should report zero rates and times")
	}
	if s := m.Snapshot(); s.BuildsTotal != 0 || len(s.Types) != 0 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}

func TestMetrics_SnapshotAndReset(t *testing.T) {
	m := NewMetrics()
	m.RecordBuild("Substance", time.Millisecond, true)
	m.RecordBuild("Coverage", time.Millisecond, false)

	s := m.Snapshot()
	if s.BuildsTotal != 2 || s.RejectionRate != 0.5 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if len(s.Types) != 2 || s.Types[0].Type != "Coverage" || s.Types[1].Type != "Substance" {
		t.Errorf("types should be sorted: %+v", s.Types)
	}

	m.Reset()
	if m.BuildsTotal() != 0 || len(m.AllTypeStats()) != 0 || m.MinCheckTime() != 0 {
		t.Error("Reset should clear every counter")
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 100 {
				m.RecordBuild("Coverage", time.Duration(i+1)*time.Microsecond, i%2 == 0)
			}
		}(i)
	}
	wg.Wait()

	if m.BuildsTotal() != 1600 || m.BuildsRejected() != 800 {
		t.Errorf("BuildsTotal() = %d, BuildsRejected() = %d", m.BuildsTotal(), m.BuildsRejected())
	}
	if m.MinCheckTime() != time.Microsecond || m.MaxCheckTime() != 16*time.Microsecond {
		t.Errorf("min/max = %v/%v", m.MinCheckTime(), m.MaxCheckTime())
	}
}

func BenchmarkMetrics_RecordBuild(b *testing.B) {
	m := NewMetrics()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.RecordBuild("Coverage", time.Microsecond, false)
	}
}

package fhirmodel

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics counts Build calls and their validation time using lock-free
// atomic operations. All methods are safe for concurrent use. Attach one
// with WithMetrics.
type Metrics struct {
	buildsTotal    atomic.Uint64
	buildsRejected atomic.Uint64

	// Timing (stored as nanoseconds)
	checkTimeTotal atomic.Uint64
	checkTimeMin   atomic.Uint64
	checkTimeMax   atomic.Uint64

	byType sync.Map // map[string]*typeMetrics
}

type typeMetrics struct {
	builds    atomic.Uint64
	rejected  atomic.Uint64
	totalTime atomic.Uint64 // nanoseconds
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.checkTimeMin.Store(^uint64(0))
	return m
}

// RecordBuild records one validated Build of typ.
func (m *Metrics) RecordBuild(typ string, duration time.Duration, rejected bool) {
	ns := uint64(max(duration.Nanoseconds(), 0))

	m.buildsTotal.Add(1)
	m.checkTimeTotal.Add(ns)
	if rejected {
		m.buildsRejected.Add(1)
	}
	for {
		cur := m.checkTimeMin.Load()
		if ns >= cur || m.checkTimeMin.CompareAndSwap(cur, ns) {
			break
		}
	}
	for {
		cur := m.checkTimeMax.Load()
		if ns <= cur || m.checkTimeMax.CompareAndSwap(cur, ns) {
			break
		}
	}

	tm := m.forType(typ)
	tm.builds.Add(1)
	tm.totalTime.Add(ns)
	if rejected {
		tm.rejected.Add(1)
	}
}

func (m *Metrics) forType(typ string) *typeMetrics {
	if v, ok := m.byType.Load(typ); ok {
		return v.(*typeMetrics)
	}
	actual, _ := m.byType.LoadOrStore(typ, &typeMetrics{})
	return actual.(*typeMetrics)
}

// BuildsTotal returns the number of validated builds.
func (m *Metrics) BuildsTotal() uint64 {
	return m.buildsTotal.Load()
}

// BuildsRejected returns the number of builds that failed validation.
func (m *Metrics) BuildsRejected() uint64 {
	return m.buildsRejected.Load()
}

// RejectionRate returns rejected over total builds (0.0 to 1.0).
func (m *Metrics) RejectionRate() float64 {
	total := m.buildsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.buildsRejected.Load()) / float64(total)
}

// AverageCheckTime returns the mean time spent in validation per build.
func (m *Metrics) AverageCheckTime() time.Duration {
	total := m.buildsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.checkTimeTotal.Load() / total) //nolint:gosec // nanoseconds within int64 range
}

// MinCheckTime returns the shortest validation time recorded.
func (m *Metrics) MinCheckTime() time.Duration {
	v := m.checkTimeMin.Load()
	if v == ^uint64(0) {
		return 0
	}
	return time.Duration(v) //nolint:gosec // nanoseconds within int64 range
}

// MaxCheckTime returns the longest validation time recorded.
func (m *Metrics) MaxCheckTime() time.Duration {
	return time.Duration(m.checkTimeMax.Load()) //nolint:gosec // nanoseconds within int64 range
}

// TypeStats holds the build counts of one type.
type TypeStats struct {
	Type      string        `json:"type" yaml:"type"`
	Builds    uint64        `json:"builds" yaml:"builds"`
	Rejected  uint64        `json:"rejected" yaml:"rejected"`
	TotalTime time.Duration `json:"total_time_ns" yaml:"total_time_ns"`
	AvgTime   time.Duration `json:"avg_time_ns" yaml:"avg_time_ns"`
}

func (tm *typeMetrics) stats(typ string) TypeStats {
	s := TypeStats{
		Type:      typ,
		Builds:    tm.builds.Load(),
		Rejected:  tm.rejected.Load(),
		TotalTime: time.Duration(tm.totalTime.Load()), //nolint:gosec // nanoseconds within int64 range
	}
	if s.Builds > 0 {
		s.AvgTime = s.TotalTime / time.Duration(s.Builds) //nolint:gosec // small counter
	}
	return s
}

// TypeStats returns the counts for typ, e.g. "Coverage" or "Coverage.Class".
func (m *Metrics) TypeStats(typ string) (TypeStats, bool) {
	v, ok := m.byType.Load(typ)
	if !ok {
		return TypeStats{Type: typ}, false
	}
	return v.(*typeMetrics).stats(typ), true
}

// AllTypeStats returns the counts of every type built so far, sorted by type.
func (m *Metrics) AllTypeStats() []TypeStats {
	var out []TypeStats
	m.byType.Range(func(key, value any) bool {
		out = append(out, value.(*typeMetrics).stats(key.(string)))
		return true
	})
	slices.SortFunc(out, func(a, b TypeStats) int { return strings.Compare(a.Type, b.Type) })
	return out
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Timestamp      time.Time   `json:"timestamp" yaml:"timestamp"`
	BuildsTotal    uint64      `json:"builds_total" yaml:"builds_total"`
	BuildsRejected uint64      `json:"builds_rejected" yaml:"builds_rejected"`
	RejectionRate  float64     `json:"rejection_rate" yaml:"rejection_rate"`
	AvgCheckTimeNs uint64      `json:"avg_check_time_ns" yaml:"avg_check_time_ns"`
	MinCheckTimeNs uint64      `json:"min_check_time_ns" yaml:"min_check_time_ns"`
	MaxCheckTimeNs uint64      `json:"max_check_time_ns" yaml:"max_check_time_ns"`
	Types          []TypeStats `json:"types,omitempty" yaml:"types,omitempty"`
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Timestamp:      time.Now(),
		BuildsTotal:    m.BuildsTotal(),
		BuildsRejected: m.BuildsRejected(),
		RejectionRate:  m.RejectionRate(),
		AvgCheckTimeNs: uint64(m.AverageCheckTime()), //nolint:gosec // non-negative
		MinCheckTimeNs: uint64(m.MinCheckTime()),     //nolint:gosec // non-negative
		MaxCheckTimeNs: uint64(m.MaxCheckTime()),     //nolint:gosec // non-negative
		Types:          m.AllTypeStats(),
	}
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.buildsTotal.Store(0)
	m.buildsRejected.Store(0)
	m.checkTimeTotal.Store(0)
	m.checkTimeMin.Store(^uint64(0))
	m.checkTimeMax.Store(0)
	m.byType.Range(func(key, _ any) bool {
		m.byType.Delete(key)
		return true
	})
}

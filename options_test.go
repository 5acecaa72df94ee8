package fhirmodel

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.CheckReferenceTypes != true {
		t.Error("CheckReferenceTypes should be true by default")
	}
	if opts.CheckCodes != true {
		t.Error("CheckCodes should be true by default")
	}
	if opts.TraceBuilds != false {
		t.Error("TraceBuilds should be false by default")
	}
	if opts.Metrics != nil {
		t.Error("Metrics should be nil by default")
	}
}

func TestApply(t *testing.T) {
	if got := Apply(); got != nil {
		t.Errorf("Apply() = %+v, want nil", got)
	}

	got := Apply(WithBuildTracing(true))
	if !got.TraceBuilds {
		t.Error("TraceBuilds should be true after WithBuildTracing(true)")
	}
	if !got.CheckReferenceTypes || !got.CheckCodes {
		t.Error("options not passed to Apply should keep their defaults")
	}
}

func TestApply_Independent(t *testing.T) {
	a := Apply(WithCodeChecks(false))
	b := Apply(WithReferenceTypeChecks(false))

	if a.CheckCodes || !a.CheckReferenceTypes {
		t.Errorf("first Apply = %+v", a)
	}
	if !b.CheckCodes || b.CheckReferenceTypes {
		t.Errorf("second Apply should start from defaults, got %+v", b)
	}
}

func TestOrDefault(t *testing.T) {
	var o *Options
	if got := o.OrDefault(); *got != *DefaultOptions() {
		t.Errorf("nil.OrDefault() = %+v", got)
	}

	lenient := Apply(LenientOptions()...)
	if lenient.OrDefault() != lenient {
		t.Error("OrDefault should return a non-nil receiver unchanged")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		check func(*Options) bool
	}{
		{"strict", StrictOptions(), func(o *Options) bool {
			return o.CheckCodes && o.CheckReferenceTypes
		}},
		{"lenient", LenientOptions(), func(o *Options) bool {
			return !o.CheckCodes && !o.CheckReferenceTypes
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.opts...)
			if !tt.check(got) {
				t.Errorf("unexpected options for preset %s: %+v", tt.name, got)
			}
		})
	}
}

func TestWithMetrics(t *testing.T) {
	m := NewMetrics()
	if Apply(WithMetrics(m)).Metrics != m {
		t.Error("WithMetrics should attach the given Metrics")
	}
	if Apply(WithMetrics(nil)).Metrics != nil {
		t.Error("WithMetrics(nil) should leave Metrics unset")
	}
}

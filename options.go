package fhirmodel

// Option configures the optional checks of a single Build.
type Option func(*Options)

// Options holds the settings a builder applies in BuildWith. Structural
// checks (required elements, non-empty lists, nil list items, choice types
// and element content) always run; Options only switches the checks that
// depend on terminology and reference targets, plus diagnostics.
type Options struct {
	// CheckReferenceTypes rejects literal references whose target type is
	// not allowed for the element (e.g. Coverage.beneficiary to Practitioner).
	CheckReferenceTypes bool

	// CheckCodes rejects codes outside the required value set of a
	// code-typed element.
	CheckCodes bool

	// TraceBuilds logs construction results at debug level.
	TraceBuilds bool

	// Metrics, when set, receives a record of every Build.
	Metrics *Metrics
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		CheckReferenceTypes: true,
		CheckCodes:          true,
		TraceBuilds:         false,
	}
}

// Apply returns the defaults modified by opts. With no opts it returns nil,
// which builders treat as the defaults.
func Apply(opts ...Option) *Options {
	if len(opts) == 0 {
		return nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OrDefault returns o, or the defaults when o is nil.
func (o *Options) OrDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}

// --- Validation Options ---

// WithReferenceTypeChecks enables reference target type checks.
func WithReferenceTypeChecks(enable bool) Option {
	return func(o *Options) {
		o.CheckReferenceTypes = enable
	}
}

// WithCodeChecks enables required value set checks on code elements.
func WithCodeChecks(enable bool) Option {
	return func(o *Options) {
		o.CheckCodes = enable
	}
}

// --- Debug Options ---

// WithBuildTracing logs every Build at debug level.
func WithBuildTracing(enable bool) Option {
	return func(o *Options) {
		o.TraceBuilds = enable
	}
}

// WithMetrics records every Build in m. A nil m disables recording.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// --- Presets ---

// StrictOptions returns options that enable every check.
func StrictOptions() []Option {
	return []Option{
		WithReferenceTypeChecks(true),
		WithCodeChecks(true),
	}
}

// LenientOptions keeps the structural checks but accepts any code and any
// reference target. Use it for data produced by a newer terminology release.
func LenientOptions() []Option {
	return []Option{
		WithReferenceTypeChecks(false),
		WithCodeChecks(false),
	}
}

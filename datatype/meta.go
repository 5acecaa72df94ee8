package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Meta holds metadata about a resource.
type Meta struct {
	ElementBase
	versionID   *ID
	lastUpdated *Instant
	source      *URI
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// TypeName returns "Meta".
func (x *Meta) TypeName() string { return "Meta" }

// VersionID returns the version id, or nil when absent.
func (x *Meta) VersionID() *ID { return x.versionID }

// LastUpdated returns the last updated, or nil when absent.
func (x *Meta) LastUpdated() *Instant { return x.lastUpdated }

// Source returns the source, or nil when absent.
func (x *Meta) Source() *URI { return x.source }

// Profile returns a copy of the profile list.
func (x *Meta) Profile() []*Canonical { return slices.Clone(x.profile) }

// Security returns a copy of the security list.
func (x *Meta) Security() []*Coding { return slices.Clone(x.security) }

// Tag returns a copy of the tag list.
func (x *Meta) Tag() []*Coding { return slices.Clone(x.tag) }

// Accept visits x and then its fields in declaration order.
func (x *Meta) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "versionId", x.versionID)
		visit.Child(v, "lastUpdated", x.lastUpdated)
		visit.Child(v, "source", x.source)
		visit.List(v, "profile", x.profile)
		visit.List(v, "security", x.security)
		visit.List(v, "tag", x.tag)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Meta) Equal(other *Meta) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.versionID.Equal(other.versionID) &&
		x.lastUpdated.Equal(other.lastUpdated) &&
		x.source.Equal(other.source) &&
		slices.EqualFunc(x.profile, other.profile, (*Canonical).Equal) &&
		slices.EqualFunc(x.security, other.security, (*Coding).Equal) &&
		slices.EqualFunc(x.tag, other.tag, (*Coding).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Meta) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Meta")
		x.HashBase(h)
		hashcode.Field(h, x.versionID)
		hashcode.Field(h, x.lastUpdated)
		hashcode.Field(h, x.source)
		hashcode.List(h, x.profile)
		hashcode.List(h, x.security)
		hashcode.List(h, x.tag)
		return h.Sum64()
	})
}

func (x *Meta) equalElement(o Element) bool {
	other, ok := o.(*Meta)
	return ok && x.Equal(other)
}

func (x *Meta) isNil() bool { return x == nil }

func (x *Meta) checks() []error {
	return []error{
		x.ValidateBase("Meta"),
		validate.Elements("Meta", "profile", x.profile),
		validate.Elements("Meta", "security", x.security),
		validate.Elements("Meta", "tag", x.tag),
		validate.HasChildren("Meta", x.HasContentBase() ||
			x.versionID != nil ||
			x.lastUpdated != nil ||
			x.source != nil ||
			len(x.profile) > 0 ||
			len(x.security) > 0 ||
			len(x.tag) > 0),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Meta) ToBuilder() *MetaBuilder {
	return &MetaBuilder{
		id:          x.id,
		extension:   slices.Clone(x.extension),
		versionID:   x.versionID,
		lastUpdated: x.lastUpdated,
		source:      x.source,
		profile:     slices.Clone(x.profile),
		security:    slices.Clone(x.security),
		tag:         slices.Clone(x.tag),
		opts:        x.opts,
	}
}

// MetaBuilder builds Meta values.
type MetaBuilder struct {
	id          string
	extension   []*Extension
	versionID   *ID
	lastUpdated *Instant
	source      *URI
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
	opts        *fhirmodel.Options
}

// NewMetaBuilder returns an empty builder.
func NewMetaBuilder() *MetaBuilder {
	return &MetaBuilder{}
}

// ID sets the id.
func (b *MetaBuilder) ID(v string) *MetaBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *MetaBuilder) Extension(values ...*Extension) *MetaBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *MetaBuilder) SetExtension(values []*Extension) *MetaBuilder {
	b.extension = slices.Clone(values)
	return b
}

// VersionID sets the version id.
func (b *MetaBuilder) VersionID(v *ID) *MetaBuilder {
	b.versionID = v
	return b
}

// LastUpdated sets the last updated.
func (b *MetaBuilder) LastUpdated(v *Instant) *MetaBuilder {
	b.lastUpdated = v
	return b
}

// Source sets the source.
func (b *MetaBuilder) Source(v *URI) *MetaBuilder {
	b.source = v
	return b
}

// Profile appends values to profile.
func (b *MetaBuilder) Profile(values ...*Canonical) *MetaBuilder {
	b.profile = append(b.profile, values...)
	return b
}

// SetProfile replaces profile with a copy of values.
func (b *MetaBuilder) SetProfile(values []*Canonical) *MetaBuilder {
	b.profile = slices.Clone(values)
	return b
}

// Security appends values to security.
func (b *MetaBuilder) Security(values ...*Coding) *MetaBuilder {
	b.security = append(b.security, values...)
	return b
}

// SetSecurity replaces security with a copy of values.
func (b *MetaBuilder) SetSecurity(values []*Coding) *MetaBuilder {
	b.security = slices.Clone(values)
	return b
}

// Tag appends values to tag.
func (b *MetaBuilder) Tag(values ...*Coding) *MetaBuilder {
	b.tag = append(b.tag, values...)
	return b
}

// SetTag replaces tag with a copy of values.
func (b *MetaBuilder) SetTag(values []*Coding) *MetaBuilder {
	b.tag = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable Meta. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *MetaBuilder) Build() (*Meta, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *MetaBuilder) BuildWith(opts ...fhirmodel.Option) (*Meta, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *MetaBuilder) build(o *fhirmodel.Options) (*Meta, error) {
	x := &Meta{
		ElementBase: NewElementBase(b.id, b.extension),
		versionID:   b.versionID,
		lastUpdated: b.lastUpdated,
		source:      b.source,
		profile:     slices.Clone(b.profile),
		security:    slices.Clone(b.security),
		tag:         slices.Clone(b.tag),
		opts:        o,
	}
	if err := validate.Run("Meta", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

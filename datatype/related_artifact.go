package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// RelatedArtifact links a knowledge artifact to related documentation.
type RelatedArtifact struct {
	ElementBase
	typ      *Code
	label    *String
	display  *String
	citation *Markdown
	url      *URL
	document *Attachment
	resource *Canonical
	opts     *fhirmodel.Options
	memo     hashcode.Cell
}

// TypeName returns "RelatedArtifact".
func (x *RelatedArtifact) TypeName() string { return "RelatedArtifact" }

// Type returns the type code, drawn from RelatedArtifactType.
func (x *RelatedArtifact) Type() *Code { return x.typ }

// Label returns the label, or nil when absent.
func (x *RelatedArtifact) Label() *String { return x.label }

// Display returns the display, or nil when absent.
func (x *RelatedArtifact) Display() *String { return x.display }

// Citation returns the citation, or nil when absent.
func (x *RelatedArtifact) Citation() *Markdown { return x.citation }

// URL returns the url, or nil when absent.
func (x *RelatedArtifact) URL() *URL { return x.url }

// Document returns the document, or nil when absent.
func (x *RelatedArtifact) Document() *Attachment { return x.document }

// Resource returns the resource, or nil when absent.
func (x *RelatedArtifact) Resource() *Canonical { return x.resource }

// Accept visits x and then its fields in declaration order.
func (x *RelatedArtifact) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "label", x.label)
		visit.Child(v, "display", x.display)
		visit.Child(v, "citation", x.citation)
		visit.Child(v, "url", x.url)
		visit.Child(v, "document", x.document)
		visit.Child(v, "resource", x.resource)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *RelatedArtifact) Equal(other *RelatedArtifact) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.typ.Equal(other.typ) &&
		x.label.Equal(other.label) &&
		x.display.Equal(other.display) &&
		x.citation.Equal(other.citation) &&
		x.url.Equal(other.url) &&
		x.document.Equal(other.document) &&
		x.resource.Equal(other.resource)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *RelatedArtifact) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("RelatedArtifact")
		x.HashBase(h)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.label)
		hashcode.Field(h, x.display)
		hashcode.Field(h, x.citation)
		hashcode.Field(h, x.url)
		hashcode.Field(h, x.document)
		hashcode.Field(h, x.resource)
		return h.Sum64()
	})
}

func (x *RelatedArtifact) equalElement(o Element) bool {
	other, ok := o.(*RelatedArtifact)
	return ok && x.Equal(other)
}

func (x *RelatedArtifact) isNil() bool { return x == nil }

func (x *RelatedArtifact) checks() []error {
	return []error{
		x.ValidateBase("RelatedArtifact"),
		validate.Required("RelatedArtifact", "type", x.typ),
		CheckCode("RelatedArtifact", "type", x.typ, RelatedArtifactTypeValues),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *RelatedArtifact) ToBuilder() *RelatedArtifactBuilder {
	return &RelatedArtifactBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		typ:       x.typ,
		label:     x.label,
		display:   x.display,
		citation:  x.citation,
		url:       x.url,
		document:  x.document,
		resource:  x.resource,
		opts:      x.opts,
	}
}

// RelatedArtifactBuilder builds RelatedArtifact values.
type RelatedArtifactBuilder struct {
	id        string
	extension []*Extension
	typ       *Code
	label     *String
	display   *String
	citation  *Markdown
	url       *URL
	document  *Attachment
	resource  *Canonical
	opts      *fhirmodel.Options
}

// NewRelatedArtifactBuilder returns an empty builder.
func NewRelatedArtifactBuilder() *RelatedArtifactBuilder {
	return &RelatedArtifactBuilder{}
}

// ID sets the id.
func (b *RelatedArtifactBuilder) ID(v string) *RelatedArtifactBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *RelatedArtifactBuilder) Extension(values ...*Extension) *RelatedArtifactBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *RelatedArtifactBuilder) SetExtension(values []*Extension) *RelatedArtifactBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Type sets the type.
func (b *RelatedArtifactBuilder) Type(v *Code) *RelatedArtifactBuilder {
	b.typ = v
	return b
}

// Label sets the label.
func (b *RelatedArtifactBuilder) Label(v *String) *RelatedArtifactBuilder {
	b.label = v
	return b
}

// Display sets the display.
func (b *RelatedArtifactBuilder) Display(v *String) *RelatedArtifactBuilder {
	b.display = v
	return b
}

// Citation sets the citation.
func (b *RelatedArtifactBuilder) Citation(v *Markdown) *RelatedArtifactBuilder {
	b.citation = v
	return b
}

// URL sets the url.
func (b *RelatedArtifactBuilder) URL(v *URL) *RelatedArtifactBuilder {
	b.url = v
	return b
}

// Document sets the document.
func (b *RelatedArtifactBuilder) Document(v *Attachment) *RelatedArtifactBuilder {
	b.document = v
	return b
}

// Resource sets the resource.
func (b *RelatedArtifactBuilder) Resource(v *Canonical) *RelatedArtifactBuilder {
	b.resource = v
	return b
}

// Build validates the fields and returns an immutable RelatedArtifact. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *RelatedArtifactBuilder) Build() (*RelatedArtifact, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *RelatedArtifactBuilder) BuildWith(opts ...fhirmodel.Option) (*RelatedArtifact, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *RelatedArtifactBuilder) build(o *fhirmodel.Options) (*RelatedArtifact, error) {
	x := &RelatedArtifact{
		ElementBase: NewElementBase(b.id, b.extension),
		typ:         b.typ,
		label:       b.label,
		display:     b.display,
		citation:    b.citation,
		url:         b.url,
		document:    b.document,
		resource:    b.resource,
		opts:        o,
	}
	if err := validate.Run("RelatedArtifact", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

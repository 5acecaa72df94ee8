package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Annotation is a text note with attribution.
type Annotation struct {
	ElementBase
	author Element
	time   *DateTime
	text   *Markdown
	opts   *fhirmodel.Options
	memo   hashcode.Cell
}

// TypeName returns "Annotation".
func (x *Annotation) TypeName() string { return "Annotation" }

// Author returns author[x]: Reference or string.
func (x *Annotation) Author() Element { return x.author }

// Time returns the time, or nil when absent.
func (x *Annotation) Time() *DateTime { return x.time }

// Text returns the text. It is never nil on a built value.
func (x *Annotation) Text() *Markdown { return x.text }

// Accept visits x and then its fields in declaration order.
func (x *Annotation) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "author", x.author)
		visit.Child(v, "time", x.time)
		visit.Child(v, "text", x.text)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Annotation) Equal(other *Annotation) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		EqualElements(x.author, other.author) &&
		x.time.Equal(other.time) &&
		x.text.Equal(other.text)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Annotation) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Annotation")
		x.HashBase(h)
		hashcode.Field(h, x.author)
		hashcode.Field(h, x.time)
		hashcode.Field(h, x.text)
		return h.Sum64()
	})
}

func (x *Annotation) equalElement(o Element) bool {
	other, ok := o.(*Annotation)
	return ok && x.Equal(other)
}

func (x *Annotation) isNil() bool { return x == nil }

func (x *Annotation) checks() []error {
	return []error{
		x.ValidateBase("Annotation"),
		validate.Choice("Annotation", "author", x.author, "Reference", "string"),
		CheckReferenceChoice("Annotation", "author", x.author, "Practitioner", "Patient", "RelatedPerson", "Organization"),
		validate.Required("Annotation", "text", x.text),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Annotation) ToBuilder() *AnnotationBuilder {
	return &AnnotationBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		author:    x.author,
		time:      x.time,
		text:      x.text,
		opts:      x.opts,
	}
}

// AnnotationBuilder builds Annotation values.
type AnnotationBuilder struct {
	id        string
	extension []*Extension
	author    Element
	time      *DateTime
	text      *Markdown
	opts      *fhirmodel.Options
}

// NewAnnotationBuilder returns an empty builder.
func NewAnnotationBuilder() *AnnotationBuilder {
	return &AnnotationBuilder{}
}

// ID sets the id.
func (b *AnnotationBuilder) ID(v string) *AnnotationBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *AnnotationBuilder) Extension(values ...*Extension) *AnnotationBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *AnnotationBuilder) SetExtension(values []*Extension) *AnnotationBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Author sets author[x]. A typed nil clears it.
func (b *AnnotationBuilder) Author(v Element) *AnnotationBuilder {
	b.author = OrNil(v)
	return b
}

// Time sets the time.
func (b *AnnotationBuilder) Time(v *DateTime) *AnnotationBuilder {
	b.time = v
	return b
}

// Text sets the text.
func (b *AnnotationBuilder) Text(v *Markdown) *AnnotationBuilder {
	b.text = v
	return b
}

// Build validates the fields and returns an immutable Annotation. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *AnnotationBuilder) Build() (*Annotation, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *AnnotationBuilder) BuildWith(opts ...fhirmodel.Option) (*Annotation, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *AnnotationBuilder) build(o *fhirmodel.Options) (*Annotation, error) {
	x := &Annotation{
		ElementBase: NewElementBase(b.id, b.extension),
		author:      b.author,
		time:        b.time,
		text:        b.text,
		opts:        o,
	}
	if err := validate.Run("Annotation", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

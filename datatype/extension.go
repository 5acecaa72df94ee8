package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Extension is additional content defined by implementations. It carries
// either a value or nested extensions, never both.
type Extension struct {
	ElementBase
	url   string
	value Element
	opts  *fhirmodel.Options
	memo  hashcode.Cell
}

// TypeName returns "Extension".
func (x *Extension) TypeName() string { return "Extension" }

// URL returns the url, or "" when unset.
func (x *Extension) URL() string { return x.url }

// Value returns value[x], which may hold any data type except Extension.
func (x *Extension) Value() Element { return x.value }

// Accept visits x and then its fields in declaration order.
func (x *Extension) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.url != "" {
			v.VisitValue("url", x.url)
		}
		visit.Child(v, "value", x.value)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Extension) Equal(other *Extension) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.url == other.url &&
		EqualElements(x.value, other.value)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Extension) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Extension")
		x.HashBase(h)
		h.String(x.url)
		hashcode.Field(h, x.value)
		return h.Sum64()
	})
}

func (x *Extension) equalElement(o Element) bool {
	other, ok := o.(*Extension)
	return ok && x.Equal(other)
}

func (x *Extension) isNil() bool { return x == nil }

func (x *Extension) checks() []error {
	return []error{
		x.ValidateBase("Extension"),
		validate.RequiredString("Extension", "url", x.url),
		validate.Choice("Extension", "value", x.value, extensionValueTypes...),
		x.validateContent(),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Extension) ToBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		url:       x.url,
		value:     x.value,
		opts:      x.opts,
	}
}

// ExtensionBuilder builds Extension values.
type ExtensionBuilder struct {
	id        string
	extension []*Extension
	url       string
	value     Element
	opts      *fhirmodel.Options
}

// NewExtensionBuilder returns an empty builder.
func NewExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{}
}

// ID sets the id.
func (b *ExtensionBuilder) ID(v string) *ExtensionBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *ExtensionBuilder) Extension(values ...*Extension) *ExtensionBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *ExtensionBuilder) SetExtension(values []*Extension) *ExtensionBuilder {
	b.extension = slices.Clone(values)
	return b
}

// URL sets the url.
func (b *ExtensionBuilder) URL(v string) *ExtensionBuilder {
	b.url = v
	return b
}

// Value sets value[x]. A typed nil clears it.
func (b *ExtensionBuilder) Value(v Element) *ExtensionBuilder {
	b.value = OrNil(v)
	return b
}

// Build validates the fields and returns an immutable Extension. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *ExtensionBuilder) Build() (*Extension, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *ExtensionBuilder) BuildWith(opts ...fhirmodel.Option) (*Extension, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *ExtensionBuilder) build(o *fhirmodel.Options) (*Extension, error) {
	x := &Extension{
		ElementBase: NewElementBase(b.id, b.extension),
		url:         b.url,
		value:       b.value,
		opts:        o,
	}
	if err := validate.Run("Extension", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// extensionValueTypes lists the types Extension.value[x] may hold.
var extensionValueTypes = []string{
	"boolean", "integer", "positiveInt", "unsignedInt", "decimal",
	"string", "code", "id", "uri", "url",
	"canonical", "uuid", "markdown", "base64Binary", "date",
	"dateTime", "time", "instant", "Meta", "Coding",
	"CodeableConcept", "Identifier", "Reference", "Period", "Quantity",
	"Money", "Duration", "Range", "Ratio", "Attachment",
	"Annotation", "ContactPoint", "ContactDetail", "UsageContext", "RelatedArtifact",
	"ParameterDefinition", "DataRequirement",
}

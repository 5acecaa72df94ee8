package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Attachment holds content in other formats, inline or by url.
type Attachment struct {
	ElementBase
	contentType *Code
	language    *Code
	data        *Base64Binary
	url         *URL
	size        *UnsignedInt
	contentHash *Base64Binary
	title       *String
	creation    *DateTime
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// TypeName returns "Attachment".
func (x *Attachment) TypeName() string { return "Attachment" }

// ContentType returns the content type, or nil when absent.
func (x *Attachment) ContentType() *Code { return x.contentType }

// Language returns the language, or nil when absent.
func (x *Attachment) Language() *Code { return x.language }

// Data returns the data, or nil when absent.
func (x *Attachment) Data() *Base64Binary { return x.data }

// URL returns the url, or nil when absent.
func (x *Attachment) URL() *URL { return x.url }

// Size returns the size, or nil when absent.
func (x *Attachment) Size() *UnsignedInt { return x.size }

// ContentHash returns the hash, or nil when absent.
func (x *Attachment) ContentHash() *Base64Binary { return x.contentHash }

// Title returns the title, or nil when absent.
func (x *Attachment) Title() *String { return x.title }

// Creation returns the creation, or nil when absent.
func (x *Attachment) Creation() *DateTime { return x.creation }

// Accept visits x and then its fields in declaration order.
func (x *Attachment) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "contentType", x.contentType)
		visit.Child(v, "language", x.language)
		visit.Child(v, "data", x.data)
		visit.Child(v, "url", x.url)
		visit.Child(v, "size", x.size)
		visit.Child(v, "hash", x.contentHash)
		visit.Child(v, "title", x.title)
		visit.Child(v, "creation", x.creation)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Attachment) Equal(other *Attachment) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.contentType.Equal(other.contentType) &&
		x.language.Equal(other.language) &&
		x.data.Equal(other.data) &&
		x.url.Equal(other.url) &&
		x.size.Equal(other.size) &&
		x.contentHash.Equal(other.contentHash) &&
		x.title.Equal(other.title) &&
		x.creation.Equal(other.creation)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Attachment) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Attachment")
		x.HashBase(h)
		hashcode.Field(h, x.contentType)
		hashcode.Field(h, x.language)
		hashcode.Field(h, x.data)
		hashcode.Field(h, x.url)
		hashcode.Field(h, x.size)
		hashcode.Field(h, x.contentHash)
		hashcode.Field(h, x.title)
		hashcode.Field(h, x.creation)
		return h.Sum64()
	})
}

func (x *Attachment) equalElement(o Element) bool {
	other, ok := o.(*Attachment)
	return ok && x.Equal(other)
}

func (x *Attachment) isNil() bool { return x == nil }

func (x *Attachment) checks() []error {
	return []error{
		x.ValidateBase("Attachment"),
		validate.HasChildren("Attachment", x.HasContentBase() ||
			x.contentType != nil ||
			x.language != nil ||
			x.data != nil ||
			x.url != nil ||
			x.size != nil ||
			x.contentHash != nil ||
			x.title != nil ||
			x.creation != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Attachment) ToBuilder() *AttachmentBuilder {
	return &AttachmentBuilder{
		id:          x.id,
		extension:   slices.Clone(x.extension),
		contentType: x.contentType,
		language:    x.language,
		data:        x.data,
		url:         x.url,
		size:        x.size,
		contentHash: x.contentHash,
		title:       x.title,
		creation:    x.creation,
		opts:        x.opts,
	}
}

// AttachmentBuilder builds Attachment values.
type AttachmentBuilder struct {
	id          string
	extension   []*Extension
	contentType *Code
	language    *Code
	data        *Base64Binary
	url         *URL
	size        *UnsignedInt
	contentHash *Base64Binary
	title       *String
	creation    *DateTime
	opts        *fhirmodel.Options
}

// NewAttachmentBuilder returns an empty builder.
func NewAttachmentBuilder() *AttachmentBuilder {
	return &AttachmentBuilder{}
}

// ID sets the id.
func (b *AttachmentBuilder) ID(v string) *AttachmentBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *AttachmentBuilder) Extension(values ...*Extension) *AttachmentBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *AttachmentBuilder) SetExtension(values []*Extension) *AttachmentBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ContentType sets the content type.
func (b *AttachmentBuilder) ContentType(v *Code) *AttachmentBuilder {
	b.contentType = v
	return b
}

// Language sets the language.
func (b *AttachmentBuilder) Language(v *Code) *AttachmentBuilder {
	b.language = v
	return b
}

// Data sets the data.
func (b *AttachmentBuilder) Data(v *Base64Binary) *AttachmentBuilder {
	b.data = v
	return b
}

// URL sets the url.
func (b *AttachmentBuilder) URL(v *URL) *AttachmentBuilder {
	b.url = v
	return b
}

// Size sets the size.
func (b *AttachmentBuilder) Size(v *UnsignedInt) *AttachmentBuilder {
	b.size = v
	return b
}

// ContentHash sets the hash.
func (b *AttachmentBuilder) ContentHash(v *Base64Binary) *AttachmentBuilder {
	b.contentHash = v
	return b
}

// Title sets the title.
func (b *AttachmentBuilder) Title(v *String) *AttachmentBuilder {
	b.title = v
	return b
}

// Creation sets the creation.
func (b *AttachmentBuilder) Creation(v *DateTime) *AttachmentBuilder {
	b.creation = v
	return b
}

// Build validates the fields and returns an immutable Attachment. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *AttachmentBuilder) Build() (*Attachment, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *AttachmentBuilder) BuildWith(opts ...fhirmodel.Option) (*Attachment, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *AttachmentBuilder) build(o *fhirmodel.Options) (*Attachment, error) {
	x := &Attachment{
		ElementBase: NewElementBase(b.id, b.extension),
		contentType: b.contentType,
		language:    b.language,
		data:        b.data,
		url:         b.url,
		size:        b.size,
		contentHash: b.contentHash,
		title:       b.title,
		creation:    b.creation,
		opts:        o,
	}
	if err := validate.Run("Attachment", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

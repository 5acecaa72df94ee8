package resource

import (
	"slices"

	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Resource is implemented by every resource type.
type Resource interface {
	visit.Node

	// ResourceType returns the resource type name, e.g. "Coverage".
	ResourceType() string

	// ID returns the logical id, or "" when unset.
	ID() string

	Meta() *datatype.Meta

	// Contained returns a copy of the contained resources.
	Contained() []Resource

	// Hash returns the structural hash, equal for equal resources.
	Hash() uint64

	equalResource(other Resource) bool
	isNil() bool
}

// EqualResources reports whether a and b are equal resources of the same type.
func EqualResources(a, b Resource) bool {
	a, b = orNil(a), orNil(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equalResource(b)
}

func orNil(r Resource) Resource {
	if r == nil || r.isNil() {
		return nil
	}
	return r
}

// ResourceBase holds the fields shared by all resources.
type ResourceBase struct {
	id            string
	meta          *datatype.Meta
	implicitRules *datatype.URI
	language      *datatype.Code
}

// ID returns the logical id, or "" when unset.
func (b *ResourceBase) ID() string { return b.id }

// Meta returns the resource metadata.
func (b *ResourceBase) Meta() *datatype.Meta { return b.meta }

// ImplicitRules returns the rules the content was created under.
func (b *ResourceBase) ImplicitRules() *datatype.URI { return b.implicitRules }

// Language returns the base language of the resource.
func (b *ResourceBase) Language() *datatype.Code { return b.language }

// DomainResourceBase adds narrative, contained resources and extensions.
// All resources of this package embed it.
type DomainResourceBase struct {
	ResourceBase
	text              *datatype.Narrative
	contained         []Resource
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
}

func newDomainResourceBase(
	id string,
	meta *datatype.Meta,
	implicitRules *datatype.URI,
	language *datatype.Code,
	text *datatype.Narrative,
	contained []Resource,
	extension, modifierExtension []*datatype.Extension,
) DomainResourceBase {
	return DomainResourceBase{
		ResourceBase: ResourceBase{
			id:            id,
			meta:          meta,
			implicitRules: implicitRules,
			language:      language,
		},
		text:              text,
		contained:         slices.Clone(contained),
		extension:         slices.Clone(extension),
		modifierExtension: slices.Clone(modifierExtension),
	}
}

// Text returns the human-readable narrative.
func (b *DomainResourceBase) Text() *datatype.Narrative { return b.text }

// Contained returns a copy of the contained resources.
func (b *DomainResourceBase) Contained() []Resource { return slices.Clone(b.contained) }

// Extension returns a copy of the extensions.
func (b *DomainResourceBase) Extension() []*datatype.Extension { return slices.Clone(b.extension) }

// ModifierExtension returns a copy of the modifier extensions.
func (b *DomainResourceBase) ModifierExtension() []*datatype.Extension {
	return slices.Clone(b.modifierExtension)
}

// AcceptBase visits the base fields in FHIR order.
func (b *DomainResourceBase) AcceptBase(v visit.Visitor) {
	if b.id != "" {
		v.VisitValue("id", b.id)
	}
	visit.Child(v, "meta", b.meta)
	visit.Child(v, "implicitRules", b.implicitRules)
	visit.Child(v, "language", b.language)
	visit.Child(v, "text", b.text)
	visit.List(v, "contained", b.contained)
	visit.List(v, "extension", b.extension)
	visit.List(v, "modifierExtension", b.modifierExtension)
}

// EqualBase compares the base fields.
func (b *DomainResourceBase) EqualBase(o *DomainResourceBase) bool {
	return b.id == o.id &&
		b.meta.Equal(o.meta) &&
		b.implicitRules.Equal(o.implicitRules) &&
		b.language.Equal(o.language) &&
		b.text.Equal(o.text) &&
		slices.EqualFunc(b.contained, o.contained, EqualResources) &&
		slices.EqualFunc(b.extension, o.extension, (*datatype.Extension).Equal) &&
		slices.EqualFunc(b.modifierExtension, o.modifierExtension, (*datatype.Extension).Equal)
}

// HashBase adds the base fields to h.
func (b *DomainResourceBase) HashBase(h *hashcode.Hasher) {
	h.String(b.id)
	hashcode.Field(h, b.meta)
	hashcode.Field(h, b.implicitRules)
	hashcode.Field(h, b.language)
	hashcode.Field(h, b.text)
	hashcode.List(h, b.contained)
	hashcode.List(h, b.extension)
	hashcode.List(h, b.modifierExtension)
}

// ValidateBase checks the id format, rejects nil list entries and enforces
// dom-2: contained resources do not contain resources.
func (b *DomainResourceBase) ValidateBase(typ string) error {
	if b.id != "" && !datatype.ValidID(b.id) {
		return validate.InvalidField(typ, "id", b.id, "is not a valid id")
	}
	if err := validate.First(
		validate.Elements(typ, "contained", b.contained),
		validate.Elements(typ, "extension", b.extension),
		validate.Elements(typ, "modifierExtension", b.modifierExtension),
	); err != nil {
		return err
	}
	for _, c := range b.contained {
		if len(c.Contained()) > 0 {
			return validate.InvalidField(typ, "contained", c.ResourceType()+"/"+c.ID(),
				"contained resources must not contain resources")
		}
	}
	return nil
}

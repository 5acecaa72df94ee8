package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Library is a container for knowledge assets such as logic libraries and model definitions.
type Library struct {
	DomainResourceBase
	url             *datatype.URI
	identifier      []*datatype.Identifier
	version         *datatype.String
	name            *datatype.String
	title           *datatype.String
	subtitle        *datatype.String
	status          *datatype.Code
	experimental    *datatype.Boolean
	typ             *datatype.CodeableConcept
	subject         datatype.Element
	date            *datatype.DateTime
	publisher       *datatype.String
	contact         []*datatype.ContactDetail
	description     *datatype.Markdown
	useContext      []*datatype.UsageContext
	jurisdiction    []*datatype.CodeableConcept
	purpose         *datatype.Markdown
	usage           *datatype.String
	copyright       *datatype.Markdown
	approvalDate    *datatype.Date
	lastReviewDate  *datatype.Date
	effectivePeriod *datatype.Period
	topic           []*datatype.CodeableConcept
	author          []*datatype.ContactDetail
	editor          []*datatype.ContactDetail
	reviewer        []*datatype.ContactDetail
	endorser        []*datatype.ContactDetail
	relatedArtifact []*datatype.RelatedArtifact
	parameter       []*datatype.ParameterDefinition
	dataRequirement []*datatype.DataRequirement
	content         []*datatype.Attachment
	opts            *fhirmodel.Options
	memo            hashcode.Cell
}

// ResourceType returns "Library".
func (x *Library) ResourceType() string { return "Library" }

// TypeName returns "Library".
func (x *Library) TypeName() string { return "Library" }

// URL returns the url, or nil when absent.
func (x *Library) URL() *datatype.URI { return x.url }

// Identifier returns a copy of the identifier list.
func (x *Library) Identifier() []*datatype.Identifier { return slices.Clone(x.identifier) }

// Version returns the version, or nil when absent.
func (x *Library) Version() *datatype.String { return x.version }

// Name returns the name, or nil when absent.
func (x *Library) Name() *datatype.String { return x.name }

// Title returns the title, or nil when absent.
func (x *Library) Title() *datatype.String { return x.title }

// Subtitle returns the subtitle, or nil when absent.
func (x *Library) Subtitle() *datatype.String { return x.subtitle }

// Status returns the status code, drawn from PublicationStatus.
func (x *Library) Status() *datatype.Code { return x.status }

// Experimental returns the experimental, or nil when absent.
func (x *Library) Experimental() *datatype.Boolean { return x.experimental }

// Type returns the type. It is never nil on a built value.
func (x *Library) Type() *datatype.CodeableConcept { return x.typ }

// Subject returns subject[x]: CodeableConcept or Reference.
func (x *Library) Subject() datatype.Element { return x.subject }

// Date returns the date, or nil when absent.
func (x *Library) Date() *datatype.DateTime { return x.date }

// Publisher returns the publisher, or nil when absent.
func (x *Library) Publisher() *datatype.String { return x.publisher }

// Contact returns a copy of the contact list.
func (x *Library) Contact() []*datatype.ContactDetail { return slices.Clone(x.contact) }

// Description returns the description, or nil when absent.
func (x *Library) Description() *datatype.Markdown { return x.description }

// UseContext returns a copy of the use context list.
func (x *Library) UseContext() []*datatype.UsageContext { return slices.Clone(x.useContext) }

// Jurisdiction returns a copy of the jurisdiction list.
func (x *Library) Jurisdiction() []*datatype.CodeableConcept { return slices.Clone(x.jurisdiction) }

// Purpose returns the purpose, or nil when absent.
func (x *Library) Purpose() *datatype.Markdown { return x.purpose }

// Usage returns the usage, or nil when absent.
func (x *Library) Usage() *datatype.String { return x.usage }

// Copyright returns the copyright, or nil when absent.
func (x *Library) Copyright() *datatype.Markdown { return x.copyright }

// ApprovalDate returns the approval date, or nil when absent.
func (x *Library) ApprovalDate() *datatype.Date { return x.approvalDate }

// LastReviewDate returns the last review date, or nil when absent.
func (x *Library) LastReviewDate() *datatype.Date { return x.lastReviewDate }

// EffectivePeriod returns the effective period, or nil when absent.
func (x *Library) EffectivePeriod() *datatype.Period { return x.effectivePeriod }

// Topic returns a copy of the topic list.
func (x *Library) Topic() []*datatype.CodeableConcept { return slices.Clone(x.topic) }

// Author returns a copy of the author list.
func (x *Library) Author() []*datatype.ContactDetail { return slices.Clone(x.author) }

// Editor returns a copy of the editor list.
func (x *Library) Editor() []*datatype.ContactDetail { return slices.Clone(x.editor) }

// Reviewer returns a copy of the reviewer list.
func (x *Library) Reviewer() []*datatype.ContactDetail { return slices.Clone(x.reviewer) }

// Endorser returns a copy of the endorser list.
func (x *Library) Endorser() []*datatype.ContactDetail { return slices.Clone(x.endorser) }

// RelatedArtifact returns a copy of the related artifact list.
func (x *Library) RelatedArtifact() []*datatype.RelatedArtifact {
	return slices.Clone(x.relatedArtifact)
}

// Parameter returns a copy of the parameter list.
func (x *Library) Parameter() []*datatype.ParameterDefinition { return slices.Clone(x.parameter) }

// DataRequirement returns a copy of the data requirement list.
func (x *Library) DataRequirement() []*datatype.DataRequirement {
	return slices.Clone(x.dataRequirement)
}

// Content returns a copy of the content list.
func (x *Library) Content() []*datatype.Attachment { return slices.Clone(x.content) }

// Accept visits x and then its fields in declaration order.
func (x *Library) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "url", x.url)
		visit.List(v, "identifier", x.identifier)
		visit.Child(v, "version", x.version)
		visit.Child(v, "name", x.name)
		visit.Child(v, "title", x.title)
		visit.Child(v, "subtitle", x.subtitle)
		visit.Child(v, "status", x.status)
		visit.Child(v, "experimental", x.experimental)
		visit.Child(v, "type", x.typ)
		visit.Child(v, "subject", x.subject)
		visit.Child(v, "date", x.date)
		visit.Child(v, "publisher", x.publisher)
		visit.List(v, "contact", x.contact)
		visit.Child(v, "description", x.description)
		visit.List(v, "useContext", x.useContext)
		visit.List(v, "jurisdiction", x.jurisdiction)
		visit.Child(v, "purpose", x.purpose)
		visit.Child(v, "usage", x.usage)
		visit.Child(v, "copyright", x.copyright)
		visit.Child(v, "approvalDate", x.approvalDate)
		visit.Child(v, "lastReviewDate", x.lastReviewDate)
		visit.Child(v, "effectivePeriod", x.effectivePeriod)
		visit.List(v, "topic", x.topic)
		visit.List(v, "author", x.author)
		visit.List(v, "editor", x.editor)
		visit.List(v, "reviewer", x.reviewer)
		visit.List(v, "endorser", x.endorser)
		visit.List(v, "relatedArtifact", x.relatedArtifact)
		visit.List(v, "parameter", x.parameter)
		visit.List(v, "dataRequirement", x.dataRequirement)
		visit.List(v, "content", x.content)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Library) Equal(other *Library) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.DomainResourceBase) &&
		x.url.Equal(other.url) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		x.version.Equal(other.version) &&
		x.name.Equal(other.name) &&
		x.title.Equal(other.title) &&
		x.subtitle.Equal(other.subtitle) &&
		x.status.Equal(other.status) &&
		x.experimental.Equal(other.experimental) &&
		x.typ.Equal(other.typ) &&
		datatype.EqualElements(x.subject, other.subject) &&
		x.date.Equal(other.date) &&
		x.publisher.Equal(other.publisher) &&
		slices.EqualFunc(x.contact, other.contact, (*datatype.ContactDetail).Equal) &&
		x.description.Equal(other.description) &&
		slices.EqualFunc(x.useContext, other.useContext, (*datatype.UsageContext).Equal) &&
		slices.EqualFunc(x.jurisdiction, other.jurisdiction, (*datatype.CodeableConcept).Equal) &&
		x.purpose.Equal(other.purpose) &&
		x.usage.Equal(other.usage) &&
		x.copyright.Equal(other.copyright) &&
		x.approvalDate.Equal(other.approvalDate) &&
		x.lastReviewDate.Equal(other.lastReviewDate) &&
		x.effectivePeriod.Equal(other.effectivePeriod) &&
		slices.EqualFunc(x.topic, other.topic, (*datatype.CodeableConcept).Equal) &&
		slices.EqualFunc(x.author, other.author, (*datatype.ContactDetail).Equal) &&
		slices.EqualFunc(x.editor, other.editor, (*datatype.ContactDetail).Equal) &&
		slices.EqualFunc(x.reviewer, other.reviewer, (*datatype.ContactDetail).Equal) &&
		slices.EqualFunc(x.endorser, other.endorser, (*datatype.ContactDetail).Equal) &&
		slices.EqualFunc(x.relatedArtifact, other.relatedArtifact, (*datatype.RelatedArtifact).Equal) &&
		slices.EqualFunc(x.parameter, other.parameter, (*datatype.ParameterDefinition).Equal) &&
		slices.EqualFunc(x.dataRequirement, other.dataRequirement, (*datatype.DataRequirement).Equal) &&
		slices.EqualFunc(x.content, other.content, (*datatype.Attachment).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Library) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Library")
		x.HashBase(h)
		hashcode.Field(h, x.url)
		hashcode.List(h, x.identifier)
		hashcode.Field(h, x.version)
		hashcode.Field(h, x.name)
		hashcode.Field(h, x.title)
		hashcode.Field(h, x.subtitle)
		hashcode.Field(h, x.status)
		hashcode.Field(h, x.experimental)
		hashcode.Field(h, x.typ)
		hashcode.Field(h, x.subject)
		hashcode.Field(h, x.date)
		hashcode.Field(h, x.publisher)
		hashcode.List(h, x.contact)
		hashcode.Field(h, x.description)
		hashcode.List(h, x.useContext)
		hashcode.List(h, x.jurisdiction)
		hashcode.Field(h, x.purpose)
		hashcode.Field(h, x.usage)
		hashcode.Field(h, x.copyright)
		hashcode.Field(h, x.approvalDate)
		hashcode.Field(h, x.lastReviewDate)
		hashcode.Field(h, x.effectivePeriod)
		hashcode.List(h, x.topic)
		hashcode.List(h, x.author)
		hashcode.List(h, x.editor)
		hashcode.List(h, x.reviewer)
		hashcode.List(h, x.endorser)
		hashcode.List(h, x.relatedArtifact)
		hashcode.List(h, x.parameter)
		hashcode.List(h, x.dataRequirement)
		hashcode.List(h, x.content)
		return h.Sum64()
	})
}

func (x *Library) equalResource(o Resource) bool {
	other, ok := o.(*Library)
	return ok && x.Equal(other)
}

func (x *Library) isNil() bool { return x == nil }

func (x *Library) checks() []error {
	return []error{
		x.ValidateBase("Library"),
		validate.Elements("Library", "identifier", x.identifier),
		validate.Required("Library", "status", x.status),
		datatype.CheckCode("Library", "status", x.status, PublicationStatusValues),
		validate.Required("Library", "type", x.typ),
		validate.Choice("Library", "subject", x.subject, "CodeableConcept", "Reference"),
		datatype.CheckReferenceChoice("Library", "subject", x.subject, "Group"),
		validate.Elements("Library", "contact", x.contact),
		validate.Elements("Library", "useContext", x.useContext),
		validate.Elements("Library", "jurisdiction", x.jurisdiction),
		validate.Elements("Library", "topic", x.topic),
		validate.Elements("Library", "author", x.author),
		validate.Elements("Library", "editor", x.editor),
		validate.Elements("Library", "reviewer", x.reviewer),
		validate.Elements("Library", "endorser", x.endorser),
		validate.Elements("Library", "relatedArtifact", x.relatedArtifact),
		validate.Elements("Library", "parameter", x.parameter),
		validate.Elements("Library", "dataRequirement", x.dataRequirement),
		validate.Elements("Library", "content", x.content),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Library) ToBuilder() *LibraryBuilder {
	return &LibraryBuilder{
		id:                x.ID(),
		meta:              x.Meta(),
		implicitRules:     x.ImplicitRules(),
		language:          x.Language(),
		text:              x.Text(),
		contained:         x.Contained(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		url:               x.url,
		identifier:        slices.Clone(x.identifier),
		version:           x.version,
		name:              x.name,
		title:             x.title,
		subtitle:          x.subtitle,
		status:            x.status,
		experimental:      x.experimental,
		typ:               x.typ,
		subject:           x.subject,
		date:              x.date,
		publisher:         x.publisher,
		contact:           slices.Clone(x.contact),
		description:       x.description,
		useContext:        slices.Clone(x.useContext),
		jurisdiction:      slices.Clone(x.jurisdiction),
		purpose:           x.purpose,
		usage:             x.usage,
		copyright:         x.copyright,
		approvalDate:      x.approvalDate,
		lastReviewDate:    x.lastReviewDate,
		effectivePeriod:   x.effectivePeriod,
		topic:             slices.Clone(x.topic),
		author:            slices.Clone(x.author),
		editor:            slices.Clone(x.editor),
		reviewer:          slices.Clone(x.reviewer),
		endorser:          slices.Clone(x.endorser),
		relatedArtifact:   slices.Clone(x.relatedArtifact),
		parameter:         slices.Clone(x.parameter),
		dataRequirement:   slices.Clone(x.dataRequirement),
		content:           slices.Clone(x.content),
		opts:              x.opts,
	}
}

// LibraryBuilder builds Library values.
type LibraryBuilder struct {
	id                string
	meta              *datatype.Meta
	implicitRules     *datatype.URI
	language          *datatype.Code
	text              *datatype.Narrative
	contained         []Resource
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	url               *datatype.URI
	identifier        []*datatype.Identifier
	version           *datatype.String
	name              *datatype.String
	title             *datatype.String
	subtitle          *datatype.String
	status            *datatype.Code
	experimental      *datatype.Boolean
	typ               *datatype.CodeableConcept
	subject           datatype.Element
	date              *datatype.DateTime
	publisher         *datatype.String
	contact           []*datatype.ContactDetail
	description       *datatype.Markdown
	useContext        []*datatype.UsageContext
	jurisdiction      []*datatype.CodeableConcept
	purpose           *datatype.Markdown
	usage             *datatype.String
	copyright         *datatype.Markdown
	approvalDate      *datatype.Date
	lastReviewDate    *datatype.Date
	effectivePeriod   *datatype.Period
	topic             []*datatype.CodeableConcept
	author            []*datatype.ContactDetail
	editor            []*datatype.ContactDetail
	reviewer          []*datatype.ContactDetail
	endorser          []*datatype.ContactDetail
	relatedArtifact   []*datatype.RelatedArtifact
	parameter         []*datatype.ParameterDefinition
	dataRequirement   []*datatype.DataRequirement
	content           []*datatype.Attachment
	opts              *fhirmodel.Options
}

// NewLibraryBuilder returns an empty builder.
func NewLibraryBuilder() *LibraryBuilder {
	return &LibraryBuilder{}
}

// ID sets the id.
func (b *LibraryBuilder) ID(v string) *LibraryBuilder {
	b.id = v
	return b
}

// Meta sets the meta.
func (b *LibraryBuilder) Meta(v *datatype.Meta) *LibraryBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets the implicit rules.
func (b *LibraryBuilder) ImplicitRules(v *datatype.URI) *LibraryBuilder {
	b.implicitRules = v
	return b
}

// Language sets the language.
func (b *LibraryBuilder) Language(v *datatype.Code) *LibraryBuilder {
	b.language = v
	return b
}

// Text sets the text.
func (b *LibraryBuilder) Text(v *datatype.Narrative) *LibraryBuilder {
	b.text = v
	return b
}

// Contained appends values to contained.
func (b *LibraryBuilder) Contained(values ...Resource) *LibraryBuilder {
	for _, v := range values {
		b.contained = append(b.contained, orNil(v))
	}
	return b
}

// SetContained replaces contained with a copy of values.
func (b *LibraryBuilder) SetContained(values []Resource) *LibraryBuilder {
	b.contained = nil
	return b.Contained(values...)
}

// Extension appends values to extension.
func (b *LibraryBuilder) Extension(values ...*datatype.Extension) *LibraryBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *LibraryBuilder) SetExtension(values []*datatype.Extension) *LibraryBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *LibraryBuilder) ModifierExtension(values ...*datatype.Extension) *LibraryBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *LibraryBuilder) SetModifierExtension(values []*datatype.Extension) *LibraryBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// URL sets the url.
func (b *LibraryBuilder) URL(v *datatype.URI) *LibraryBuilder {
	b.url = v
	return b
}

// Identifier appends values to identifier.
func (b *LibraryBuilder) Identifier(values ...*datatype.Identifier) *LibraryBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *LibraryBuilder) SetIdentifier(values []*datatype.Identifier) *LibraryBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// Version sets the version.
func (b *LibraryBuilder) Version(v *datatype.String) *LibraryBuilder {
	b.version = v
	return b
}

// Name sets the name.
func (b *LibraryBuilder) Name(v *datatype.String) *LibraryBuilder {
	b.name = v
	return b
}

// Title sets the title.
func (b *LibraryBuilder) Title(v *datatype.String) *LibraryBuilder {
	b.title = v
	return b
}

// Subtitle sets the subtitle.
func (b *LibraryBuilder) Subtitle(v *datatype.String) *LibraryBuilder {
	b.subtitle = v
	return b
}

// Status sets the status.
func (b *LibraryBuilder) Status(v *datatype.Code) *LibraryBuilder {
	b.status = v
	return b
}

// Experimental sets the experimental.
func (b *LibraryBuilder) Experimental(v *datatype.Boolean) *LibraryBuilder {
	b.experimental = v
	return b
}

// Type sets the type.
func (b *LibraryBuilder) Type(v *datatype.CodeableConcept) *LibraryBuilder {
	b.typ = v
	return b
}

// Subject sets subject[x]. A typed nil clears it.
func (b *LibraryBuilder) Subject(v datatype.Element) *LibraryBuilder {
	b.subject = datatype.OrNil(v)
	return b
}

// Date sets the date.
func (b *LibraryBuilder) Date(v *datatype.DateTime) *LibraryBuilder {
	b.date = v
	return b
}

// Publisher sets the publisher.
func (b *LibraryBuilder) Publisher(v *datatype.String) *LibraryBuilder {
	b.publisher = v
	return b
}

// Contact appends values to contact.
func (b *LibraryBuilder) Contact(values ...*datatype.ContactDetail) *LibraryBuilder {
	b.contact = append(b.contact, values...)
	return b
}

// SetContact replaces contact with a copy of values.
func (b *LibraryBuilder) SetContact(values []*datatype.ContactDetail) *LibraryBuilder {
	b.contact = slices.Clone(values)
	return b
}

// Description sets the description.
func (b *LibraryBuilder) Description(v *datatype.Markdown) *LibraryBuilder {
	b.description = v
	return b
}

// UseContext appends values to use context.
func (b *LibraryBuilder) UseContext(values ...*datatype.UsageContext) *LibraryBuilder {
	b.useContext = append(b.useContext, values...)
	return b
}

// SetUseContext replaces use context with a copy of values.
func (b *LibraryBuilder) SetUseContext(values []*datatype.UsageContext) *LibraryBuilder {
	b.useContext = slices.Clone(values)
	return b
}

// Jurisdiction appends values to jurisdiction.
func (b *LibraryBuilder) Jurisdiction(values ...*datatype.CodeableConcept) *LibraryBuilder {
	b.jurisdiction = append(b.jurisdiction, values...)
	return b
}

// SetJurisdiction replaces jurisdiction with a copy of values.
func (b *LibraryBuilder) SetJurisdiction(values []*datatype.CodeableConcept) *LibraryBuilder {
	b.jurisdiction = slices.Clone(values)
	return b
}

// Purpose sets the purpose.
func (b *LibraryBuilder) Purpose(v *datatype.Markdown) *LibraryBuilder {
	b.purpose = v
	return b
}

// Usage sets the usage.
func (b *LibraryBuilder) Usage(v *datatype.String) *LibraryBuilder {
	b.usage = v
	return b
}

// Copyright sets the copyright.
func (b *LibraryBuilder) Copyright(v *datatype.Markdown) *LibraryBuilder {
	b.copyright = v
	return b
}

// ApprovalDate sets the approval date.
func (b *LibraryBuilder) ApprovalDate(v *datatype.Date) *LibraryBuilder {
	b.approvalDate = v
	return b
}

// LastReviewDate sets the last review date.
func (b *LibraryBuilder) LastReviewDate(v *datatype.Date) *LibraryBuilder {
	b.lastReviewDate = v
	return b
}

// EffectivePeriod sets the effective period.
func (b *LibraryBuilder) EffectivePeriod(v *datatype.Period) *LibraryBuilder {
	b.effectivePeriod = v
	return b
}

// Topic appends values to topic.
func (b *LibraryBuilder) Topic(values ...*datatype.CodeableConcept) *LibraryBuilder {
	b.topic = append(b.topic, values...)
	return b
}

// SetTopic replaces topic with a copy of values.
func (b *LibraryBuilder) SetTopic(values []*datatype.CodeableConcept) *LibraryBuilder {
	b.topic = slices.Clone(values)
	return b
}

// Author appends values to author.
func (b *LibraryBuilder) Author(values ...*datatype.ContactDetail) *LibraryBuilder {
	b.author = append(b.author, values...)
	return b
}

// SetAuthor replaces author with a copy of values.
func (b *LibraryBuilder) SetAuthor(values []*datatype.ContactDetail) *LibraryBuilder {
	b.author = slices.Clone(values)
	return b
}

// Editor appends values to editor.
func (b *LibraryBuilder) Editor(values ...*datatype.ContactDetail) *LibraryBuilder {
	b.editor = append(b.editor, values...)
	return b
}

// SetEditor replaces editor with a copy of values.
func (b *LibraryBuilder) SetEditor(values []*datatype.ContactDetail) *LibraryBuilder {
	b.editor = slices.Clone(values)
	return b
}

// Reviewer appends values to reviewer.
func (b *LibraryBuilder) Reviewer(values ...*datatype.ContactDetail) *LibraryBuilder {
	b.reviewer = append(b.reviewer, values...)
	return b
}

// SetReviewer replaces reviewer with a copy of values.
func (b *LibraryBuilder) SetReviewer(values []*datatype.ContactDetail) *LibraryBuilder {
	b.reviewer = slices.Clone(values)
	return b
}

// Endorser appends values to endorser.
func (b *LibraryBuilder) Endorser(values ...*datatype.ContactDetail) *LibraryBuilder {
	b.endorser = append(b.endorser, values...)
	return b
}

// SetEndorser replaces endorser with a copy of values.
func (b *LibraryBuilder) SetEndorser(values []*datatype.ContactDetail) *LibraryBuilder {
	b.endorser = slices.Clone(values)
	return b
}

// RelatedArtifact appends values to related artifact.
func (b *LibraryBuilder) RelatedArtifact(values ...*datatype.RelatedArtifact) *LibraryBuilder {
	b.relatedArtifact = append(b.relatedArtifact, values...)
	return b
}

// SetRelatedArtifact replaces related artifact with a copy of values.
func (b *LibraryBuilder) SetRelatedArtifact(values []*datatype.RelatedArtifact) *LibraryBuilder {
	b.relatedArtifact = slices.Clone(values)
	return b
}

// Parameter appends values to parameter.
func (b *LibraryBuilder) Parameter(values ...*datatype.ParameterDefinition) *LibraryBuilder {
	b.parameter = append(b.parameter, values...)
	return b
}

// SetParameter replaces parameter with a copy of values.
func (b *LibraryBuilder) SetParameter(values []*datatype.ParameterDefinition) *LibraryBuilder {
	b.parameter = slices.Clone(values)
	return b
}

// DataRequirement appends values to data requirement.
func (b *LibraryBuilder) DataRequirement(values ...*datatype.DataRequirement) *LibraryBuilder {
	b.dataRequirement = append(b.dataRequirement, values...)
	return b
}

// SetDataRequirement replaces data requirement with a copy of values.
func (b *LibraryBuilder) SetDataRequirement(values []*datatype.DataRequirement) *LibraryBuilder {
	b.dataRequirement = slices.Clone(values)
	return b
}

// Content appends values to content.
func (b *LibraryBuilder) Content(values ...*datatype.Attachment) *LibraryBuilder {
	b.content = append(b.content, values...)
	return b
}

// SetContent replaces content with a copy of values.
func (b *LibraryBuilder) SetContent(values []*datatype.Attachment) *LibraryBuilder {
	b.content = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable Library. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *LibraryBuilder) Build() (*Library, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *LibraryBuilder) BuildWith(opts ...fhirmodel.Option) (*Library, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *LibraryBuilder) build(o *fhirmodel.Options) (*Library, error) {
	x := &Library{
		DomainResourceBase: newDomainResourceBase(b.id, b.meta, b.implicitRules, b.language, b.text, b.contained, b.extension, b.modifierExtension),
		url:                b.url,
		identifier:         slices.Clone(b.identifier),
		version:            b.version,
		name:               b.name,
		title:              b.title,
		subtitle:           b.subtitle,
		status:             b.status,
		experimental:       b.experimental,
		typ:                b.typ,
		subject:            b.subject,
		date:               b.date,
		publisher:          b.publisher,
		contact:            slices.Clone(b.contact),
		description:        b.description,
		useContext:         slices.Clone(b.useContext),
		jurisdiction:       slices.Clone(b.jurisdiction),
		purpose:            b.purpose,
		usage:              b.usage,
		copyright:          b.copyright,
		approvalDate:       b.approvalDate,
		lastReviewDate:     b.lastReviewDate,
		effectivePeriod:    b.effectivePeriod,
		topic:              slices.Clone(b.topic),
		author:             slices.Clone(b.author),
		editor:             slices.Clone(b.editor),
		reviewer:           slices.Clone(b.reviewer),
		endorser:           slices.Clone(b.endorser),
		relatedArtifact:    slices.Clone(b.relatedArtifact),
		parameter:          slices.Clone(b.parameter),
		dataRequirement:    slices.Clone(b.dataRequirement),
		content:            slices.Clone(b.content),
		opts:               o,
	}
	if err := validate.Run("Library", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

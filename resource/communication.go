package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Communication is a record of information transmitted from a sender to a receiver.
type Communication struct {
	DomainResourceBase
	identifier            []*datatype.Identifier
	instantiatesCanonical []*datatype.Canonical
	instantiatesURI       []*datatype.URI
	basedOn               []*datatype.Reference
	partOf                []*datatype.Reference
	inResponseTo          []*datatype.Reference
	status                *datatype.Code
	statusReason          *datatype.CodeableConcept
	category              []*datatype.CodeableConcept
	priority              *datatype.Code
	medium                []*datatype.CodeableConcept
	subject               *datatype.Reference
	topic                 *datatype.CodeableConcept
	about                 []*datatype.Reference
	encounter             *datatype.Reference
	sent                  *datatype.DateTime
	received              *datatype.DateTime
	recipient             []*datatype.Reference
	sender                *datatype.Reference
	reasonCode            []*datatype.CodeableConcept
	reasonReference       []*datatype.Reference
	payload               []*CommunicationPayload
	note                  []*datatype.Annotation
	opts                  *fhirmodel.Options
	memo                  hashcode.Cell
}

// ResourceType returns "Communication".
func (x *Communication) ResourceType() string { return "Communication" }

// TypeName returns "Communication".
func (x *Communication) TypeName() string { return "Communication" }

// Identifier returns a copy of the identifier list.
func (x *Communication) Identifier() []*datatype.Identifier { return slices.Clone(x.identifier) }

// InstantiatesCanonical returns a copy of the instantiates canonical list.
func (x *Communication) InstantiatesCanonical() []*datatype.Canonical {
	return slices.Clone(x.instantiatesCanonical)
}

// InstantiatesURI returns a copy of the instantiates uri list.
func (x *Communication) InstantiatesURI() []*datatype.URI { return slices.Clone(x.instantiatesURI) }

// BasedOn returns a copy of the based on list.
func (x *Communication) BasedOn() []*datatype.Reference { return slices.Clone(x.basedOn) }

// PartOf returns a copy of the part of list.
func (x *Communication) PartOf() []*datatype.Reference { return slices.Clone(x.partOf) }

// InResponseTo returns a copy of the in response to references to Communication.
func (x *Communication) InResponseTo() []*datatype.Reference { return slices.Clone(x.inResponseTo) }

// Status returns the status code, drawn from EventStatus.
func (x *Communication) Status() *datatype.Code { return x.status }

// StatusReason returns the status reason, or nil when absent.
func (x *Communication) StatusReason() *datatype.CodeableConcept { return x.statusReason }

// Category returns a copy of the category list.
func (x *Communication) Category() []*datatype.CodeableConcept { return slices.Clone(x.category) }

// Priority returns the priority code, drawn from RequestPriority.
func (x *Communication) Priority() *datatype.Code { return x.priority }

// Medium returns a copy of the medium list.
func (x *Communication) Medium() []*datatype.CodeableConcept { return slices.Clone(x.medium) }

// Subject returns the subject reference to Patient or Group.
func (x *Communication) Subject() *datatype.Reference { return x.subject }

// Topic returns the topic, or nil when absent.
func (x *Communication) Topic() *datatype.CodeableConcept { return x.topic }

// About returns a copy of the about list.
func (x *Communication) About() []*datatype.Reference { return slices.Clone(x.about) }

// Encounter returns the encounter reference to Encounter.
func (x *Communication) Encounter() *datatype.Reference { return x.encounter }

// Sent returns the sent, or nil when absent.
func (x *Communication) Sent() *datatype.DateTime { return x.sent }

// Received returns the received, or nil when absent.
func (x *Communication) Received() *datatype.DateTime { return x.received }

// Recipient returns a copy of the recipient references to Device, Organization, Patient, Practitioner, PractitionerRole, RelatedPerson, Group, CareTeam or HealthcareService.
func (x *Communication) Recipient() []*datatype.Reference { return slices.Clone(x.recipient) }

// Sender returns the sender reference to Device, Organization, Patient, Practitioner, PractitionerRole, RelatedPerson or HealthcareService.
func (x *Communication) Sender() *datatype.Reference { return x.sender }

// ReasonCode returns a copy of the reason code list.
func (x *Communication) ReasonCode() []*datatype.CodeableConcept { return slices.Clone(x.reasonCode) }

// ReasonReference returns a copy of the reason reference references to Condition, Observation, DiagnosticReport or DocumentReference.
func (x *Communication) ReasonReference() []*datatype.Reference {
	return slices.Clone(x.reasonReference)
}

// Payload returns a copy of the payload list.
func (x *Communication) Payload() []*CommunicationPayload { return slices.Clone(x.payload) }

// Note returns a copy of the note list.
func (x *Communication) Note() []*datatype.Annotation { return slices.Clone(x.note) }

// Accept visits x and then its fields in declaration order.
func (x *Communication) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "identifier", x.identifier)
		visit.List(v, "instantiatesCanonical", x.instantiatesCanonical)
		visit.List(v, "instantiatesUri", x.instantiatesURI)
		visit.List(v, "basedOn", x.basedOn)
		visit.List(v, "partOf", x.partOf)
		visit.List(v, "inResponseTo", x.inResponseTo)
		visit.Child(v, "status", x.status)
		visit.Child(v, "statusReason", x.statusReason)
		visit.List(v, "category", x.category)
		visit.Child(v, "priority", x.priority)
		visit.List(v, "medium", x.medium)
		visit.Child(v, "subject", x.subject)
		visit.Child(v, "topic", x.topic)
		visit.List(v, "about", x.about)
		visit.Child(v, "encounter", x.encounter)
		visit.Child(v, "sent", x.sent)
		visit.Child(v, "received", x.received)
		visit.List(v, "recipient", x.recipient)
		visit.Child(v, "sender", x.sender)
		visit.List(v, "reasonCode", x.reasonCode)
		visit.List(v, "reasonReference", x.reasonReference)
		visit.List(v, "payload", x.payload)
		visit.List(v, "note", x.note)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *Communication) Equal(other *Communication) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.DomainResourceBase) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		slices.EqualFunc(x.instantiatesCanonical, other.instantiatesCanonical, (*datatype.Canonical).Equal) &&
		slices.EqualFunc(x.instantiatesURI, other.instantiatesURI, (*datatype.URI).Equal) &&
		slices.EqualFunc(x.basedOn, other.basedOn, (*datatype.Reference).Equal) &&
		slices.EqualFunc(x.partOf, other.partOf, (*datatype.Reference).Equal) &&
		slices.EqualFunc(x.inResponseTo, other.inResponseTo, (*datatype.Reference).Equal) &&
		x.status.Equal(other.status) &&
		x.statusReason.Equal(other.statusReason) &&
		slices.EqualFunc(x.category, other.category, (*datatype.CodeableConcept).Equal) &&
		x.priority.Equal(other.priority) &&
		slices.EqualFunc(x.medium, other.medium, (*datatype.CodeableConcept).Equal) &&
		x.subject.Equal(other.subject) &&
		x.topic.Equal(other.topic) &&
		slices.EqualFunc(x.about, other.about, (*datatype.Reference).Equal) &&
		x.encounter.Equal(other.encounter) &&
		x.sent.Equal(other.sent) &&
		x.received.Equal(other.received) &&
		slices.EqualFunc(x.recipient, other.recipient, (*datatype.Reference).Equal) &&
		x.sender.Equal(other.sender) &&
		slices.EqualFunc(x.reasonCode, other.reasonCode, (*datatype.CodeableConcept).Equal) &&
		slices.EqualFunc(x.reasonReference, other.reasonReference, (*datatype.Reference).Equal) &&
		slices.EqualFunc(x.payload, other.payload, (*CommunicationPayload).Equal) &&
		slices.EqualFunc(x.note, other.note, (*datatype.Annotation).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *Communication) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Communication")
		x.HashBase(h)
		hashcode.List(h, x.identifier)
		hashcode.List(h, x.instantiatesCanonical)
		hashcode.List(h, x.instantiatesURI)
		hashcode.List(h, x.basedOn)
		hashcode.List(h, x.partOf)
		hashcode.List(h, x.inResponseTo)
		hashcode.Field(h, x.status)
		hashcode.Field(h, x.statusReason)
		hashcode.List(h, x.category)
		hashcode.Field(h, x.priority)
		hashcode.List(h, x.medium)
		hashcode.Field(h, x.subject)
		hashcode.Field(h, x.topic)
		hashcode.List(h, x.about)
		hashcode.Field(h, x.encounter)
		hashcode.Field(h, x.sent)
		hashcode.Field(h, x.received)
		hashcode.List(h, x.recipient)
		hashcode.Field(h, x.sender)
		hashcode.List(h, x.reasonCode)
		hashcode.List(h, x.reasonReference)
		hashcode.List(h, x.payload)
		hashcode.List(h, x.note)
		return h.Sum64()
	})
}

func (x *Communication) equalResource(o Resource) bool {
	other, ok := o.(*Communication)
	return ok && x.Equal(other)
}

func (x *Communication) isNil() bool { return x == nil }

func (x *Communication) checks() []error {
	return []error{
		x.ValidateBase("Communication"),
		validate.Elements("Communication", "identifier", x.identifier),
		validate.Elements("Communication", "instantiatesCanonical", x.instantiatesCanonical),
		validate.Elements("Communication", "instantiatesUri", x.instantiatesURI),
		validate.Elements("Communication", "basedOn", x.basedOn),
		validate.Elements("Communication", "partOf", x.partOf),
		validate.Elements("Communication", "inResponseTo", x.inResponseTo),
		datatype.CheckReferences("Communication", "inResponseTo", x.inResponseTo, "Communication"),
		validate.Required("Communication", "status", x.status),
		datatype.CheckCode("Communication", "status", x.status, EventStatusValues),
		validate.Elements("Communication", "category", x.category),
		datatype.CheckCode("Communication", "priority", x.priority, RequestPriorityValues),
		validate.Elements("Communication", "medium", x.medium),
		datatype.CheckReference("Communication", "subject", x.subject, "Patient", "Group"),
		validate.Elements("Communication", "about", x.about),
		datatype.CheckReference("Communication", "encounter", x.encounter, "Encounter"),
		validate.Elements("Communication", "recipient", x.recipient),
		datatype.CheckReferences("Communication", "recipient", x.recipient, "Device", "Organization", "Patient", "Practitioner", "PractitionerRole", "RelatedPerson", "Group", "CareTeam", "HealthcareService"),
		datatype.CheckReference("Communication", "sender", x.sender, "Device", "Organization", "Patient", "Practitioner", "PractitionerRole", "RelatedPerson", "HealthcareService"),
		validate.Elements("Communication", "reasonCode", x.reasonCode),
		validate.Elements("Communication", "reasonReference", x.reasonReference),
		datatype.CheckReferences("Communication", "reasonReference", x.reasonReference, "Condition", "Observation", "DiagnosticReport", "DocumentReference"),
		validate.Elements("Communication", "payload", x.payload),
		validate.Elements("Communication", "note", x.note),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *Communication) ToBuilder() *CommunicationBuilder {
	return &CommunicationBuilder{
		id:                    x.ID(),
		meta:                  x.Meta(),
		implicitRules:         x.ImplicitRules(),
		language:              x.Language(),
		text:                  x.Text(),
		contained:             x.Contained(),
		extension:             x.Extension(),
		modifierExtension:     x.ModifierExtension(),
		identifier:            slices.Clone(x.identifier),
		instantiatesCanonical: slices.Clone(x.instantiatesCanonical),
		instantiatesURI:       slices.Clone(x.instantiatesURI),
		basedOn:               slices.Clone(x.basedOn),
		partOf:                slices.Clone(x.partOf),
		inResponseTo:          slices.Clone(x.inResponseTo),
		status:                x.status,
		statusReason:          x.statusReason,
		category:              slices.Clone(x.category),
		priority:              x.priority,
		medium:                slices.Clone(x.medium),
		subject:               x.subject,
		topic:                 x.topic,
		about:                 slices.Clone(x.about),
		encounter:             x.encounter,
		sent:                  x.sent,
		received:              x.received,
		recipient:             slices.Clone(x.recipient),
		sender:                x.sender,
		reasonCode:            slices.Clone(x.reasonCode),
		reasonReference:       slices.Clone(x.reasonReference),
		payload:               slices.Clone(x.payload),
		note:                  slices.Clone(x.note),
		opts:                  x.opts,
	}
}

// CommunicationBuilder builds Communication values.
type CommunicationBuilder struct {
	id                    string
	meta                  *datatype.Meta
	implicitRules         *datatype.URI
	language              *datatype.Code
	text                  *datatype.Narrative
	contained             []Resource
	extension             []*datatype.Extension
	modifierExtension     []*datatype.Extension
	identifier            []*datatype.Identifier
	instantiatesCanonical []*datatype.Canonical
	instantiatesURI       []*datatype.URI
	basedOn               []*datatype.Reference
	partOf                []*datatype.Reference
	inResponseTo          []*datatype.Reference
	status                *datatype.Code
	statusReason          *datatype.CodeableConcept
	category              []*datatype.CodeableConcept
	priority              *datatype.Code
	medium                []*datatype.CodeableConcept
	subject               *datatype.Reference
	topic                 *datatype.CodeableConcept
	about                 []*datatype.Reference
	encounter             *datatype.Reference
	sent                  *datatype.DateTime
	received              *datatype.DateTime
	recipient             []*datatype.Reference
	sender                *datatype.Reference
	reasonCode            []*datatype.CodeableConcept
	reasonReference       []*datatype.Reference
	payload               []*CommunicationPayload
	note                  []*datatype.Annotation
	opts                  *fhirmodel.Options
}

// NewCommunicationBuilder returns an empty builder.
func NewCommunicationBuilder() *CommunicationBuilder {
	return &CommunicationBuilder{}
}

// ID sets the id.
func (b *CommunicationBuilder) ID(v string) *CommunicationBuilder {
	b.id = v
	return b
}

// Meta sets the meta.
func (b *CommunicationBuilder) Meta(v *datatype.Meta) *CommunicationBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets the implicit rules.
func (b *CommunicationBuilder) ImplicitRules(v *datatype.URI) *CommunicationBuilder {
	b.implicitRules = v
	return b
}

// Language sets the language.
func (b *CommunicationBuilder) Language(v *datatype.Code) *CommunicationBuilder {
	b.language = v
	return b
}

// Text sets the text.
func (b *CommunicationBuilder) Text(v *datatype.Narrative) *CommunicationBuilder {
	b.text = v
	return b
}

// Contained appends values to contained.
func (b *CommunicationBuilder) Contained(values ...Resource) *CommunicationBuilder {
	for _, v := range values {
		b.contained = append(b.contained, orNil(v))
	}
	return b
}

// SetContained replaces contained with a copy of values.
func (b *CommunicationBuilder) SetContained(values []Resource) *CommunicationBuilder {
	b.contained = nil
	return b.Contained(values...)
}

// Extension appends values to extension.
func (b *CommunicationBuilder) Extension(values ...*datatype.Extension) *CommunicationBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *CommunicationBuilder) SetExtension(values []*datatype.Extension) *CommunicationBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *CommunicationBuilder) ModifierExtension(values ...*datatype.Extension) *CommunicationBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *CommunicationBuilder) SetModifierExtension(values []*datatype.Extension) *CommunicationBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier appends values to identifier.
func (b *CommunicationBuilder) Identifier(values ...*datatype.Identifier) *CommunicationBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *CommunicationBuilder) SetIdentifier(values []*datatype.Identifier) *CommunicationBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// InstantiatesCanonical appends values to instantiates canonical.
func (b *CommunicationBuilder) InstantiatesCanonical(values ...*datatype.Canonical) *CommunicationBuilder {
	b.instantiatesCanonical = append(b.instantiatesCanonical, values...)
	return b
}

// SetInstantiatesCanonical replaces instantiates canonical with a copy of values.
func (b *CommunicationBuilder) SetInstantiatesCanonical(values []*datatype.Canonical) *CommunicationBuilder {
	b.instantiatesCanonical = slices.Clone(values)
	return b
}

// InstantiatesURI appends values to instantiates uri.
func (b *CommunicationBuilder) InstantiatesURI(values ...*datatype.URI) *CommunicationBuilder {
	b.instantiatesURI = append(b.instantiatesURI, values...)
	return b
}

// SetInstantiatesURI replaces instantiates uri with a copy of values.
func (b *CommunicationBuilder) SetInstantiatesURI(values []*datatype.URI) *CommunicationBuilder {
	b.instantiatesURI = slices.Clone(values)
	return b
}

// BasedOn appends values to based on.
func (b *CommunicationBuilder) BasedOn(values ...*datatype.Reference) *CommunicationBuilder {
	b.basedOn = append(b.basedOn, values...)
	return b
}

// SetBasedOn replaces based on with a copy of values.
func (b *CommunicationBuilder) SetBasedOn(values []*datatype.Reference) *CommunicationBuilder {
	b.basedOn = slices.Clone(values)
	return b
}

// PartOf appends values to part of.
func (b *CommunicationBuilder) PartOf(values ...*datatype.Reference) *CommunicationBuilder {
	b.partOf = append(b.partOf, values...)
	return b
}

// SetPartOf replaces part of with a copy of values.
func (b *CommunicationBuilder) SetPartOf(values []*datatype.Reference) *CommunicationBuilder {
	b.partOf = slices.Clone(values)
	return b
}

// InResponseTo appends values to in response to.
func (b *CommunicationBuilder) InResponseTo(values ...*datatype.Reference) *CommunicationBuilder {
	b.inResponseTo = append(b.inResponseTo, values...)
	return b
}

// SetInResponseTo replaces in response to with a copy of values.
func (b *CommunicationBuilder) SetInResponseTo(values []*datatype.Reference) *CommunicationBuilder {
	b.inResponseTo = slices.Clone(values)
	return b
}

// Status sets the status.
func (b *CommunicationBuilder) Status(v *datatype.Code) *CommunicationBuilder {
	b.status = v
	return b
}

// StatusReason sets the status reason.
func (b *CommunicationBuilder) StatusReason(v *datatype.CodeableConcept) *CommunicationBuilder {
	b.statusReason = v
	return b
}

// Category appends values to category.
func (b *CommunicationBuilder) Category(values ...*datatype.CodeableConcept) *CommunicationBuilder {
	b.category = append(b.category, values...)
	return b
}

// SetCategory replaces category with a copy of values.
func (b *CommunicationBuilder) SetCategory(values []*datatype.CodeableConcept) *CommunicationBuilder {
	b.category = slices.Clone(values)
	return b
}

// Priority sets the priority.
func (b *CommunicationBuilder) Priority(v *datatype.Code) *CommunicationBuilder {
	b.priority = v
	return b
}

// Medium appends values to medium.
func (b *CommunicationBuilder) Medium(values ...*datatype.CodeableConcept) *CommunicationBuilder {
	b.medium = append(b.medium, values...)
	return b
}

// SetMedium replaces medium with a copy of values.
func (b *CommunicationBuilder) SetMedium(values []*datatype.CodeableConcept) *CommunicationBuilder {
	b.medium = slices.Clone(values)
	return b
}

// Subject sets the subject.
func (b *CommunicationBuilder) Subject(v *datatype.Reference) *CommunicationBuilder {
	b.subject = v
	return b
}

// Topic sets the topic.
func (b *CommunicationBuilder) Topic(v *datatype.CodeableConcept) *CommunicationBuilder {
	b.topic = v
	return b
}

// About appends values to about.
func (b *CommunicationBuilder) About(values ...*datatype.Reference) *CommunicationBuilder {
	b.about = append(b.about, values...)
	return b
}

// SetAbout replaces about with a copy of values.
func (b *CommunicationBuilder) SetAbout(values []*datatype.Reference) *CommunicationBuilder {
	b.about = slices.Clone(values)
	return b
}

// Encounter sets the encounter.
func (b *CommunicationBuilder) Encounter(v *datatype.Reference) *CommunicationBuilder {
	b.encounter = v
	return b
}

// Sent sets the sent.
func (b *CommunicationBuilder) Sent(v *datatype.DateTime) *CommunicationBuilder {
	b.sent = v
	return b
}

// Received sets the received.
func (b *CommunicationBuilder) Received(v *datatype.DateTime) *CommunicationBuilder {
	b.received = v
	return b
}

// Recipient appends values to recipient.
func (b *CommunicationBuilder) Recipient(values ...*datatype.Reference) *CommunicationBuilder {
	b.recipient = append(b.recipient, values...)
	return b
}

// SetRecipient replaces recipient with a copy of values.
func (b *CommunicationBuilder) SetRecipient(values []*datatype.Reference) *CommunicationBuilder {
	b.recipient = slices.Clone(values)
	return b
}

// Sender sets the sender.
func (b *CommunicationBuilder) Sender(v *datatype.Reference) *CommunicationBuilder {
	b.sender = v
	return b
}

// ReasonCode appends values to reason code.
func (b *CommunicationBuilder) ReasonCode(values ...*datatype.CodeableConcept) *CommunicationBuilder {
	b.reasonCode = append(b.reasonCode, values...)
	return b
}

// SetReasonCode replaces reason code with a copy of values.
func (b *CommunicationBuilder) SetReasonCode(values []*datatype.CodeableConcept) *CommunicationBuilder {
	b.reasonCode = slices.Clone(values)
	return b
}

// ReasonReference appends values to reason reference.
func (b *CommunicationBuilder) ReasonReference(values ...*datatype.Reference) *CommunicationBuilder {
	b.reasonReference = append(b.reasonReference, values...)
	return b
}

// SetReasonReference replaces reason reference with a copy of values.
func (b *CommunicationBuilder) SetReasonReference(values []*datatype.Reference) *CommunicationBuilder {
	b.reasonReference = slices.Clone(values)
	return b
}

// Payload appends values to payload.
func (b *CommunicationBuilder) Payload(values ...*CommunicationPayload) *CommunicationBuilder {
	b.payload = append(b.payload, values...)
	return b
}

// SetPayload replaces payload with a copy of values.
func (b *CommunicationBuilder) SetPayload(values []*CommunicationPayload) *CommunicationBuilder {
	b.payload = slices.Clone(values)
	return b
}

// Note appends values to note.
func (b *CommunicationBuilder) Note(values ...*datatype.Annotation) *CommunicationBuilder {
	b.note = append(b.note, values...)
	return b
}

// SetNote replaces note with a copy of values.
func (b *CommunicationBuilder) SetNote(values []*datatype.Annotation) *CommunicationBuilder {
	b.note = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable Communication. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *CommunicationBuilder) Build() (*Communication, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *CommunicationBuilder) BuildWith(opts ...fhirmodel.Option) (*Communication, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *CommunicationBuilder) build(o *fhirmodel.Options) (*Communication, error) {
	x := &Communication{
		DomainResourceBase:    newDomainResourceBase(b.id, b.meta, b.implicitRules, b.language, b.text, b.contained, b.extension, b.modifierExtension),
		identifier:            slices.Clone(b.identifier),
		instantiatesCanonical: slices.Clone(b.instantiatesCanonical),
		instantiatesURI:       slices.Clone(b.instantiatesURI),
		basedOn:               slices.Clone(b.basedOn),
		partOf:                slices.Clone(b.partOf),
		inResponseTo:          slices.Clone(b.inResponseTo),
		status:                b.status,
		statusReason:          b.statusReason,
		category:              slices.Clone(b.category),
		priority:              b.priority,
		medium:                slices.Clone(b.medium),
		subject:               b.subject,
		topic:                 b.topic,
		about:                 slices.Clone(b.about),
		encounter:             b.encounter,
		sent:                  b.sent,
		received:              b.received,
		recipient:             slices.Clone(b.recipient),
		sender:                b.sender,
		reasonCode:            slices.Clone(b.reasonCode),
		reasonReference:       slices.Clone(b.reasonReference),
		payload:               slices.Clone(b.payload),
		note:                  slices.Clone(b.note),
		opts:                  o,
	}
	if err := validate.Run("Communication", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// CommunicationPayload is text, an attachment or a resource being communicated.
type CommunicationPayload struct {
	datatype.BackboneElementBase
	content datatype.Element
	opts    *fhirmodel.Options
	memo    hashcode.Cell
}

// TypeName returns "Communication.Payload".
func (x *CommunicationPayload) TypeName() string { return "Communication.Payload" }

// Content returns content[x]: string, Attachment or Reference.
func (x *CommunicationPayload) Content() datatype.Element { return x.content }

// Accept visits x and then its fields in declaration order.
func (x *CommunicationPayload) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "content", x.content)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *CommunicationPayload) Equal(other *CommunicationPayload) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		datatype.EqualElements(x.content, other.content)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *CommunicationPayload) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("Communication.Payload")
		x.HashBase(h)
		hashcode.Field(h, x.content)
		return h.Sum64()
	})
}

func (x *CommunicationPayload) checks() []error {
	return []error{
		x.ValidateBase("Communication.Payload"),
		validate.Required("Communication.Payload", "content", x.content),
		validate.Choice("Communication.Payload", "content", x.content, "string", "Attachment", "Reference"),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *CommunicationPayload) ToBuilder() *CommunicationPayloadBuilder {
	return &CommunicationPayloadBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		content:           x.content,
		opts:              x.opts,
	}
}

// CommunicationPayloadBuilder builds CommunicationPayload values.
type CommunicationPayloadBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	content           datatype.Element
	opts              *fhirmodel.Options
}

// NewCommunicationPayloadBuilder returns an empty builder.
func NewCommunicationPayloadBuilder() *CommunicationPayloadBuilder {
	return &CommunicationPayloadBuilder{}
}

// ID sets the id.
func (b *CommunicationPayloadBuilder) ID(v string) *CommunicationPayloadBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *CommunicationPayloadBuilder) Extension(values ...*datatype.Extension) *CommunicationPayloadBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *CommunicationPayloadBuilder) SetExtension(values []*datatype.Extension) *CommunicationPayloadBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *CommunicationPayloadBuilder) ModifierExtension(values ...*datatype.Extension) *CommunicationPayloadBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *CommunicationPayloadBuilder) SetModifierExtension(values []*datatype.Extension) *CommunicationPayloadBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Content sets content[x]. A typed nil clears it.
func (b *CommunicationPayloadBuilder) Content(v datatype.Element) *CommunicationPayloadBuilder {
	b.content = datatype.OrNil(v)
	return b
}

// Build validates the fields and returns an immutable CommunicationPayload. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *CommunicationPayloadBuilder) Build() (*CommunicationPayload, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *CommunicationPayloadBuilder) BuildWith(opts ...fhirmodel.Option) (*CommunicationPayload, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *CommunicationPayloadBuilder) build(o *fhirmodel.Options) (*CommunicationPayload, error) {
	x := &CommunicationPayload{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		content:             b.content,
		opts:                o,
	}
	if err := validate.Run("Communication.Payload", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
